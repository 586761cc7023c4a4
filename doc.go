// Package cubewalk traces a walker over the unfolded net of a cube and
// teleports it across net edges that only meet once the net is folded.
//
// What is in here?
//
//	A small, dependency-light toolkit that brings together:
//		• gridmap  – sparse terrain map, cells, headings, face anchors
//		• parse    – map picture + "10R5L5" path reader (ParseError)
//		• walk     – the path walker, the Resolver contract, flat wrap, password
//		• cubefold – face discovery by rotation composition and edge crossing
//
// How do the pieces fit?
//
//	parse ─▶ GridMap + []Instruction ─▶ walk.Run(resolver) ─▶ State.Password()
//	                    │
//	                    └─▶ cubefold.Discover ─▶ *Net (a walk.Resolver)
//
// No face adjacency table is ever written down: every face receives a 3×3
// rotation relative to a root face, and all folded neighbors follow from
// matrix products. Any input that does not close into a cube is reported
// as cubefold.ErrInvariantViolation.
//
// Quick ASCII example of a net (W = 1):
//
//	 A
//	BCD
//	 E
//	 F
//
//	go run ./cmd/cubewalk --input=input.txt --part=2
package cubewalk
