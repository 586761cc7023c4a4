// SPDX-License-Identifier: MIT

// Package parse reads the puzzle input: a map picture followed by a blank
// line and a path description.
//
// Map rows use ' ' for cells off the net, '.' for open tiles and '#' for
// walls; row y, column x becomes gridmap.Cell{X: x, Y: y}. The path is a run
// of step counts and L/R turns such as "10R5L5", tokenized and parsed with
// participle.
//
// Errors:
//
//   - ErrParse: any malformed input. The message names the offending byte or
//     token and where it was found. Errors from gridmap.New are wrapped as
//     well, so both sentinels match.
package parse
