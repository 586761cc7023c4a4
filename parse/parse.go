// SPDX-License-Identifier: MIT

package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/cubewalk/gridmap"
	"github.com/katalvlaran/cubewalk/walk"
)

// ErrParse indicates malformed map or path text.
var ErrParse = errors.New("parse: malformed input")

// Input is a parsed puzzle: the net and the path to follow on it.
type Input struct {
	Grid *gridmap.GridMap
	Path []walk.Instruction
}

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Steps", Pattern: `[0-9]+`},
	{Name: "Turn", Pattern: `[LR]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

type pathGrammar struct {
	Moves []*moveGrammar `parser:"@@*"`
}

type moveGrammar struct {
	Steps *int    `parser:"  @Steps"`
	Turn  *string `parser:"| @Turn"`
}

var pathParser = participle.MustBuild[pathGrammar](
	participle.Lexer(pathLexer),
	participle.Elide("Whitespace"),
)

// Parse splits text at the first blank line into a map and a path.
// CRLF line endings are accepted. A missing or empty path is an error.
func Parse(text string) (*Input, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	mapText, pathText, found := strings.Cut(text, "\n\n")
	if !found || strings.TrimSpace(pathText) == "" {
		return nil, fmt.Errorf("%w: missing path after the map", ErrParse)
	}
	g, err := Map(mapText)
	if err != nil {
		return nil, err
	}
	path, err := Path(pathText)
	if err != nil {
		return nil, err
	}

	return &Input{Grid: g, Path: path}, nil
}

// Map parses a map picture into a GridMap.
func Map(text string) (*gridmap.GridMap, error) {
	cells := make(map[gridmap.Cell]gridmap.Terrain)
	for y, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		for x := 0; x < len(line); x++ {
			c := gridmap.Cell{X: x, Y: y}
			switch line[x] {
			case ' ':
			case '.':
				cells[c] = gridmap.Open
			case '#':
				cells[c] = gridmap.Wall
			default:
				return nil, fmt.Errorf("%w: map line %d column %d: unexpected %q", ErrParse, y+1, x+1, line[x])
			}
		}
	}
	g, err := gridmap.New(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return g, nil
}

// Path parses a path description such as "10R5L5" into instructions.
// Whitespace between tokens is ignored; an empty path yields no instructions.
func Path(text string) ([]walk.Instruction, error) {
	ast, err := pathParser.ParseString("path", text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	out := make([]walk.Instruction, 0, len(ast.Moves))
	for _, m := range ast.Moves {
		switch {
		case m.Steps != nil:
			out = append(out, walk.Forward(*m.Steps))
		case *m.Turn == "L":
			out = append(out, walk.Left())
		default:
			out = append(out, walk.Right())
		}
	}

	return out, nil
}
