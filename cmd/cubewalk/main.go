// SPDX-License-Identifier: MIT

// cubewalk reads a monkey-map puzzle (a cube net, a blank line, a path),
// walks the path and prints the final password.
//
//	cubewalk --input=input.txt --part=2 [--face_width=50] [-v=3]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/cubewalk/cubefold"
	"github.com/katalvlaran/cubewalk/parse"
	"github.com/katalvlaran/cubewalk/walk"
)

var (
	flagInput     = flag.String("input", "", "Puzzle input file: map rows, a blank line, then the path.")
	flagPart      = flag.Int("part", 2, "1: wrap around the flat map; 2: fold the map into a cube.")
	flagFaceWidth = flag.Int("face_width", 0, "Cube face side length in cells; 0 infers it from the cell count.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagInput == "" {
		klog.Exitf("--input is required")
	}
	if *flagPart != 1 && *flagPart != 2 {
		klog.Exitf("Invalid --part=%d, must be 1 or 2", *flagPart)
	}

	in := must.M1(readInput(*flagInput))
	end, err := solve(in, *flagPart, *flagFaceWidth)
	if err != nil {
		klog.Exitf("Failed to walk %q: %+v", *flagInput, err)
	}
	klog.V(1).Infof("Final state %v", end)
	fmt.Println(end.Password())
}

// readInput loads and parses the puzzle file.
func readInput(path string) (*parse.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	in, err := parse.Parse(string(data))
	if err != nil {
		return nil, errors.WithMessagef(err, "parsing %q", path)
	}
	return in, nil
}

// newResolver picks the wrap rule for the puzzle part.
func newResolver(in *parse.Input, part, faceWidth int) (walk.Resolver, error) {
	if part == 1 {
		return walk.NewFlatWrap(in.Grid), nil
	}
	net, err := cubefold.Discover(in.Grid, cubefold.WithFaceWidth(faceWidth))
	if err != nil {
		return nil, errors.WithMessage(err, "folding the net")
	}
	return net, nil
}

// solve runs the path under the selected wrap rule.
func solve(in *parse.Input, part, faceWidth int) (walk.State, error) {
	r, err := newResolver(in, part, faceWidth)
	if err != nil {
		return walk.State{}, err
	}
	end, err := walk.Run(in.Grid, in.Path, r)
	if err != nil {
		return walk.State{}, errors.WithMessage(err, "walking the path")
	}
	return end, nil
}
