// Package aoc holds the small amount of plumbing shared by the Advent of
// Code 2023 solvers: loading the puzzle input named on the command line,
// running a solver over it, and printing the answers.
package aoc

import (
	"bufio"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"regexp"
	"strings"
	"time"
)

// A Solver computes the answer to one part of a puzzle from its raw input.
type Solver func(input string) (int, error)

// Run loads the input file named by args[0] and passes its contents to
// solve. args are the program arguments without the program name.
//
// Every failure is reported as a *RunError.
func Run(args []string, solve Solver) (int, error) {
	if len(args) == 0 || args[0] == "" {
		return 0, &RunError{Kind: NoInputPath, Err: ErrNoInputPath}
	}
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, &RunError{Kind: ReadingInput, Path: path, Err: err}
	}
	Log.WithField("path", path).Debugf("loaded %d bytes", len(content))
	got, err := solve(string(content))
	if err != nil {
		return 0, &RunError{Kind: RunningPuzzle, Path: path, Err: err}
	}
	return got, nil
}

// Main runs both parts of a puzzle against the file named by the first
// program argument and prints the answers. It exits the process on the
// first error.
func Main(partOne, partTwo Solver) {
	for _, p := range []struct {
		name  string
		solve Solver
	}{
		{"part_one", partOne},
		{"part_two", partTwo},
	} {
		t0 := time.Now()
		got, err := Run(os.Args[1:], p.solve)
		if err != nil {
			Log.Fatalf("Error: %v", err)
		}
		Debugf("%s took %v", p.name, time.Since(t0).Round(time.Microsecond))
		fmt.Printf("%s = %d\n", p.name, got)
	}
}

// ForLines calls onLine for each line of input.
// The y value is the row number, starting with 0. Iteration stops at the
// first error returned by onLine.
func ForLines(input string, onLine func(y int, line string) error) error {
	s := bufio.NewScanner(strings.NewReader(input))
	s.Buffer(nil, max(len(input)+1, bufio.MaxScanTokenSize))
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

// A Sample is a worked example taken from a solver's doc comment.
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := Sample{
			Want:  m[1],
			Input: m[2],
		}
		return s, true
	}
	var zero Sample
	return zero, false
}

// Samples extracts the samples attached to the functions declared in src,
// keyed by function name. A sample is a comment of the form
//
//	/*
//	want=142
//
//	1abc2
//	pqr3stu8vwx
//	*/
//
// A sample with no input reuses the input of the previous one.
func Samples(src []byte) (map[string]Sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.Input = Or(s.Input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.Input
				break
			}
		}
	}
	return samples, nil
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
