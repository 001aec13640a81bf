package main

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/aoc-solvers/aoc2023"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

//go:embed main.go
var source []byte

func sampleInput(t *testing.T) string {
	t.Helper()
	samples, err := aoc.Samples(source)
	require.NoError(t, err)
	return samples["partOne"].Input
}

func TestSamples(t *testing.T) {
	samples, err := aoc.Samples(source)
	require.NoError(t, err)
	for name, solve := range map[string]aoc.Solver{
		"partOne": partOne,
		"partTwo": partTwo,
	} {
		s, ok := samples[name]
		if !ok {
			t.Fatalf("no sample for %s", name)
		}
		got, err := solve(s.Input)
		if err != nil {
			t.Fatalf("%s(sample): %v", name, err)
		}
		if fmt.Sprint(got) != s.Want {
			t.Errorf("%s(sample) = %v, want %v", name, got, s.Want)
		}
	}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		line string
		want Row
	}{
		{
			line: "467..114..",
			want: Row{Parts: []PartNumber{
				{Value: 467, Span: aoc.Span{Start: 0, End: 2}},
				{Value: 114, Span: aoc.Span{Start: 5, End: 7}},
			}},
		},
		{
			line: "...$.*....",
			want: Row{Symbols: map[int]byte{3: '$', 5: '*'}},
		},
		{
			line: "617*......",
			want: Row{
				Parts:   []PartNumber{{Value: 617, Span: aoc.Span{Start: 0, End: 2}}},
				Symbols: map[int]byte{3: '*'},
			},
		},
		{
			line: "..7#12",
			want: Row{
				Parts: []PartNumber{
					{Value: 7, Span: aoc.Span{Start: 2, End: 2}},
					{Value: 12, Span: aoc.Span{Start: 4, End: 5}},
				},
				Symbols: map[int]byte{3: '#'},
			},
		},
		{line: ""},
	}
	for _, tt := range tests {
		got, err := ParseRow(0, tt.line)
		if err != nil {
			t.Errorf("ParseRow(%q): %v", tt.line, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ParseRow(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestSpansRoundTrip(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(sampleInput(t), "\n"), "\n")
	for y, line := range lines {
		row, err := ParseRow(y, line)
		require.NoError(t, err)
		for _, p := range row.Parts {
			got := p.Span.Slice(line)
			if want := strconv.Itoa(p.Value); got != want {
				t.Errorf("line %d span %v = %q, want %q", y, p.Span, got, want)
			}
		}
		for x, c := range row.Symbols {
			if line[x] != c {
				t.Errorf("line %d symbol at %d = %q, want %q", y, x, c, line[x])
			}
		}
	}
}

func TestParseRowOverflow(t *testing.T) {
	_, err := ParseRow(2, "..99999999999999999999*")
	require.ErrorIs(t, err, aoc.ErrBadInput)
	require.ErrorIs(t, err, strconv.ErrRange)
	var de *aoc.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, 2, de.Line)
	require.Equal(t, 2, de.Col)
	require.Equal(t, "99999999999999999999", de.Text)
}

func TestPartNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"diagonal above", "...*.\n.12..\n.....\n", []int{12}},
		{"diagonal below", ".....\n.12..\n#....\n", []int{12}},
		{"same row after", "12$\n", []int{12}},
		{"same row before", "$12\n", []int{12}},
		{"isolated", "*....\n...12\n.....\n", nil},
		{"first column", "12\n*.\n", []int{12}},
		{"no wrap to previous row", "...#\n12..\n", nil},
		{"no wrap to next row", "..12\n#...\n", nil},
		{"last row", "....\n.5..\n", nil},
		{"two symbols count once", "*7*\n", []int{7}},
	}
	for _, tt := range tests {
		s, err := ParseSchematic(tt.input)
		require.NoError(t, err, tt.name)
		if diff := cmp.Diff(tt.want, s.PartNumbers(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s: PartNumbers() mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestGearRatioSum(t *testing.T) {
	anySymbol := func(byte) bool { return true }
	tests := []struct {
		name   string
		input  string
		isGear func(byte) bool
		want   int
	}{
		{"two numbers", "1.2\n.*.\n...\n", isGearSymbol, 2},
		{"one number", "1..\n.*.\n...\n", isGearSymbol, 0},
		{"three numbers", "1.2\n.*.\n3..\n", isGearSymbol, 0},
		{"shared number", "2*3*4\n", isGearSymbol, 6 + 12},
		{"not a gear glyph", "1.2\n.#.\n...\n", isGearSymbol, 0},
		{"any symbol", "1.2\n.#.\n...\n", anySymbol, 2},
		{"long numbers", "467..\n...*.\n..35.\n", isGearSymbol, 467 * 35},
	}
	for _, tt := range tests {
		s, err := ParseSchematic(tt.input)
		require.NoError(t, err, tt.name)
		if got := s.GearRatioSum(tt.isGear); got != tt.want {
			t.Errorf("%s: GearRatioSum() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGears(t *testing.T) {
	s, err := ParseSchematic(sampleInput(t))
	require.NoError(t, err)
	want := map[aoc.Pt][]int{
		{X: 3, Y: 1}: {467, 35},
		{X: 3, Y: 4}: {617},
		{X: 5, Y: 8}: {755, 598},
	}
	if diff := cmp.Diff(want, s.Gears(isGearSymbol)); diff != "" {
		t.Errorf("Gears() mismatch (-want +got):\n%s", diff)
	}
}

func TestScoringDoesNotMutate(t *testing.T) {
	s, err := ParseSchematic(sampleInput(t))
	require.NoError(t, err)
	before := aoc.Fingerprint(&s)
	s.PartNumberSum()
	s.GearRatioSum(isGearSymbol)
	require.Equal(t, before, aoc.Fingerprint(&s))

	again, err := ParseSchematic(sampleInput(t))
	require.NoError(t, err)
	require.Equal(t, before, aoc.Fingerprint(&again))
}
