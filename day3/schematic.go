package main

import (
	"cmp"
	"slices"

	"github.com/aoc-solvers/aoc2023"
	"golang.org/x/exp/maps"
)

// A PartNumber is a run of digits in the schematic.
type PartNumber struct {
	Value int
	Span  aoc.Span
}

// A Row is one line of the schematic.
type Row struct {
	Parts   []PartNumber
	Symbols map[int]byte // column -> symbol
}

// A Schematic is the engine schematic, one Row per input line.
// It is not modified after parsing.
type Schematic struct {
	Rows []Row
}

// ParseRow scans line left to right. A maximal run of ASCII digits is a part
// number; any other byte except '.' is a symbol.
func ParseRow(y int, line string) (Row, error) {
	r := Row{Symbols: make(map[int]byte)}
	for x := 0; x < len(line); {
		c := line[x]
		switch {
		case c == '.':
			x++
		case aoc.IsDigit(c):
			sp := aoc.Span{Start: x, End: x}
			for sp.End+1 < len(line) && aoc.IsDigit(line[sp.End+1]) {
				sp.End++
			}
			v, err := aoc.ParseUint(sp.Slice(line))
			if err != nil {
				return Row{}, aoc.BadInput(y, x, sp.Slice(line), "bad part number").Wrap(err)
			}
			r.Parts = append(r.Parts, PartNumber{Value: v, Span: sp})
			x = sp.End + 1
		default:
			r.Symbols[x] = c
			x++
		}
	}
	return r, nil
}

// ParseSchematic parses every line of input with ParseRow.
func ParseSchematic(input string) (Schematic, error) {
	var s Schematic
	err := aoc.ForLines(input, func(y int, line string) error {
		r, err := ParseRow(y, line)
		if err != nil {
			return err
		}
		s.Rows = append(s.Rows, r)
		return nil
	})
	if err != nil {
		return Schematic{}, err
	}
	aoc.Log.WithField("fingerprint", aoc.Fingerprint(&s)).Debugf("parsed %d rows", len(s.Rows))
	return s, nil
}

// SymbolAt returns the symbol at p. Points outside the schematic hold no
// symbol.
func (s Schematic) SymbolAt(p aoc.Pt) (byte, bool) {
	if p.Y < 0 || p.Y >= len(s.Rows) {
		return 0, false
	}
	c, ok := s.Rows[p.Y].Symbols[p.X]
	return c, ok
}

// AdjacentSymbols returns the positions of the symbols 8-connected to a
// part number in row y, each at most once.
func (s Schematic) AdjacentSymbols(y int, part PartNumber) []aoc.Pt {
	var out []aoc.Pt
	part.Span.ForNeighbors(y, func(p aoc.Pt) bool {
		if _, ok := s.SymbolAt(p); ok {
			out = append(out, p)
		}
		return true
	})
	return out
}

// IsPartNumber reports whether any symbol is adjacent to part in row y.
func (s Schematic) IsPartNumber(y int, part PartNumber) bool {
	found := false
	part.Span.ForNeighbors(y, func(p aoc.Pt) bool {
		_, found = s.SymbolAt(p)
		return !found
	})
	return found
}

// PartNumbers returns the values of all numbers adjacent to a symbol, in
// reading order.
func (s Schematic) PartNumbers() []int {
	var out []int
	for y, row := range s.Rows {
		for _, part := range row.Parts {
			if s.IsPartNumber(y, part) {
				out = append(out, part.Value)
			}
		}
	}
	return out
}

// PartNumberSum is the answer to part one.
func (s Schematic) PartNumberSum() int {
	return aoc.Sum(s.PartNumbers()...)
}

// Gears groups part numbers by the gear symbols they touch. isGear selects
// which symbols take part. A number touching several gears is listed under
// each of them.
func (s Schematic) Gears(isGear func(sym byte) bool) map[aoc.Pt][]int {
	gears := make(map[aoc.Pt][]int)
	for y, row := range s.Rows {
		for _, part := range row.Parts {
			for _, p := range s.AdjacentSymbols(y, part) {
				if c, _ := s.SymbolAt(p); isGear(c) {
					gears[p] = append(gears[p], part.Value)
				}
			}
		}
	}
	return gears
}

// GearRatioSum sums, over every gear symbol touching exactly two part
// numbers, the product of those numbers.
func (s Schematic) GearRatioSum(isGear func(sym byte) bool) int {
	gears := s.Gears(isGear)
	pts := maps.Keys(gears)
	slices.SortFunc(pts, func(a, b aoc.Pt) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	sum := 0
	for _, p := range pts {
		nums := gears[p]
		if len(nums) != 2 {
			continue
		}
		ratio := aoc.Product(nums...)
		aoc.Debugf("gear at %v: %v = %d", p, nums, ratio)
		sum += ratio
	}
	return sum
}
