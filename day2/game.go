package main

import (
	"strings"

	"github.com/aoc-solvers/aoc2023"
)

// A CubeSet is one handful of cubes revealed from the bag.
type CubeSet struct {
	Red, Green, Blue int
}

// Limit is the bag content part one asks about.
var Limit = CubeSet{Red: 12, Green: 13, Blue: 14}

// Within reports whether s could have been drawn from a bag holding limit.
func (s CubeSet) Within(limit CubeSet) bool {
	return s.Red <= limit.Red && s.Green <= limit.Green && s.Blue <= limit.Blue
}

// Power is the product of the three counts.
func (s CubeSet) Power() int {
	return aoc.Product(s.Red, s.Green, s.Blue)
}

// A Game is one line of input: an id and the sets revealed in it.
type Game struct {
	ID   int
	Sets []CubeSet
}

// Possible reports whether every set of g fits within limit.
func (g Game) Possible(limit CubeSet) bool {
	for _, s := range g.Sets {
		if !s.Within(limit) {
			return false
		}
	}
	return true
}

// MinimumSet returns the fewest cubes of each color that make g possible.
func (g Game) MinimumSet() CubeSet {
	var m CubeSet
	for _, s := range g.Sets {
		m.Red = max(m.Red, s.Red)
		m.Green = max(m.Green, s.Green)
		m.Blue = max(m.Blue, s.Blue)
	}
	return m
}

// ParseGame parses a line like
//
//	Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
//
// y is the line number used in errors.
func ParseGame(y int, line string) (Game, error) {
	rest, ok := strings.CutPrefix(line, "Game ")
	if !ok {
		return Game{}, aoc.BadInput(y, 0, line, "missing %q prefix", "Game ")
	}
	idText, sets, ok := strings.Cut(rest, ":")
	if !ok {
		return Game{}, aoc.BadInput(y, -1, line, "missing ':'")
	}
	id, err := aoc.ParseUint(idText)
	if err != nil {
		return Game{}, aoc.BadInput(y, len("Game "), idText, "bad game id").Wrap(err)
	}
	g := Game{ID: id}
	col := len("Game ") + len(idText) + 1
	for _, text := range strings.Split(sets, ";") {
		s, err := parseSet(y, col, text)
		if err != nil {
			return Game{}, err
		}
		g.Sets = append(g.Sets, s)
		col += len(text) + 1
	}
	return g, nil
}

// parseSet parses "3 blue, 4 red". col is the column of text within its line.
func parseSet(y, col int, text string) (CubeSet, error) {
	var s CubeSet
	for _, draw := range strings.Split(text, ",") {
		f := strings.Fields(draw)
		if len(f) == 0 && strings.TrimSpace(text) == "" {
			break
		}
		if len(f) != 2 {
			return s, aoc.BadInput(y, col, draw, "want \"<count> <color>\"")
		}
		n, err := aoc.ParseUint(f[0])
		if err != nil {
			return s, aoc.BadInput(y, col, draw, "bad count").Wrap(err)
		}
		switch f[1] {
		case "red":
			s.Red += n
		case "green":
			s.Green += n
		case "blue":
			s.Blue += n
		default:
			return s, aoc.BadInput(y, col, draw, "unknown color %q", f[1])
		}
		col += len(draw) + 1
	}
	return s, nil
}

// ParseGames parses one game per line.
func ParseGames(input string) ([]Game, error) {
	var games []Game
	err := aoc.ForLines(input, func(y int, line string) error {
		g, err := ParseGame(y, line)
		if err != nil {
			return err
		}
		games = append(games, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	aoc.Log.WithField("fingerprint", aoc.Fingerprint(&games)).Debugf("parsed %d games", len(games))
	return games, nil
}
