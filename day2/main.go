// Command day2 plays the cube conundrum.
package main

import "github.com/aoc-solvers/aoc2023"

func main() {
	aoc.Main(partOne, partTwo)
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func partOne(input string) (int, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if g.Possible(Limit) {
			sum += g.ID
		}
	}
	return sum, nil
}

// want=2286
func partTwo(input string) (int, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += g.MinimumSet().Power()
	}
	return sum, nil
}
