// Command day3 finds the part numbers and gear ratios in an engine schematic.
package main

import "github.com/aoc-solvers/aoc2023"

func main() {
	aoc.Main(partOne, partTwo)
}

func isGearSymbol(c byte) bool { return c == '*' }

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func partOne(input string) (int, error) {
	s, err := ParseSchematic(input)
	if err != nil {
		return 0, err
	}
	return s.PartNumberSum(), nil
}

// want=467835
func partTwo(input string) (int, error) {
	s, err := ParseSchematic(input)
	if err != nil {
		return 0, err
	}
	return s.GearRatioSum(isGearSymbol), nil
}
