// Command day1 recovers the trebuchet calibration values.
package main

import (
	"strings"

	"github.com/aoc-solvers/aoc2023"
)

func main() {
	aoc.Main(partOne, partTwo)
}

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit that starts at line[i], either as an ASCII digit
// or, if words is set, as a spelled-out number.
func digitAt(line string, i int, words bool) (int, bool) {
	if d, ok := aoc.Digit(line[i]); ok {
		return d, true
	}
	if !words {
		return 0, false
	}
	for n, w := range digitWords {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

// calibrationValue combines the first and last digit of line. Every start
// position is tried from each end so that overlapping words such as
// "eightwo" yield both digits.
func calibrationValue(y int, line string, words bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, words); ok {
			first = d
			break
		}
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, words); ok {
			last = d
			break
		}
	}
	if first < 0 || last < 0 {
		return 0, aoc.BadInput(y, -1, line, "no digit")
	}
	return first*10 + last, nil
}

func sumCalibration(input string, words bool) (int, error) {
	var values []int
	err := aoc.ForLines(input, func(y int, line string) error {
		v, err := calibrationValue(y, line, words)
		if err != nil {
			return err
		}
		values = append(values, v)
		return nil
	})
	if err != nil {
		return 0, err
	}
	aoc.Debugf("decoded %d calibration lines", len(values))
	return aoc.Sum(values...), nil
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func partOne(input string) (int, error) {
	return sumCalibration(input, false)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func partTwo(input string) (int, error) {
	return sumCalibration(input, true)
}
