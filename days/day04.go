package days

import (
	"slices"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{Day: 4, Title: "High-Entropy Passphrases", Part1: day04Part1, Part2: day04Part2})
}

// day04Valid reports whether no two words of the passphrase match after
// normalization.
func day04Valid(line string, normalize func(string) string) bool {
	seen := map[string]bool{}
	for _, word := range strings.Fields(line) {
		word = normalize(word)
		if seen[word] {
			return false
		}
		seen[word] = true
	}
	return true
}

// day04Anagram normalizes a word to its sorted letters.
func day04Anagram(word string) string {
	letters := []byte(word)
	slices.Sort(letters)
	return string(letters)
}

func day04Part1(input string) (string, error) {
	count := 0
	for _, line := range lines(input) {
		if day04Valid(line, func(w string) string { return w }) {
			count++
		}
	}
	return strconv.Itoa(count), nil
}

func day04Part2(input string) (string, error) {
	count := 0
	for _, line := range lines(input) {
		if day04Valid(line, day04Anagram) {
			count++
		}
	}
	return strconv.Itoa(count), nil
}
