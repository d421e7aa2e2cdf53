package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay09Part1(t *testing.T) {
	assert := assert.New(t)

	for input, want := range map[string]string{
		"{}":                            "1",
		"{{{}}}":                        "6",
		"{{},{}}":                       "5",
		"{{{},{},{{}}}}":                "16",
		"{<a>,<a>,<a>,<a>}":             "1",
		"{{<ab>},{<ab>},{<ab>},{<ab>}}": "9",
		"{{<!!>},{<!!>},{<!!>},{<!!>}}": "9",
		"{{<a!>},{<a!>},{<a!>},{<ab>}}": "3",
	} {
		got, err := day09Part1(input)
		assert.NoError(err, input)
		assert.Equal(want, got, input)
	}
}

func TestDay09Part2(t *testing.T) {
	assert := assert.New(t)

	for input, want := range map[string]string{
		"<>":                  "0",
		"<random characters>": "17",
		"<<<<>":               "3",
		"<{!>}>":              "2",
		"<!!>":                "0",
		"<!!!>>":              "0",
		`<{o"i!a,<{i<a>`:      "10",
	} {
		got, err := day09Part2(input)
		assert.NoError(err, input)
		assert.Equal(want, got, input)
	}
}
