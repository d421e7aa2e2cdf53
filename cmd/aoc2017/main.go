// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Advent of Code 2017 puzzle runner.
//
// Usage:
//
//	aoc2017 [-day N] [-input FILE] [-answers FILE] [-v]
//
// With no -day, every registered day runs in order. Inputs are read from
// the input/ cache, fetched with the AOC_SESSION cookie when missing. An
// -answers YAML manifest of the form
//
//	18:
//	  part1: "3423"
//	  part2: "7493"
//
// verifies the computed answers and exits non-zero on mismatch.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/aoc2017/days"
	"github.com/ezrec/aoc2017/input"
)

// Expected is one day's entry in the -answers manifest.
type Expected struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

func main() {
	var day int
	var inputFile string
	var answersFile string
	var verbose bool

	flag.IntVar(&day, "day", 0, "Day to run (0 runs all)")
	flag.StringVar(&inputFile, "input", "", "Input file override (requires -day)")
	flag.StringVar(&answersFile, "answers", "", "YAML manifest of expected answers")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if flag.NArg() != 0 {
		log.Fatal().Strs("args", flag.Args()).Msg("unexpected arguments")
	}
	if inputFile != "" && day == 0 {
		log.Fatal().Msg("-input requires -day")
	}

	expected := map[int]Expected{}
	if answersFile != "" {
		data, err := os.ReadFile(answersFile)
		if err == nil {
			err = yaml.Unmarshal(data, &expected)
		}
		if err != nil {
			log.Fatal().Err(err).Str("path", answersFile).Msg("answers manifest")
		}
	}

	var run []days.Puzzle
	if day == 0 {
		run = days.All()
	} else {
		p, ok := days.Get(day)
		if !ok {
			log.Fatal().Int("day", day).Msg("no solver registered")
		}
		run = []days.Puzzle{p}
	}

	failed := false
	for _, p := range run {
		var text string
		var err error
		if inputFile != "" {
			var data []byte
			data, err = os.ReadFile(inputFile)
			text = string(data)
		} else {
			text, err = input.Load(p.Day)
		}
		if err != nil {
			log.Error().Err(err).Int("day", p.Day).Msg("input")
			failed = true
			continue
		}

		answers := [2]string{}
		durations := [2]time.Duration{}
		parts := [2]func(string) (string, error){p.Part1, p.Part2}
		for n, part := range parts {
			start := time.Now()
			answers[n], err = part(text)
			durations[n] = time.Since(start)
			if err != nil {
				break
			}
		}
		if err != nil {
			log.Error().Err(err).Int("day", p.Day).Msg("solve")
			failed = true
			continue
		}

		fmt.Println("==================================================")
		fmt.Printf("AOC %v Day %v - %q\n", input.YEAR, p.Day, p.Title)
		fmt.Printf("[+] Part 1: %v (%v)\n", answers[0], durations[0].Round(time.Microsecond))
		fmt.Printf("[+] Part 2: %v (%v)\n", answers[1], durations[1].Round(time.Microsecond))
		fmt.Println("==================================================")

		if exp, ok := expected[p.Day]; ok {
			for n, want := range [2]string{exp.Part1, exp.Part2} {
				if want != "" && want != answers[n] {
					log.Error().Int("day", p.Day).Int("part", n+1).
						Str("want", want).Str("got", answers[n]).
						Msg("answer mismatch")
					failed = true
				}
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}
