// main.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// Example main program for exercising the boggle module from the
// command line, in the idiom of the teacher's main/main.go.

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/vyevs/ansi"

	"github.com/vthorsteinsson/goboggle"
)

func main() {
	dictPath := flag.String("dict", "dicts/english.dawg", "path to the packed DAWG dictionary file")
	width := flag.Int("w", 4, "board width")
	height := flag.Int("h", 4, "board height")
	layout := flag.String("layout", "", "analyse this fixed layout instead of generating a board")
	minWords := flag.Int("min-words", 1, "minimum number of unique words")
	maxWords := flag.Int("max-words", -1, "maximum number of unique words (-1 = unbounded)")
	minScore := flag.Int("min-score", 1, "minimum total score")
	maxScore := flag.Int("max-score", -1, "maximum total score (-1 = unbounded)")
	minLongest := flag.Int("min-longest", 3, "minimum longest word length")
	maxLongest := flag.Int("max-longest", -1, "maximum longest word length (-1 = unbounded)")
	minLegalLen := flag.Int("min-legal-len", 3, "shortest word length that counts as found")
	maxTries := flag.Int("max-tries", 1000, "reroll budget before giving up")
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
	prefilter := flag.Bool("prefilter", true, "apply the cheap statistical prefilter before each full search")
	flag.Parse()

	dict, err := boggle.Load(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *layout != "" {
		words, err := boggle.Analyse(dict, boggle.StandardScoreTable, *width, *height, *layout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		printBoard(*layout, *width, *height)
		fmt.Printf("found %d words: %s\n", len(words), strings.Join(words, ", "))
		return
	}

	constraints := boggle.Constraints{
		MinWords: *minWords, MaxWords: *maxWords,
		MinScore: *minScore, MaxScore: *maxScore,
		MinLongest: *minLongest, MaxLongest: *maxLongest,
		MinLegalLen: *minLegalLen,
	}
	rng := rand.New(rand.NewSource(*seed))

	result, ok, err := boggle.Generate(
		dict, boggle.StandardScoreTable, *width, *height,
		constraints, *maxTries, boggle.StandardEnglishDice, rng, *prefilter,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Printf("no board found within %d tries\n", *maxTries)
		return
	}

	printBoard(result.DiceLayout, *width, *height)
	fmt.Printf(
		"%d words, score %d, longest %d, found in %d %s\n",
		len(result.Words), totalScore(result.Words), longest(result.Words), result.Tries,
		pluralize(result.Tries, "try", "tries"),
	)
	fmt.Println(strings.Join(result.Words, ", "))
}

// printBoard renders a layout string as a grid, coloring multi-letter
// tiles differently from ordinary letters, the way vyevs-wordle
// colors its terminal grid.
func printBoard(layout string, width, height int) {
	var sb strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := layout[y*width+x]
			color := "green"
			if c >= '0' && c <= '5' {
				color = "yellow"
			}
			sb.WriteString(ansi.FGColorName(color))
			sb.WriteByte(c)
			sb.WriteString(ansi.Clear)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

func totalScore(words []string) int {
	total := 0
	for _, w := range words {
		total += boggle.StandardScoreTable.ScoreFor(len(w))
	}
	return total
}

func longest(words []string) int {
	max := 0
	for _, w := range words {
		if len(w) > max {
			max = len(w)
		}
	}
	return max
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
