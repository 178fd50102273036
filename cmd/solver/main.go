// Command solver reads a puzzle from a clue file (whitespace-separated
// 1-based "row col value" triples) and appends the solved grid to an
// output file. It exits with a non-zero status when the puzzle cannot be
// solved; the solving engine itself never terminates the process.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mvanko/sudoku-server/internal/sudoku"
)

var log = logrus.New()

func main() {
	verbose := flag.Bool("v", false, "print the puzzle and its solution to stdout")
	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatalf("usage: %s [-v] <input-file> <output-file>", os.Args[0])
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	in, err := os.Open(inPath)
	if err != nil {
		log.Fatal("unable to open input file: ", err)
	}
	clues, err := sudoku.ParseClues(in)
	in.Close()
	if err != nil {
		log.Fatalf("unable to read %s: %s", inPath, err)
	}

	if *verbose {
		if err := sudoku.Render(os.Stdout, inPath, clues); err != nil {
			log.Fatal("unable to print puzzle: ", err)
		}
	}

	grid := sudoku.NewGrid(clues)
	if !grid.Solve() {
		log.Fatal("puzzle cannot be solved")
	}

	if *verbose {
		if err := sudoku.Render(os.Stdout, inPath, grid.Cells); err != nil {
			log.Fatal("unable to print solution: ", err)
		}
	}

	out, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal("unable to open output file: ", err)
	}
	defer out.Close()

	if err := sudoku.Render(out, inPath, grid.Cells); err != nil {
		log.Fatal("unable to write solution: ", err)
	}
}
