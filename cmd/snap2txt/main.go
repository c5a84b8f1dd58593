package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	outFile := flag.String("o", "", "Output file (default: input.txt)")
	block := flag.String("block", "2x4", "Pixels per character, WxH")
	stats := flag.Bool("stats", false, "Print ink runs of the first grid row")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: snap2txt [options] snapshot.bmp\n\nRenders a gridcal BMP snapshot as text.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  snap2txt grid.bmp\n")
		fmt.Fprintf(os.Stderr, "  snap2txt -block 1x1 -o grid_full.txt grid.bmp\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	conv := NewConverter()
	var w, h int
	if _, err := fmt.Sscanf(*block, "%dx%d", &w, &h); err != nil {
		fmt.Fprintf(os.Stderr, "error: -block must look like 2x4\n")
		os.Exit(1)
	}
	if err := conv.SetBlock(w, h); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	output, err := conv.ConvertFileFromPath(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	outputPath := *outFile
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, ".bmp") + ".txt"
	}
	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}

	if *stats {
		f, err := os.Open(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		mask, err := decodeMask(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		top := firstInkRow(mask)
		fmt.Printf("Input:  %s (%dx%d)\n", inputPath, len(mask[0]), len(mask))
		fmt.Printf("Output: %s\n", outputPath)
		if top < 0 {
			fmt.Println("No ink found")
			return
		}
		fmt.Printf("First ink row: %d, ink runs: %d\n", top, InkRuns(mask, top))
	}
}
