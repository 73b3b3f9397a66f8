// Command scatter1d draws a one-dimensional scatter plot of numbers.
//
// The numbers are taken from the command line or, if there are none,
// read whitespace separated from standard input. The image is written
// to standard output unless -o is given.
//
//	seq 1 10 | scatter1d -size 50 -o seq.png
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vdobler/prettyplot"
	"gonum.org/v1/plot/vg"
)

func main() {
	log.SetPrefix("scatter1d: ")
	log.SetFlags(0)

	var (
		flagSize   = flag.Float64("size", 100, "marker area in `points²`")
		flagWidth  = flag.Float64("width", 10, "figure width in `inches`")
		flagHeight = flag.Float64("height", 0.5, "figure height in `inches`")
		flagColor  = flag.String("color", "", "marker `color`, e.g. #1f77b4 or gray40")
		flagShape  = flag.String("shape", "", "marker `shape`, e.g. circle or solid-diamond")
		flagXLabel = flag.String("xlabel", "", "x axis `label`")
		flagFormat = flag.String("format", "", "image `format` (default: from -o, else png)")
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [numbers...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var data []float64
	var err error
	if flag.NArg() > 0 {
		data, err = parseNumbers(flag.Args())
	} else {
		data, err = readNumbers(os.Stdin)
	}
	if err != nil {
		log.Fatal(err)
	}

	fig, err := prettyplot.Scatter1D(data, &prettyplot.Options{
		Size:   *flagSize,
		Width:  vg.Length(*flagWidth) * vg.Inch,
		Height: vg.Length(*flagHeight) * vg.Inch,
		Style: prettyplot.AesMapping{
			"color": *flagColor,
			"shape": *flagShape,
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	fig.Plot().X.Label.Text = *flagXLabel

	format := *flagFormat
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(*flagOut), ".")
	}
	if format == "" {
		format = "png"
	}
	wt, err := fig.WriterTo(format)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *flagOut != "" {
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	}
	if _, err := wt.WriteTo(out); err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
}

func parseNumbers(words []string) ([]float64, error) {
	data := make([]float64, 0, len(words))
	for _, w := range words {
		x, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", w)
		}
		data = append(data, x)
	}
	return data, nil
}

func readNumbers(r io.Reader) ([]float64, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return parseNumbers(words)
}
