//go:build ignore
// +build ignore

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	sixelterm "git.sr.ht/~ghost08/sixelterm"
	"git.sr.ht/~ghost08/sixelterm/termquery"
)

func main() {
	flag.Parse()

	tty, err := termquery.Open()
	if err != nil {
		log.Fatalf("open controlling terminal: %v", err)
	}
	defer tty.Close()

	sixelterm.SetLogger(log.Printf)

	if !sixelterm.Supported(tty) {
		fmt.Fprintln(os.Stderr, "warning: terminal does not advertise sixel support, output may be garbage")
	}

	q := termquery.NewQuerier(tty)
	if rows, cols, err := q.TextAreaSize(); err == nil {
		fmt.Printf("text area: %d rows x %d cols\n", rows, cols)
	}
	if width, height, err := q.WindowSizePixels(); err == nil {
		fmt.Printf("window: %dx%d px\n", width, height)
	}

	if path := flag.Arg(0); path != "" {
		if err := sixelterm.Draw(os.Stdout, path); err != nil {
			log.Fatalf("draw %s: %v", path, err)
		}
		fmt.Println()
		return
	}

	// no file given, draw a gradient
	const size = 128
	pix := make([]byte, size*size*3)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 3
			pix[i+0] = byte(x * 255 / size)
			pix[i+1] = byte(y * 255 / size)
			pix[i+2] = 128
		}
	}
	buf := &sixelterm.PixelBuffer{
		Pix:   pix,
		Rows:  size,
		Cols:  size,
		Model: sixelterm.RGB,
		Depth: 8,
	}
	if err := sixelterm.Draw(os.Stdout, buf, sixelterm.WithFlip(false)); err != nil {
		log.Fatalf("draw gradient: %v", err)
	}
	fmt.Println()
}
