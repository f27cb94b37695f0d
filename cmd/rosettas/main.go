// Command rosettas renders a predefined set of animated hypotrochoid
// curves to an SVG file.
package main

import (
	"flag"
	"log"

	"rosetta/render"
)

var (
	output = flag.String("o", "rosettas.svg", "output file")
	size   = flag.Int("size", render.DefaultSize, "canvas width and height")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("rosettas: ")

	doc := render.Document{
		Width:    *size,
		Height:   *size,
		Rosettas: render.DefaultStyles(),
	}
	if err := doc.WriteFile(*output); err != nil {
		log.Fatalf("failed to generate SVG file: %v", err)
	}
}
