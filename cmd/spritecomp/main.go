// Command spritecomp composites image layers into one sprite following a
// TOML or YAML recipe.
//
// Usage:
//
//	spritecomp -recipe sheet.toml [-output out.png] [-zoom 4] [-v]
//
// A recipe lists layers applied bottom to top:
//
//	channel = "RGBA"
//	output = "out.png"
//
//	[[layer]]
//	path = "base.png"
//
//	[[layer]]
//	path = "shade.png"
//	x = 4
//	y = 2
//	blend = "multiply"
//	compose = "source-atop"
//
//	[transform]
//	sampling = "nearest"
//	rotate_deg = 90
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/gogpu/sprite"
)

func main() {
	var (
		recipePath = flag.String("recipe", "sprite.toml", "recipe file (.toml, .yaml or .yml)")
		output     = flag.String("output", "", "output PNG, overrides the recipe")
		zoom       = flag.Int("zoom", 1, "magnify the result, drawn over a checkerboard when > 1")
		verbose    = flag.Bool("v", false, "log compositing steps to stderr")
	)
	flag.Parse()

	if *verbose {
		sprite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	r, err := loadRecipe(*recipePath)
	if err != nil {
		log.Fatalf("Failed to load recipe: %v", err)
	}
	p, err := r.resolve()
	if err != nil {
		log.Fatalf("Invalid recipe %s: %v", *recipePath, err)
	}
	if *output != "" {
		p.output = *output
	}
	if p.output == "" {
		p.output = "sprite.png"
	}

	c, err := run(context.Background(), p)
	if err != nil {
		log.Fatalf("Failed to composite: %v", err)
	}
	img, err := render(c, *zoom)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := imgio.Save(p.output, img, imgio.PNGEncoder()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	b := img.Bounds()
	log.Printf("Sprite saved to %s (%dx%d)\n", p.output, b.Dx(), b.Dy())
}
