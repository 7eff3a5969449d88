package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"gridcaster/internal/level"
)

func main() {
	def := level.DefaultMazeConfig()
	w := flag.Int("w", def.Width, "maze width in cells (rounded down to odd)")
	h := flag.Int("h", def.Height, "maze height in cells (rounded down to odd)")
	braid := flag.Float64("braid", def.Braiding, "chance of opening each dead end into a loop")
	seed := flag.Int64("seed", 0, "generator seed (0 = random)")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	grid, err := level.GenerateMaze(level.MazeConfig{Width: *w, Height: *h, Braiding: *braid, Seed: *seed})
	if err != nil {
		log.Fatalf("generate maze: %v", err)
	}

	dst := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		dst = f
	}
	bw := bufio.NewWriter(dst)
	if _, err := grid.WriteTo(bw); err != nil {
		log.Fatalf("write maze: %v", err)
	}
	if err := bw.Flush(); err != nil {
		log.Fatalf("write maze: %v", err)
	}
}
