//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridcaster/internal/app"
	"gridcaster/internal/audio"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Log != "" {
		closer, err := app.RedirectLog(cfg.Log)
		if err != nil {
			log.Fatal(err)
		}
		defer closer.Close()
	}

	flow, err := app.NewFlow(cfg)
	if err != nil {
		log.Fatal(err)
	}

	sounds := audio.NewPlayer(cfg.Mute)
	audio.InitOrWarn(sounds)

	game := app.New(cfg, flow, sounds)

	ebiten.SetWindowTitle("gridcaster")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
