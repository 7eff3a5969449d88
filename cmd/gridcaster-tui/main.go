package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"gridcaster/internal/app"
	"gridcaster/internal/audio"
	"gridcaster/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run owns every resource it opens, so they are released before main exits.
func run(cfg *app.Config) error {
	// tcell owns the terminal, so logs go to a file or nowhere.
	closer, err := app.RedirectLog(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	flow, err := app.NewFlow(cfg)
	if err != nil {
		return err
	}

	sounds := audio.NewPlayer(cfg.Mute)
	audio.InitOrWarn(sounds)
	defer sounds.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := tui.New(screen, flow, sounds, cfg.TPS)
	if s := flow.Session(); s != nil {
		sounds.StartAmbience(s.Level)
	}
	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		log.Print(err)
		return err
	}
	return nil
}
