package app

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridcaster/internal/game"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-level", "the_cave", "-workers", "4", "-mute", "-seed", "9", "-width", "320"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Level != "the_cave" || cfg.Workers != 4 || !cfg.Mute || cfg.Width != 320 || cfg.Height != 270 {
		t.Fatalf("config = %+v", cfg)
	}
	if got := cfg.LevelParams()["seed"]; got != "9" {
		t.Fatalf("seed param = %q", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Scale, cfg.Workers = 0, 0, -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("invalid config accepted")
	}
	for _, want := range []string{"width", "scale", "workers"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %s", err, want)
		}
	}
	if NewConfig().LevelParams() != nil {
		t.Fatal("seed 0 should leave the maze random")
	}
}

func TestNewFlow(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app_extra.map"), []byte("1 1 1\n1 0 1\n1 9 1\n1 1 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Maps = dir
	flow, err := NewFlow(cfg)
	if err != nil {
		t.Fatalf("NewFlow: %v", err)
	}
	title, ok := flow.Screen().(game.ScreenTitle)
	if !ok {
		t.Fatalf("screen = %#v", flow.Screen())
	}
	found := false
	for _, name := range title.Levels {
		found = found || name == "app_extra"
	}
	if !found {
		t.Fatalf("discovered level missing from %v", title.Levels)
	}

	cfg.Level = "banana_land"
	flow, err = NewFlow(cfg)
	if err != nil || flow.Session() == nil || flow.Session().Level != "banana_land" {
		t.Fatalf("start level: flow=%v err=%v", flow, err)
	}

	cfg.Level = "nope"
	if _, err := NewFlow(cfg); err == nil {
		t.Fatal("unknown start level accepted")
	}
}

func TestRendererSequentialMatchesParallel(t *testing.T) {
	cfg := NewConfig()
	cfg.Level = "monkey_temple"
	flow, err := NewFlow(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s := flow.Session()
	s.Pose.Rotate(0.7)

	seq := NewRenderer(64, 40, 0)
	par := NewRenderer(64, 40, 3)
	if err := seq.Render(context.Background(), s, 60); err != nil {
		t.Fatal(err)
	}
	if err := par.Render(context.Background(), s, 60); err != nil {
		t.Fatal(err)
	}
	if string(seq.FB.Pix) != string(par.FB.Pix) {
		t.Fatal("parallel render differs from sequential")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := par.Render(ctx, s, 60); err == nil {
		t.Fatal("cancelled render should fail")
	}
}

func TestRedirectLog(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	path := filepath.Join(t.TempDir(), "run.log")
	c, err := RedirectLog(path)
	if err != nil {
		t.Fatal(err)
	}
	log.Print("hello")
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(data), "hello") {
		t.Fatalf("log file = %q, %v", data, err)
	}
	if _, err := RedirectLog(filepath.Join(path, "sub", "x.log")); err == nil {
		t.Fatal("unwritable log path accepted")
	}
}
