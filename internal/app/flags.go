package app

import (
	"errors"
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Level     string
	Maps      string
	Width     int
	Height    int
	Scale     int
	TPS       int
	Workers   int
	Mute      bool
	MouseLook bool
	Seed      int64
	Log       string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 480, Height: 270, Scale: 2, TPS: 60, MouseLook: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Level, "level", c.Level, "level name or .map path to start in (empty shows the menu)")
	fs.StringVar(&c.Maps, "maps", c.Maps, "directory of extra .map files")
	fs.IntVar(&c.Width, "width", c.Width, "render width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "render height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per frame for casting (0 = sequential)")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable audio")
	fs.BoolVar(&c.MouseLook, "mouselook", c.MouseLook, "capture the mouse and turn with it")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "maze seed (0 = random)")
	fs.StringVar(&c.Log, "log", c.Log, "write log output to this file")
}

// Validate rejects settings no front end can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, errors.New("width and height must be positive"))
	}
	if c.Scale <= 0 {
		errs = append(errs, errors.New("scale must be positive"))
	}
	if c.TPS <= 0 {
		errs = append(errs, errors.New("tps must be positive"))
	}
	if c.Workers < 0 {
		errs = append(errs, errors.New("workers must not be negative"))
	}
	return errors.Join(errs...)
}

// LevelParams is the configuration map passed to level factories.
func (c *Config) LevelParams() map[string]string {
	if c.Seed == 0 {
		return nil
	}
	return map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
}
