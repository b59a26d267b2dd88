// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the driver and probe settings from a
// configuration file and the environment.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/kkyr/fig"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix = "EGLPLATFORM"
	FileName  = "eglplatform.yaml"
)

type Config struct {
	Library Library
	Log     Log
	Probe   Probe
}

// Library selects the driver module.
type Library struct {
	// Candidates are tried in order; empty selects the platform
	// defaults.
	Candidates []string
}

// Log selects the logger. Output is human readable unless JSON is set.
type Log struct {
	Debug   bool
	JSON    bool
	NoColor bool
	Tag     string `default:"egl"`
}

// Probe configures the eglprobe command.
type Probe struct {
	// System is the windowing system of Window: unknown, win32,
	// xlib, xcb, android or wayland.
	System string `default:"unknown"`
	// Window is the native window handle; 0 probes off-screen only.
	Window     uint64
	Functions  []string
	MainThread bool
}

// Load reads the configuration file from dir, or from the default
// search path if dir is empty. Environment variables with the
// EGLPLATFORM_ prefix override file values. A missing file is not an
// error.
func Load(dir string) (Config, error) {
	var c Config
	dirs := []string{dir}
	if dir == "" {
		dirs = []string{".", "configs"}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".eglplatform"))
		}
	}
	err := fig.Load(&c, fig.File(FileName), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	if errors.Is(err, fig.ErrFileNotFound) {
		c = Config{}
		err = fig.Load(&c, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
	}
	if err != nil {
		return Config{}, err
	}
	return c, nil
}

func (l *Library) WithFlags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&l.Candidates, "lib", l.Candidates, "libEGL candidates, tried in order")
}

func (l *Log) WithFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&l.Debug, "debug", l.Debug, "Enable debug logging")
	fs.BoolVar(&l.JSON, "json", l.JSON, "Log JSON records instead of human readable lines")
	fs.BoolVar(&l.NoColor, "nocolor", l.NoColor, "Disable colored console output")
}

func (p *Probe) WithFlags(fs *pflag.FlagSet) {
	fs.StringVar(&p.System, "system", p.System, "Windowing system of --window: [unknown, win32, xlib, xcb, android, wayland]")
	fs.Uint64Var(&p.Window, "window", p.Window, "Native window handle (0 for off-screen only)")
	fs.StringSliceVar(&p.Functions, "func", p.Functions, "GL functions to resolve")
	fs.BoolVar(&p.MainThread, "mainthread", p.MainThread, "Run the probe on the main OS thread")
}

// WithFlags registers flags overriding the loaded values. Call it
// after Load and before parsing fs.
func (c *Config) WithFlags(fs *pflag.FlagSet) *Config {
	c.Library.WithFlags(fs)
	c.Log.WithFlags(fs)
	c.Probe.WithFlags(fs)
	return c
}
