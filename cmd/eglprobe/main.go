// SPDX-License-Identifier: Unlicense OR MIT

// Command eglprobe reports what replay context the system EGL driver
// provides.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/gpureplay/eglplatform/internal/config"
	"github.com/gpureplay/eglplatform/internal/logger"
	"github.com/gpureplay/eglplatform/internal/thread"
	"github.com/gpureplay/eglplatform/platform"
)

func main() {
	c, err := config.Load(os.Getenv("EGLPLATFORM_CONFIG_DIR"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "eglprobe: %v\n", err)
		os.Exit(2)
	}
	fs := pflag.NewFlagSet("eglprobe", pflag.ExitOnError)
	c.WithFlags(fs)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	var log *zerolog.Logger
	if c.Log.JSON {
		log = logger.New(c.Log.Debug)
	} else {
		log = logger.NewConsole(c.Log.Debug, c.Log.Tag, c.Log.NoColor)
	}

	probe := func() error { return mainErr(c, log) }
	if c.Probe.MainThread {
		thread.Run(func() { err = thread.Main(probe) })
	} else {
		err = thread.Locked(probe)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "eglprobe: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(c config.Config, log *zerolog.Logger) error {
	sys, err := platform.ParseWindowingSystem(c.Probe.System)
	if err != nil {
		return err
	}
	p, err := platform.Open(c.Library, platform.WithLogger(log))
	if err != nil {
		return err
	}
	replay, status, err := p.InitialiseAPI()
	if status != platform.Succeeded {
		return fmt.Errorf("%v: %w", status, err)
	}
	defer p.Shutdown(replay)
	log.Info().Stringer("version", replay.Version).Bool("legacy", replay.Legacy).Msg("replay context created")

	if !p.MakeContextCurrent(replay) {
		return errors.New("couldn't make the replay context current")
	}
	w, h, err := p.GetOutputWindowDimensions(replay)
	if err != nil {
		return err
	}
	log.Info().Int32("width", w).Int32("height", h).Msg("replay surface")

	for _, name := range c.Probe.Functions {
		fn := p.GetReplayFunction(name)
		if fn == 0 {
			log.Warn().Str("func", name).Msg("function not found")
			continue
		}
		log.Info().Str("func", name).Str("addr", fmt.Sprintf("%#x", fn)).Msg("function resolved")
	}

	if c.Probe.Window == 0 {
		return nil
	}
	win := platform.WindowingData{System: sys, Window: uintptr(c.Probe.Window)}
	out, err := p.MakeOutputWindow(win, false, replay)
	defer p.DeleteContext(out)
	if !out.Valid() {
		return err
	}
	if err != nil {
		log.Warn().Err(err).Msg("output window created without a window surface")
	}
	w, h, err = p.GetOutputWindowDimensions(out)
	if err != nil {
		return err
	}
	log.Info().Int32("width", w).Int32("height", h).Bool("visible", p.IsOutputWindowVisible(out)).Msg("output window")
	return nil
}

const mainUsage = `The eglprobe command loads the system EGL driver, creates an
OpenGL ES 3.x replay context and reports what it got.

Usage:

	eglprobe [flags]

Settings are read from eglplatform.yaml and EGLPLATFORM_* environment
variables; flags override both. Flags:

`
