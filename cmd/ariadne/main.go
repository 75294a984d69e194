// Command ariadne generates a perfect maze and prints it.
//
// Usage:
//
//	ariadne [-width 21 -height 11] [-seed 7] [-mode groups|blocks] [-view [-animate -delay 20ms]] [-verify] [-v]
//
// Missing dimensions are asked for on the console until an odd number is entered.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/ariadne/input"
	"github.com/katalvlaran/ariadne/maze"
	"github.com/katalvlaran/ariadne/render"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// env is everything run needs from the process.
type env struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	stdinTTY  bool
	stdoutTTY bool
	log       *logrus.Logger
}

type config struct {
	width, height int
	seed          int64
	mode          render.Mode
	view          bool
	animate       bool
	delay         time.Duration
	verify        bool
	verbose       bool
}

var errUsage = errors.New("usage")

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	e := env{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		stdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		stdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		log:       log,
	}
	if err := run(os.Args[1:], e); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.WithError(err).Fatal("ariadne failed")
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg  config
		mode string
	)
	fs := flag.NewFlagSet("ariadne", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.width, "width", 0, "maze width, odd (0 = ask)")
	fs.IntVar(&cfg.height, "height", 0, "maze height, odd (0 = ask)")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed (0 = clock)")
	fs.StringVar(&mode, "mode", "groups", "text layout: groups or blocks")
	fs.BoolVar(&cfg.view, "view", false, "show the maze in an interactive terminal view")
	fs.BoolVar(&cfg.animate, "animate", false, "with -view, animate the build step by step")
	fs.DurationVar(&cfg.delay, "delay", 20*time.Millisecond, "pause between animation steps")
	fs.BoolVar(&cfg.verify, "verify", false, "check the perfect-maze properties after building")
	fs.BoolVar(&cfg.verbose, "v", false, "log every resolved connector")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	m, ok := render.ParseMode(mode)
	if !ok {
		return cfg, fmt.Errorf("%w: unknown -mode %q", errUsage, mode)
	}
	cfg.mode = m
	return cfg, nil
}

func run(args []string, e env) error {
	cfg, err := parseFlags(args, e.stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		e.log.SetLevel(logrus.DebugLevel)
	}

	if cfg.width == 0 || cfg.height == 0 {
		promptOut := e.stdout
		if !e.stdinTTY {
			promptOut = io.Discard // piped answers: keep stdout to the maze
		}
		p := input.NewPrompter(e.stdin, promptOut, e.log)
		if cfg.width == 0 {
			if cfg.width, err = p.Dimension(input.WidthPrompt); err != nil {
				return err
			}
		}
		if cfg.height == 0 {
			if cfg.height, err = p.Dimension(input.HeightPrompt); err != nil {
				return err
			}
		}
	}
	if err := input.ValidateDimensions(cfg.width, cfg.height); err != nil {
		return err
	}

	if cfg.seed == 0 {
		cfg.seed = clockSeed()
	}
	opts := []maze.Option{
		maze.WithSeed(cfg.seed),
		maze.WithOnResolve(func(r maze.Resolution) {
			e.log.WithFields(logrus.Fields{
				"x":       r.Point.X,
				"y":       r.Point.Y,
				"outcome": r.Outcome.String(),
				"groups":  r.Merged,
				"group":   r.Group,
			}).Debug("connector resolved")
		}),
	}
	b := maze.NewBuilder(cfg.width, cfg.height, opts...)
	e.log.WithFields(logrus.Fields{
		"width":      cfg.width,
		"height":     cfg.height,
		"seed":       cfg.seed,
		"connectors": b.Remaining(),
	}).Info("building maze")

	if cfg.view && !e.stdoutTTY {
		e.log.Warn("stdout is not a terminal, printing text instead of -view")
		cfg.view = false
	}
	if cfg.view {
		return runView(b, cfg, e)
	}

	g := b.Run()
	if err := verify(g, cfg, e); err != nil {
		return err
	}
	return render.Text(e.stdout, g, textOptions(g, cfg)...)
}

// clockSeed picks a non-zero seed from the clock, so the logged seed
// reproduces the run.
func clockSeed() int64 {
	if seed := time.Now().UnixNano(); seed != 0 {
		return seed
	}
	return 1
}

func runView(b *maze.Builder, cfg config, e env) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	// Log lines would tear the screen; keep them quiet while it is up.
	out := e.log.Out
	e.log.SetOutput(io.Discard)
	defer e.log.SetOutput(out)
	defer s.Fini()

	if cfg.animate {
		if !render.Animate(s, b, cfg.delay, true) {
			return nil // quit mid-build
		}
		return verify(b.Grid(), cfg, e)
	}
	g := b.Run()
	if err := verify(g, cfg, e); err != nil {
		return err
	}
	return render.View(s, g, blankMerged(g)...)
}

func verify(g *maze.Grid, cfg config, e env) error {
	if !cfg.verify {
		return nil
	}
	st, err := maze.Verify(g)
	if err != nil {
		return err
	}
	e.log.WithFields(logrus.Fields{
		"perma_floors": st.PermaFloors,
		"connectors":   st.Connectors,
		"opened":       st.Opened,
		"discarded":    st.Discarded,
	}).Info("maze verified")
	return nil
}

// blankMerged hides the id of a fully merged grid.
func blankMerged(g *maze.Grid) []render.Option {
	if ids := g.Groups(); len(ids) == 1 {
		return []render.Option{render.WithBlankGroup(ids[0])}
	}
	return nil
}

// textOptions blanks the merged group; groups mode adds two leading lines and
// one trailing line around the board.
func textOptions(g *maze.Grid, cfg config) []render.Option {
	opts := append([]render.Option{render.WithMode(cfg.mode)}, blankMerged(g)...)
	if cfg.mode == render.ModeGroups {
		opts = append(opts, render.WithLeadingLines(2), render.WithTrailingLines(1))
	}
	return opts
}
