package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/ariadne/maze"
)

// Screen is the subset of tcell.Screen that Draw needs.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// groupPalette colours floor cells by group id while groups are still apart.
var groupPalette = []tcell.Color{
	tcell.ColorTeal,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorPurple,
	tcell.ColorGreen,
	tcell.ColorSilver,
	tcell.ColorFuchsia,
}

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	floorStyle = tcell.StyleDefault
)

// Draw paints g onto s, two screen columns per grid cell, clipped to the screen.
// Walls use the first rune of the wall glyph; floors of the blank group are plain,
// other floors get their group's palette colour. Draw does not call Show.
func Draw(s Screen, g *maze.Grid, opts ...Option) {
	o := resolve(append([]Option{WithMode(ModeBlocks)}, opts...))
	wallRune := []rune(o.WallGlyph)[0]

	s.Clear()
	sw, sh := s.Size()
	for y := 0; y < g.Height() && y < sh; y++ {
		for x := 0; x < g.Width() && 2*x+1 < sw; x++ {
			r, style := ' ', floorStyle
			if id, ok := g.At(x, y).Group(); !ok {
				r, style = wallRune, wallStyle
			} else if !o.blank(id) {
				style = floorStyle.Background(groupPalette[id%len(groupPalette)])
			}
			s.SetContent(2*x, y, r, nil, style)
			s.SetContent(2*x+1, y, r, nil, style)
		}
	}
}

// View draws g and waits until the user presses q, Esc or Ctrl-C.
// The screen is redrawn on resize. The caller owns s (Init/Fini).
func View(s tcell.Screen, g *maze.Grid, opts ...Option) error {
	Draw(s, g, opts...)
	s.Show()
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil // screen finalised
		case *tcell.EventResize:
			s.Sync()
			Draw(s, g, opts...)
			s.Show()
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
		}
	}
}

// Animate steps b to completion, redrawing after every resolved candidate and
// pausing delay between steps (no pause when delay <= 0). A quit key stops the
// animation early; the builder is left mid-build in that case. With hold set,
// the finished maze stays on screen until a quit key. Finalising s elsewhere
// counts as a quit.
// Returns whether the build finished.
//
// Events are read on a separate goroutine, as the screen blocks in PollEvent;
// only the calling goroutine touches b. Do not poll s from elsewhere until the
// screen is finalised: that goroutine keeps reading until then.
func Animate(s tcell.Screen, b *maze.Builder, delay time.Duration, hold bool, opts ...Option) bool {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events) // screen finalised
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var tick <-chan time.Time
	if delay > 0 {
		t := time.NewTicker(delay)
		defer t.Stop()
		tick = t.C
	}

	Draw(s, b.Grid(), opts...)
	s.Show()
	for !b.Done() {
		if tick != nil {
			select {
			case ev, ok := <-events:
				if !ok || handleAnimateEvent(s, ev) {
					return false
				}
				continue
			case <-tick:
			}
		} else {
			select {
			case ev, ok := <-events:
				if !ok || handleAnimateEvent(s, ev) {
					return false
				}
			default:
			}
		}
		b.Step()
		Draw(s, b.Grid(), opts...)
		s.Show()
	}
	for hold {
		ev, ok := <-events
		if !ok || handleAnimateEvent(s, ev) {
			break
		}
		Draw(s, b.Grid(), opts...)
		s.Show()
	}
	return true
}

func handleAnimateEvent(s tcell.Screen, ev tcell.Event) (stop bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.Sync()
	case *tcell.EventKey:
		return isQuit(ev)
	}
	return false
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}
