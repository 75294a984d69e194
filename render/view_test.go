package render_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/ariadne/maze"
	"github.com/katalvlaran/ariadne/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScreen records SetContent calls on a fixed-size canvas.
type fakeScreen struct {
	w, h   int
	runes  map[[2]int]rune
	styles map[[2]int]tcell.Style
	clears int
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{w: w, h: h, runes: map[[2]int]rune{}, styles: map[[2]int]tcell.Style{}}
}

func (f *fakeScreen) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	f.runes[[2]int{x, y}] = r
	f.styles[[2]int{x, y}] = st
}
func (f *fakeScreen) Size() (int, int) { return f.w, f.h }
func (f *fakeScreen) Clear()           { f.clears++ }
func (f *fakeScreen) Show()            {}

func TestDraw_TwoColumnsPerCell(t *testing.T) {
	s := newFakeScreen(80, 24)
	render.Draw(s, scripted5x5(), render.WithWallGlyph("#"), render.WithBlankGroup(0))

	assert.Equal(t, 1, s.clears)
	assert.Len(t, s.runes, 5*5*2)
	assert.Equal(t, '#', s.runes[[2]int{0, 0}])
	assert.Equal(t, '#', s.runes[[2]int{1, 0}])
	assert.Equal(t, ' ', s.runes[[2]int{2, 1}]) // (1,1) floor
	assert.Equal(t, '#', s.runes[[2]int{4, 1}]) // (2,1) discarded connector
	assert.Equal(t, tcell.StyleDefault, s.styles[[2]int{2, 1}], "blank group is unstyled")
}

func TestDraw_ColoursUnmergedGroups(t *testing.T) {
	s := newFakeScreen(80, 24)
	g := maze.NewBuilder(5, 5, maze.WithSeed(1)).Grid() // four separate rooms
	render.Draw(s, g)

	a := s.styles[[2]int{2, 1}] // (1,1) group 0
	b := s.styles[[2]int{2, 3}] // (1,3) group 1
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, tcell.StyleDefault, a)
}

func TestDraw_ClipsToScreen(t *testing.T) {
	s := newFakeScreen(4, 2)
	render.Draw(s, scripted5x5())
	for k := range s.runes {
		assert.Less(t, k[0], 4)
		assert.Less(t, k[1], 2)
	}
	assert.Len(t, s.runes, 4*2)
}

func TestView_QuitKey(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(20, 10)

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.NoError(t, render.View(s, scripted5x5(), render.WithWallGlyph("#")))

	cells, w, _ := s.GetContents()
	require.NotEmpty(t, cells)
	assert.Equal(t, 20, w)
	assert.Equal(t, []rune{'#'}, cells[0].Runes)
}

func TestAnimate_RunsToCompletion(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(40, 20)

	b := maze.NewBuilder(11, 7, maze.WithSeed(5))
	assert.True(t, render.Animate(s, b, 0, false))
	assert.True(t, b.Done())

	_, err := maze.Verify(b.Grid())
	assert.NoError(t, err)
}

func TestAnimate_HoldEndsWhenScreenFinalised(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(40, 20)

	b := maze.NewBuilder(7, 5, maze.WithSeed(2))
	b.Run()

	finished := make(chan bool, 1)
	go func() { finished <- render.Animate(s, b, 0, true) }()
	s.Fini()

	select {
	case ok := <-finished:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Animate still holding after the screen was finalised")
	}
}

func TestAnimate_StopsWhenScreenFinalisedMidBuild(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(40, 20)

	b := maze.NewBuilder(101, 101, maze.WithSeed(4))
	finished := make(chan bool, 1)
	go func() { finished <- render.Animate(s, b, time.Hour, false) }()
	s.Fini()

	select {
	case ok := <-finished:
		assert.False(t, ok)
		assert.False(t, b.Done())
	case <-time.After(2 * time.Second):
		t.Fatal("Animate still waiting after the screen was finalised")
	}
}
