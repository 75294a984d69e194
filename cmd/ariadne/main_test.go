package main

import (
	"bytes"
	"flag"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/ariadne/input"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(stdin string, tty bool) (env, *bytes.Buffer, *test.Hook) {
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	return env{
		stdin:     strings.NewReader(stdin),
		stdout:    &out,
		stderr:    io.Discard,
		stdinTTY:  tty,
		stdoutTTY: false,
		log:       logger,
	}, &out, hook
}

func TestRun_FlagsGroupsMode(t *testing.T) {
	e, out, _ := testEnv("", false)
	require.NoError(t, run([]string{"-width", "7", "-height", "5", "-seed", "3"}, e))

	lines := strings.Split(out.String(), "\n")
	require.Len(t, lines, 2+5+2) // two leading blanks, five rows, one trailing blank
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "X X X X X X X ", lines[2])
	assert.Equal(t, "X X X X X X X ", lines[6])
	assert.Equal(t, "", lines[7])
	assert.True(t, strings.HasSuffix(out.String(), "X \n\n"))
	assert.NotContains(t, out.String(), "0", "merged group prints blank")
}

func TestRun_LogsClockSeed(t *testing.T) {
	e, out, hook := testEnv("", false)
	require.NoError(t, run([]string{"-width", "21", "-height", "11"}, e))

	var seed int64
	for _, entry := range hook.AllEntries() {
		if entry.Message == "building maze" {
			s, ok := entry.Data["seed"].(int64)
			require.True(t, ok, "seed field is %T", entry.Data["seed"])
			seed = s
		}
	}
	require.NotZero(t, seed)

	again, replay, _ := testEnv("", false)
	require.NoError(t, run([]string{"-width", "21", "-height", "11", "-seed", strconv.FormatInt(seed, 10)}, again))
	assert.Equal(t, out.String(), replay.String())
}

func TestRun_PromptsWhenInteractive(t *testing.T) {
	e, out, _ := testEnv("4\n5\n3\n", true)
	require.NoError(t, run([]string{"-mode", "blocks", "-seed", "1"}, e))

	s := out.String()
	assert.Equal(t, 2, strings.Count(s, input.WidthPrompt))
	assert.Equal(t, 1, strings.Count(s, input.HeightPrompt))
	assert.Contains(t, s, "\n") // maze follows the prompts
}

func TestRun_PipedInputHidesPrompts(t *testing.T) {
	e, out, _ := testEnv("5\n5\n", false)
	require.NoError(t, run([]string{"-seed", "9"}, e))
	assert.NotContains(t, out.String(), input.WidthPrompt)
}

func TestRun_VerifyAndVerboseLogging(t *testing.T) {
	e, _, hook := testEnv("", false)
	require.NoError(t, run([]string{"-width", "5", "-height", "5", "-seed", "2", "-verify", "-v"}, e))

	var resolved, verified int
	for _, entry := range hook.AllEntries() {
		switch entry.Message {
		case "connector resolved":
			resolved++
			assert.Equal(t, logrus.DebugLevel, entry.Level)
		case "maze verified":
			verified++
			assert.Equal(t, 3, entry.Data["opened"])
		}
	}
	assert.Equal(t, 4, resolved)
	assert.Equal(t, 1, verified)
}

func TestRun_ViewFallsBackWithoutTerminal(t *testing.T) {
	e, out, hook := testEnv("", false)
	require.NoError(t, run([]string{"-width", "5", "-height", "5", "-view"}, e))
	assert.NotEmpty(t, out.String())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRun_Errors(t *testing.T) {
	e, _, _ := testEnv("", false)
	assert.ErrorIs(t, run([]string{"-width", "4", "-height", "5"}, e), input.ErrNotOdd)

	e, _, _ = testEnv("", false)
	assert.ErrorIs(t, run([]string{"-mode", "ascii", "-width", "5", "-height", "5"}, e), errUsage)

	e, _, _ = testEnv("", false)
	assert.ErrorIs(t, run([]string{"-h"}, e), flag.ErrHelp)

	e, _, _ = testEnv("8\n", false)
	assert.ErrorIs(t, run(nil, e), io.EOF)
}
