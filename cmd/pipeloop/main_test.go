package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/internal/cli"
	"github.com/katalvlaran/pipeloop/loop"
)

func noEnv(string) (string, bool) { return "", false }

func writePuzzle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const square = ".....\n.S-7.\n.|.|.\n.L-J.\n.....\n"

func TestRun_BothParts(t *testing.T) {
	t.Parallel()
	path := writePuzzle(t, square)

	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{path}, noEnv))

	assert.Equal(t, "part1: 4\npart2: 1\n", out.String())
	assert.Contains(t, errOut.String(), "Puzzle solved.")
}

func TestRun_PartAndRender(t *testing.T) {
	t.Parallel()
	path := writePuzzle(t, square)

	var out bytes.Buffer
	require.NoError(t, run(&out, &bytes.Buffer{}, []string{"-part", "2", "-render", "-log-level", "error", path}, noEnv))

	want := "part2: 1\n" +
		"░░░░░\n" +
		"░┌─┐░\n" +
		"░│█│░\n" +
		"░└─┘░\n" +
		"░░░░░\n"
	assert.Equal(t, want, out.String())
}

func TestRun_EnvironmentSelectsPart(t *testing.T) {
	t.Parallel()
	path := writePuzzle(t, square)
	env := func(k string) (string, bool) {
		switch k {
		case "PIPELOOP_PART":
			return "1", true
		case "PIPELOOP_INPUT":
			return path, true
		}
		return "", false
	}

	var out bytes.Buffer
	require.NoError(t, run(&out, &bytes.Buffer{}, nil, env))
	assert.Equal(t, "part1: 4\n", out.String())
}

func TestRun_DebugLogsStages(t *testing.T) {
	t.Parallel()
	path := writePuzzle(t, square)

	var errOut bytes.Buffer
	require.NoError(t, run(&bytes.Buffer{}, &errOut, []string{"-log-level", "debug", "-log-format", "json", path}, noEnv))

	assert.Contains(t, errOut.String(), `"msg":"Loop traced."`)
	assert.Contains(t, errOut.String(), `"loop_len":8`)
}

func TestRun_PuzzleError(t *testing.T) {
	t.Parallel()
	path := writePuzzle(t, "...\n.S-\n...\n")

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{path}, noEnv)
	assert.ErrorIs(t, err, loop.ErrAmbiguousStart)
	assert.Empty(t, out.String(), "no partial answers")
	assert.Contains(t, errOut.String(), "Puzzle rejected.")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "absent.txt")}, noEnv)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-part", "7", "x.txt"}, noEnv)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_Profile(t *testing.T) {
	path := writePuzzle(t, square)
	dir := t.TempDir()

	require.NoError(t, run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-profile", dir, path}, noEnv))
	_, err := os.Stat(filepath.Join(dir, "cpu.pprof"))
	assert.NoError(t, err)
}
