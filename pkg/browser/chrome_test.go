package browser

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromeCommandComposition(t *testing.T) {
	c := &Chrome{
		Executable: "/usr/bin/chromium",
		Flags:      DefaultFlags,
	}

	args := c.command(Request{
		Input:      "https://example.com",
		OutputDir:  "/out",
		OutputFile: "a.png",
		Size:       Size{Width: 800, Height: 600},
	}, filepath.Join("/out", "a.png"))

	assert.Equal(t, []string{
		"/usr/bin/chromium",
		"--headless",
		"--screenshot=" + filepath.Join("/out", "a.png"),
		"--window-size=800,600",
		"--default-background-color=00000000",
		"--hide-scrollbars",
		"https://example.com",
	}, args)
}

func TestChromeScreenshotValidation(t *testing.T) {
	spawned := 0
	c := &Chrome{
		Executable: "/usr/bin/chromium",
		run:        func(*exec.Cmd) error { spawned++; return nil },
	}

	_, err := c.Screenshot(context.Background(), Request{Input: ""})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = c.Screenshot(context.Background(), Request{
		Input: "x.html",
		Size:  Size{Width: 800, Height: -1},
	})
	require.ErrorIs(t, err, ErrInvalidSize)
	assert.Contains(t, err.Error(), "(800, -1)")

	assert.Zero(t, spawned)
}

func TestChromeScreenshotWritesDestination(t *testing.T) {
	outDir := t.TempDir()

	c := &Chrome{
		Executable: "chromium",
		run: func(cmd *exec.Cmd) error {
			// chrome writes the destination itself via --screenshot=<path>
			for _, arg := range cmd.Args {
				if strings.HasPrefix(arg, "--screenshot=") {
					return os.WriteFile(strings.TrimPrefix(arg, "--screenshot="), []byte("png"), 0o644)
				}
			}
			return nil
		},
	}

	dest, err := c.Screenshot(context.Background(), Request{
		Input:      "https://example.com",
		OutputDir:  outDir,
		OutputFile: "a.png",
		Size:       Size{Width: 800, Height: 600},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "a.png"), dest)
	assert.FileExists(t, dest)
}

func TestChromeScreenshotMissingOutput(t *testing.T) {
	c := &Chrome{
		Executable: "chromium",
		run:        func(*exec.Cmd) error { return nil },
	}

	_, err := c.Screenshot(context.Background(), Request{
		Input:     "https://example.com",
		OutputDir: t.TempDir(),
	})

	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
