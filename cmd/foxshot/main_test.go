package main

import (
	"flag"
	"os"
	"testing"

	foxshot "github.com/root4loot/foxshot"
	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = []string{"foxshot",
		"-t", "https://example.com",
		"-b", "firefox",
		"-c", "5",
		"-o", "./output",
		"-cw", "800",
		"-ch", "600",
		"-fl", "--no-sandbox,--hide-scrollbars",
		"-pc",
		"-dl",
	}

	cli := &CLI{Options: foxshot.DefaultOptions()}
	cli.parseFlags()
	cli.setCLIOpts()

	assert.Equal(t, "https://example.com", cli.TargetURL)
	assert.Equal(t, "firefox", cli.Options.Browser)
	assert.Equal(t, 5, cli.Options.Concurrency)
	assert.Equal(t, "./output", cli.Options.OutputDir)
	assert.Equal(t, 800, cli.Options.CaptureWidth)
	assert.Equal(t, 600, cli.Options.CaptureHeight)
	assert.Equal(t, []string{"--no-sandbox", "--hide-scrollbars"}, cli.Options.Flags)
	assert.True(t, cli.Options.PrintCommand)
	assert.True(t, cli.Options.DisableLogging)
}

func TestParseFlagsDefaults(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = []string{"foxshot", "-t", "https://example.com"}

	cli := &CLI{Options: foxshot.DefaultOptions()}
	cli.parseFlags()
	cli.setCLIOpts()

	defaults := foxshot.DefaultOptions()
	assert.Equal(t, defaults.Concurrency, cli.Options.Concurrency)
	assert.Equal(t, defaults.CaptureWidth, cli.Options.CaptureWidth)
	assert.Equal(t, defaults.CaptureHeight, cli.Options.CaptureHeight)
	assert.Equal(t, defaults.OutputDir, cli.Options.OutputDir)
	assert.Nil(t, cli.Options.Flags, "no custom flags should leave the browser defaults in place")
}

func TestHasTargetAndInfile(t *testing.T) {
	cli := &CLI{Options: foxshot.DefaultOptions()}
	assert.False(t, cli.hasTarget())
	assert.False(t, cli.hasInfile())

	cli.TargetURL = "https://example.com"
	cli.Infile = "targets.txt"
	assert.True(t, cli.hasTarget())
	assert.True(t, cli.hasInfile())
}
