package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	foxshot "github.com/root4loot/foxshot"
	"github.com/root4loot/goutils/fileutil"
	"github.com/root4loot/goutils/log"
)

const author = "@root4loot"

type CLI struct {
	Options   *foxshot.Options
	TargetURL string
	Infile    string
	Flags     string
	Version   bool
	Help      bool
}

func init() {
	log.Init("foxshot")
}

func main() {
	cli := &CLI{Options: foxshot.DefaultOptions()}
	cli.parseFlags()
	cli.checkForExits()
	cli.setCLIOpts()

	runner, err := foxshot.NewRunnerWithOptions(*cli.Options)
	if err != nil {
		log.Fatalf("Could not initialize: %v", err)
	}

	if cli.hasStdin() {
		var targets []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			targets = append(targets, strings.Fields(scanner.Text())...)
		}
		processResults(runner, targets...)
	} else if cli.hasInfile() {
		targets, err := fileutil.ReadFile(cli.Infile)
		if err != nil {
			log.Fatalf("Error reading file: %v", err)
		}
		processResults(runner, targets...)
	} else if cli.hasTarget() {
		processResults(runner, strings.Split(cli.TargetURL, ",")...)
	}
}

// setCLIOpts applies CLI-only values to the runner options
func (c *CLI) setCLIOpts() {
	if c.Flags != "" {
		c.Options.Flags = strings.Split(c.Flags, ",")
	}
}

// processResults captures the targets and drains the result stream
func processResults(runner *foxshot.Runner, targets ...string) {
	results := make(chan foxshot.Result)

	go runner.MultipleStream(results, targets...)

	for result := range results {
		if result.Error != nil {
			log.Errorf("Could not capture %s: %v", result.Target, result.Error)
		}
	}
}

// checkForExits checks for the presence of the -h|--help and --version flags
func (c *CLI) checkForExits() {
	if c.Help {
		c.banner()
		c.usage()
		os.Exit(0)
	}
	if c.Version {
		fmt.Println("foxshot", foxshot.Version)
		os.Exit(0)
	}

	if !c.hasStdin() && !c.hasInfile() && !c.hasTarget() {
		fmt.Printf("\n%s\n\n", "Missing target")
		c.usage()
		os.Exit(1)
	}
}

// hasStdin determines if the user has piped input
func (c *CLI) hasStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	mode := stat.Mode()

	isPipedFromChrDev := (mode & os.ModeCharDevice) == 0
	isPipedFromFIFO := (mode & os.ModeNamedPipe) != 0

	return isPipedFromChrDev || isPipedFromFIFO
}

// hasTarget determines if the user has provided a target
func (c *CLI) hasTarget() bool {
	return c.TargetURL != ""
}

// hasInfile determines if the user has provided an input file
func (c *CLI) hasInfile() bool {
	return c.Infile != ""
}
