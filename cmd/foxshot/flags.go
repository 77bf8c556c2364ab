package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	foxshot "github.com/root4loot/foxshot"
)

func (c *CLI) banner() {
	fmt.Println("\nfoxshot", foxshot.Version, "by", author)
}

func (c *CLI) usage() {
	w := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)

	fmt.Fprintf(w, "Usage:\t%s [options] (-t <target> | -l <targets.txt>)\n", os.Args[0])

	fmt.Fprintf(w, "\nINPUT:\n")
	fmt.Fprintf(w, "\t%s,  %s\t%s\n", "-t", "--target", "single target (URL or local file), comma separated for multiple")
	fmt.Fprintf(w, "\t%s,  %s\t%s\n", "-l", "--list", "input file containing list of targets (one per line)")

	fmt.Fprintf(w, "\nCONFIGURATIONS:\n")
	fmt.Fprintf(w, "\t%s,   %s\t%s\t(Default: %s)\n", "-b", "--browser", "browser backend (firefox, chrome)", foxshot.DefaultOptions().Browser)
	fmt.Fprintf(w, "\t%s,   %s\t%s\n", "-e", "--executable", "explicit path to the browser binary")
	fmt.Fprintf(w, "\t%s,  %s\t%s\n", "-fl", "--flags", "browser flags, comma separated (replaces the defaults)")
	fmt.Fprintf(w, "\t%s,   %s\t%s\t(Default: %d)\n", "-c", "--concurrency", "number of concurrent captures", foxshot.DefaultOptions().Concurrency)
	fmt.Fprintf(w, "\t%s,  %s\t%s\t(Default: %d seconds)\n", "-to", "--timeout", "timeout for each capture", foxshot.DefaultOptions().Timeout)
	fmt.Fprintf(w, "\t%s,  %s\t%s\t(Default: %d)\n", "-cw", "--capture-width", "capture pixel width", foxshot.DefaultOptions().CaptureWidth)
	fmt.Fprintf(w, "\t%s,  %s\t%s\t(Default: %d)\n", "-ch", "--capture-height", "capture pixel height", foxshot.DefaultOptions().CaptureHeight)
	fmt.Fprintf(w, "\t%s,  %s\t%s\t(Default: %v)\n", "-ad", "--avoid-duplicates", "skip captures similar to earlier ones", foxshot.DefaultOptions().AvoidDuplicates)
	fmt.Fprintf(w, "\t%s,  %s\t%s\t(Default: %d)\n", "-dt", "--duplicate-threshold", "similarity score treated as duplicate (1-100)", foxshot.DefaultOptions().DuplicateThreshold)
	fmt.Fprintf(w, "\t%s,  %s\t%s\t(Default: %v)\n", "-pc", "--print-command", "echo the composed browser command", foxshot.DefaultOptions().PrintCommand)
	fmt.Fprintf(w, "\t%s,  %s\t%s\t(Default: %v)\n", "-dl", "--disable-logging", "silence the browser's own output", foxshot.DefaultOptions().DisableLogging)

	fmt.Fprintf(w, "\nOUTPUT:\n")
	fmt.Fprintf(w, "\t%s,   %s\t%s\t(Default: %s)\n", "-o", "--outfolder", "save images to given folder", foxshot.DefaultOptions().OutputDir)
	fmt.Fprintf(w, "\t%s,  %s\t%s\n", "-sa", "--save-as", "image file name (single target only)")
	fmt.Fprintf(w, "\t%s,  %s\t%s\n", "-wu", "--without-url", "do not stamp images with their source URL")
	fmt.Fprintf(w, "\t%s,   %s\t%s\n", "-s", "--silence", "silence output")
	fmt.Fprintf(w, "\t%s,   %s\t%s\n", "-v", "--verbose", "verbose output")
	fmt.Fprintf(w, "\t%s    %s\t%s\n", "  ", "--version", "display version")

	w.Flush()
	fmt.Println("")
}

// parseFlags parses the command line options and sets the options
func (c *CLI) parseFlags() {
	defaults := foxshot.DefaultOptions()

	// TARGET
	flag.StringVar(&c.TargetURL, "target", "", "")
	flag.StringVar(&c.TargetURL, "t", "", "")
	flag.StringVar(&c.Infile, "list", "", "")
	flag.StringVar(&c.Infile, "l", "", "")

	// CONFIGURATIONS
	flag.StringVar(&c.Options.Browser, "browser", defaults.Browser, "")
	flag.StringVar(&c.Options.Browser, "b", defaults.Browser, "")
	flag.StringVar(&c.Options.Executable, "executable", "", "")
	flag.StringVar(&c.Options.Executable, "e", "", "")
	flag.StringVar(&c.Flags, "flags", "", "")
	flag.StringVar(&c.Flags, "fl", "", "")
	flag.IntVar(&c.Options.Concurrency, "concurrency", defaults.Concurrency, "")
	flag.IntVar(&c.Options.Concurrency, "c", defaults.Concurrency, "")
	flag.IntVar(&c.Options.Timeout, "timeout", defaults.Timeout, "")
	flag.IntVar(&c.Options.Timeout, "to", defaults.Timeout, "")
	flag.IntVar(&c.Options.CaptureWidth, "capture-width", defaults.CaptureWidth, "")
	flag.IntVar(&c.Options.CaptureWidth, "cw", defaults.CaptureWidth, "")
	flag.IntVar(&c.Options.CaptureHeight, "capture-height", defaults.CaptureHeight, "")
	flag.IntVar(&c.Options.CaptureHeight, "ch", defaults.CaptureHeight, "")
	flag.BoolVar(&c.Options.AvoidDuplicates, "avoid-duplicates", defaults.AvoidDuplicates, "")
	flag.BoolVar(&c.Options.AvoidDuplicates, "ad", defaults.AvoidDuplicates, "")
	flag.IntVar(&c.Options.DuplicateThreshold, "duplicate-threshold", defaults.DuplicateThreshold, "")
	flag.IntVar(&c.Options.DuplicateThreshold, "dt", defaults.DuplicateThreshold, "")
	flag.BoolVar(&c.Options.PrintCommand, "print-command", defaults.PrintCommand, "")
	flag.BoolVar(&c.Options.PrintCommand, "pc", defaults.PrintCommand, "")
	flag.BoolVar(&c.Options.DisableLogging, "disable-logging", defaults.DisableLogging, "")
	flag.BoolVar(&c.Options.DisableLogging, "dl", defaults.DisableLogging, "")

	// OUTPUT
	flag.StringVar(&c.Options.OutputDir, "outfolder", defaults.OutputDir, "")
	flag.StringVar(&c.Options.OutputDir, "o", defaults.OutputDir, "")
	flag.StringVar(&c.Options.SaveAs, "save-as", "", "")
	flag.StringVar(&c.Options.SaveAs, "sa", "", "")
	flag.BoolVar(&c.Options.NoImprint, "without-url", defaults.NoImprint, "")
	flag.BoolVar(&c.Options.NoImprint, "wu", defaults.NoImprint, "")
	flag.BoolVar(&c.Options.Silence, "silence", false, "")
	flag.BoolVar(&c.Options.Silence, "s", false, "")
	flag.BoolVar(&c.Options.Verbose, "verbose", false, "")
	flag.BoolVar(&c.Options.Verbose, "v", false, "")
	flag.BoolVar(&c.Help, "help", false, "")
	flag.BoolVar(&c.Help, "h", false, "")
	flag.BoolVar(&c.Version, "version", false, "")

	flag.Usage = func() {
		c.banner()
		c.usage()
	}
	flag.Parse()
}
