// Package browser invokes headless browser binaries to render a URL or
// local file and capture the result as an image.
package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/root4loot/goutils/log"
)

// Options configures a browser invoker.
type Options struct {
	Executable     string   // path to the browser binary; empty triggers search-based resolution
	Flags          []string // replaces DefaultFlags entirely when set
	PrintCommand   bool     // echo the composed command line before execution
	DisableLogging bool     // discard the browser's stdout/stderr
	WorkDir        string   // working directory for the browser process; empty means DefaultWorkDir
}

// Firefox captures screenshots with a headless Firefox subprocess.
//
// Firefox ignores any output path given to --screenshot and always writes
// a file named screenshot.png to its working directory. The invoker
// therefore runs Firefox inside WorkDir and moves the produced file to the
// requested destination afterwards.
type Firefox struct {
	Executable     string
	Flags          []string
	PrintCommand   bool
	DisableLogging bool
	WorkDir        string

	run func(*exec.Cmd) error
}

// NewFirefox resolves the Firefox executable and returns an invoker.
// Resolution failures surface here, not at capture time.
func NewFirefox(opts Options) (*Firefox, error) {
	path, err := LocateFirefox(opts.Executable)
	if err != nil {
		return nil, err
	}

	flags := opts.Flags
	if len(flags) == 0 {
		flags = append([]string(nil), DefaultFlags...)
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = DefaultWorkDir()
	}

	return &Firefox{
		Executable:     path,
		Flags:          flags,
		PrintCommand:   opts.PrintCommand,
		DisableLogging: opts.DisableLogging,
		WorkDir:        workDir,
	}, nil
}

// WithWorkDir returns a copy of the invoker using dir as the browser's
// working directory.
func (f *Firefox) WithWorkDir(dir string) Invoker {
	c := *f
	c.WorkDir = dir
	return &c
}

// Screenshot renders req.Input and writes the capture to
// req.OutputDir/req.OutputFile. It blocks until Firefox exits and returns
// the destination path.
func (f *Firefox) Screenshot(ctx context.Context, req Request) (string, error) {
	req.setDefaults()
	if err := req.validate(); err != nil {
		return "", err
	}

	dest := req.destination()
	args := f.command(req)

	if f.PrintCommand {
		fmt.Println(strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = f.WorkDir
	if !f.DisableLogging {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	// Firefox tends to exit non-zero in headless mode even when the
	// screenshot was written, so the exit status is not treated as
	// authoritative. The move below fails if no file was produced.
	if err := f.execute(cmd); err != nil {
		log.Debugf("firefox exited with error: %v", err)
	}

	if err := moveFile(filepath.Join(f.WorkDir, DefaultOutputFile), dest); err != nil {
		return "", err
	}

	return dest, nil
}

// command composes the full argument vector, executable included.
func (f *Firefox) command(req Request) []string {
	args := []string{
		f.Executable,
		"--headless",
		fmt.Sprintf("--window-size=%d,%d", req.Size.Width, req.Size.Height),
	}
	args = append(args, f.Flags...)
	args = append(args, "--screenshot", "-url", req.Input)
	return args
}

func (f *Firefox) execute(cmd *exec.Cmd) error {
	if f.run != nil {
		return f.run(cmd)
	}
	return cmd.Run()
}
