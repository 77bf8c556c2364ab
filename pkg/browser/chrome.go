package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/root4loot/goutils/log"
)

// Chrome captures screenshots with a headless Chrome or Chromium
// subprocess. Unlike Firefox, Chrome honors an explicit output path on its
// --screenshot flag, so no working-directory relocation is needed.
type Chrome struct {
	Executable     string
	Flags          []string
	PrintCommand   bool
	DisableLogging bool

	run func(*exec.Cmd) error
}

// NewChrome resolves the Chrome executable and returns an invoker.
func NewChrome(opts Options) (*Chrome, error) {
	path, err := LocateChrome(opts.Executable)
	if err != nil {
		return nil, err
	}

	flags := opts.Flags
	if len(flags) == 0 {
		flags = append([]string(nil), DefaultFlags...)
	}

	return &Chrome{
		Executable:     path,
		Flags:          flags,
		PrintCommand:   opts.PrintCommand,
		DisableLogging: opts.DisableLogging,
	}, nil
}

// WithWorkDir satisfies Invoker. Chrome writes straight to the
// destination, so the working directory is irrelevant.
func (c *Chrome) WithWorkDir(string) Invoker {
	return c
}

// Screenshot renders req.Input and writes the capture to
// req.OutputDir/req.OutputFile, returning the destination path.
func (c *Chrome) Screenshot(ctx context.Context, req Request) (string, error) {
	req.setDefaults()
	if err := req.validate(); err != nil {
		return "", err
	}

	dest := req.destination()
	args := c.command(req, dest)

	if c.PrintCommand {
		fmt.Println(strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if !c.DisableLogging {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := c.execute(cmd); err != nil {
		log.Debugf("chrome exited with error: %v", err)
	}

	if _, err := os.Stat(dest); err != nil {
		return "", err
	}

	return dest, nil
}

func (c *Chrome) command(req Request, dest string) []string {
	args := []string{
		c.Executable,
		"--headless",
		fmt.Sprintf("--screenshot=%s", dest),
		fmt.Sprintf("--window-size=%d,%d", req.Size.Width, req.Size.Height),
	}
	args = append(args, c.Flags...)
	args = append(args, req.Input)
	return args
}

func (c *Chrome) execute(cmd *exec.Cmd) error {
	if c.run != nil {
		return c.run(cmd)
	}
	return cmd.Run()
}
