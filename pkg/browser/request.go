package browser

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// DefaultOutputFile is the file name used when a request does not name one.
// It is also the fixed name Firefox gives its screenshot output, which is
// why the Firefox invoker relocates files out of its working directory.
const DefaultOutputFile = "screenshot.png"

// Size is the viewport size of the headless browser window, and by
// extension the size of the captured image.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when a request leaves Size unset.
var DefaultSize = Size{Width: 1920, Height: 1080}

// DefaultFlags are passed to the browser when no custom flags are
// configured. A configured flag list replaces these entirely.
var DefaultFlags = []string{
	"--default-background-color=00000000",
	"--hide-scrollbars",
}

var (
	ErrEmptyInput  = errors.New("input is empty")
	ErrInvalidSize = errors.New("size must consist of two integers greater than 0")
)

// Request describes a single screenshot capture.
type Request struct {
	Input      string // URL or local file path to render
	OutputDir  string // directory the image is written to
	OutputFile string // image file name, extension included
	Size       Size   // viewport size
}

// Invoker captures a screenshot by driving a headless browser subprocess.
type Invoker interface {
	Screenshot(ctx context.Context, req Request) (string, error)
	WithWorkDir(dir string) Invoker
}

func (r *Request) setDefaults() {
	if r.OutputFile == "" {
		r.OutputFile = DefaultOutputFile
	}
	if r.Size == (Size{}) {
		r.Size = DefaultSize
	}
}

func (r Request) validate() error {
	if r.Input == "" {
		return fmt.Errorf("screenshot request: %w", ErrEmptyInput)
	}
	if r.Size.Width < 1 || r.Size.Height < 1 {
		return fmt.Errorf("could not screenshot %q with size (%d, %d): %w",
			r.OutputFile, r.Size.Width, r.Size.Height, ErrInvalidSize)
	}
	return nil
}

func (r Request) destination() string {
	return filepath.Join(r.OutputDir, r.OutputFile)
}
