package foxshot

import (
	"fmt"
	"strings"
	"sync"

	"github.com/root4loot/foxshot/pkg/browser"
	"github.com/root4loot/goutils/log"
)

const Version = "0.1.0"

type Runner struct {
	Options *Options
	invoker browser.Invoker
	visited map[string]bool
	hashes  []string // ssdeep hashes of saved captures
	mutex   sync.Mutex
}

// Options contains options for the runner
type Options struct {
	Browser            string   // browser backend: "firefox" or "chrome"
	Executable         string   // explicit path to the browser binary; empty triggers search
	Flags              []string // browser flags; replaces the default flags when set
	Concurrency        int      // number of concurrent captures
	CaptureWidth       int      // viewport width of the capture
	CaptureHeight      int      // viewport height of the capture
	OutputDir          string   // folder captures are saved to
	SaveAs             string   // file name for single captures; derived from the target when empty
	Timeout            int      // timeout for each capture (seconds)
	PrintCommand       bool     // echo composed browser command lines
	DisableLogging     bool     // silence the browser's own output
	IsolateWorkDir     bool     // give each capture its own working directory
	AvoidDuplicates    bool     // skip captures similar to earlier ones
	DuplicateThreshold int      // similarity score (1-100) treated as duplicate
	NoImprint          bool     // do not stamp images with their source URL
	Silence            bool     // silence output
	Verbose            bool     // verbose logging
}

func init() {
	log.Init("foxshot")
}

// DefaultOptions returns default options
func DefaultOptions() *Options {
	return &Options{
		Browser:            "firefox",
		Concurrency:        10,
		CaptureWidth:       1920,
		CaptureHeight:      1080,
		OutputDir:          "./screenshots",
		Timeout:            30,
		IsolateWorkDir:     true,
		DuplicateThreshold: 96,
	}
}

// NewRunner returns a runner with default options. The browser executable
// is resolved here; a missing browser surfaces now, not at capture time.
func NewRunner() (*Runner, error) {
	return NewRunnerWithOptions(*DefaultOptions())
}

// NewRunnerWithOptions returns a runner with the specified options.
func NewRunnerWithOptions(options Options) (*Runner, error) {
	SetLogLevel(&options)

	invoker, err := newInvoker(&options)
	if err != nil {
		return nil, err
	}

	if err := browser.EnsureWorkDir(browser.DefaultWorkDir()); err != nil {
		return nil, err
	}

	return &Runner{
		Options: &options,
		invoker: invoker,
		visited: make(map[string]bool),
	}, nil
}

func newInvoker(options *Options) (browser.Invoker, error) {
	bopts := browser.Options{
		Executable:     options.Executable,
		Flags:          options.Flags,
		PrintCommand:   options.PrintCommand,
		DisableLogging: options.DisableLogging,
	}

	switch strings.ToLower(options.Browser) {
	case "", "firefox":
		return browser.NewFirefox(bopts)
	case "chrome", "chromium":
		return browser.NewChrome(bopts)
	default:
		return nil, fmt.Errorf("unsupported browser %q", options.Browser)
	}
}

// Single captures a single target and returns the result.
func (r *Runner) Single(target string) Result {
	if r.isVisited(target) {
		log.Debugf("Skipping %s as it has already been captured", target)
		return Result{Target: target}
	}
	r.addVisited(target)

	return r.worker(target, r.Options.SaveAs)
}

// Multiple captures multiple targets and returns the results
func (r *Runner) Multiple(targets []string) (results []Result) {
	sem := make(chan struct{}, r.Options.Concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, target := range targets {
		sem <- struct{}{}
		wg.Add(1)
		go func(t string) {
			defer func() { <-sem }()
			defer wg.Done()
			res := r.Single(t)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		}(target)
	}
	wg.Wait()

	return results
}

// MultipleStream captures multiple targets and streams the results using channels
func (r *Runner) MultipleStream(results chan<- Result, targets ...string) {
	defer close(results)

	sem := make(chan struct{}, r.Options.Concurrency)
	var wg sync.WaitGroup
	for _, target := range targets {
		sem <- struct{}{}
		wg.Add(1)
		go func(t string) {
			defer func() { <-sem }()
			defer wg.Done()
			results <- r.Single(t)
		}(target)
	}
	wg.Wait()
}

// hasScheme checks if the target has a scheme
func hasScheme(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") ||
		strings.HasPrefix(target, "file://")
}

func (r *Runner) addVisited(str string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.visited[str] = true
}

func (r *Runner) isVisited(str string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.visited[str]
}

// SetLogLevel sets the log level based on the options
func SetLogLevel(options *Options) {
	if options.Silence {
		log.SetLevel(log.FatalLevel)
	} else if options.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
