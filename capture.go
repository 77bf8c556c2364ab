package foxshot

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glaslos/ssdeep"
	"github.com/root4loot/foxshot/pkg/browser"
	"github.com/root4loot/foxshot/pkg/imprint"
	"github.com/root4loot/goutils/log"
	"github.com/root4loot/goutils/urlutil"
)

// Result contains the result of a single capture.
type Result struct {
	Target string // the target as given
	Path   string // where the image was saved; empty if the capture was skipped
	Image  []byte // the captured image
	Error  error
}

func (r *Runner) worker(target, saveAs string) Result {
	log.Debugf("Running worker on %s", target)

	result := Result{Target: target}

	input, err := normalizeTarget(target)
	if err != nil {
		result.Error = err
		return result
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.Options.Timeout)*time.Second)
	defer cancel()

	invoker := r.invoker
	if r.Options.IsolateWorkDir {
		dir, err := browser.IsolatedWorkDir()
		if err != nil {
			result.Error = err
			return result
		}
		defer os.RemoveAll(dir)
		invoker = invoker.WithWorkDir(dir)
	}

	if err := os.MkdirAll(r.Options.OutputDir, os.ModePerm); err != nil {
		result.Error = err
		return result
	}

	if saveAs == "" {
		saveAs = fileNameForTarget(target)
	}

	path, err := invoker.Screenshot(ctx, browser.Request{
		Input:      input,
		OutputDir:  r.Options.OutputDir,
		OutputFile: saveAs,
		Size: browser.Size{
			Width:  r.Options.CaptureWidth,
			Height: r.Options.CaptureHeight,
		},
	})
	if err != nil {
		result.Error = err
		return result
	}

	result.Image, err = os.ReadFile(path)
	if err != nil {
		result.Error = err
		return result
	}

	if r.Options.AvoidDuplicates && r.isDuplicate(result.Image) {
		log.Infof("Capture of %s is similar to an earlier one, skipping", target)
		os.Remove(path)
		result.Image = nil
		return result
	}

	if !r.Options.NoImprint && isWebURL(input) {
		result.Image = r.imprintLabel(path, input, result.Image)
	}

	result.Path = path
	log.Infof("Captured %s to %s", target, path)

	return result
}

// HTML stages a raw HTML document (with optional CSS) in the working
// directory and captures it as a local file.
func (r *Runner) HTML(html, css, saveAs string) Result {
	staged, err := browser.StageHTML(browser.DefaultWorkDir(), html, css)
	if err != nil {
		return Result{Error: err}
	}
	defer os.Remove(staged)

	if saveAs == "" {
		saveAs = browser.DefaultOutputFile
	}

	return r.worker(staged, saveAs)
}

// imprintLabel stamps the capture with its origin and rewrites the file.
// Labeling failures are not fatal; the unlabeled capture survives.
func (r *Runner) imprintLabel(path, input string, img []byte) []byte {
	origin, err := urlutil.GetOrigin(input)
	if err != nil {
		log.Warnf("Could not determine origin for %s: %v", input, err)
		return img
	}

	labeled, err := imprint.Label(img, origin)
	if err != nil {
		log.Warnf("Could not label capture of %s: %v", input, err)
		return img
	}

	if err := os.WriteFile(path, labeled, 0o644); err != nil {
		log.Warnf("Could not rewrite labeled capture %s: %v", path, err)
		return img
	}

	return labeled
}

// isDuplicate reports whether img is similar to a previously saved
// capture, and records its hash otherwise.
func (r *Runner) isDuplicate(img []byte) bool {
	hash, err := ssdeep.FuzzyBytes(img)
	if err != nil {
		log.Debugf("Could not hash capture: %v", err)
		return false
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, prev := range r.hashes {
		score, err := ssdeep.Distance(hash, prev)
		if err == nil && score >= r.Options.DuplicateThreshold {
			return true
		}
	}

	r.hashes = append(r.hashes, hash)
	return false
}

func isWebURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// normalizeTarget turns a target into something the browser can load:
// URLs pass through, existing local files become absolute paths, and bare
// hostnames get a scheme.
func normalizeTarget(target string) (string, error) {
	target = strings.TrimSpace(target)

	if target == "" || hasScheme(target) {
		return target, nil
	}

	if _, err := os.Stat(target); err == nil {
		return filepath.Abs(target)
	}

	return "http://" + target, nil
}

// fileNameForTarget derives an output file name from the target.
func fileNameForTarget(target string) string {
	if !hasScheme(target) {
		base := filepath.Base(target)
		if ext := filepath.Ext(base); ext != "" {
			base = strings.TrimSuffix(base, ext)
		}
		if base == "" || base == "." || base == string(filepath.Separator) {
			return browser.DefaultOutputFile
		}
		return strings.ToLower(base) + ".png"
	}

	u, err := url.Parse(target)
	if err != nil {
		return browser.DefaultOutputFile
	}

	name := u.Scheme + "_" + u.Host
	if p := strings.Trim(u.Path, "/"); p != "" {
		name += "_" + p
	}
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, ":", "-")

	return strings.ToLower(name) + ".png"
}
