package browser

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/go-rod/rod/lib/launcher"
)

// ErrExecutableNotFound is returned when no browser binary could be
// resolved from the hint, PATH, or well-known install locations.
var ErrExecutableNotFound = errors.New("executable not found")

var firefoxNames = []string{"firefox", "firefox-esr"}

// LocateFirefox resolves the path to a Firefox binary. A non-empty hint is
// validated and returned as-is; otherwise PATH and the platform's usual
// install locations are searched.
func LocateFirefox(hint string) (string, error) {
	if hint != "" {
		return validateExecutable(hint)
	}

	for _, name := range firefoxNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	for _, path := range firefoxInstallPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("firefox: %w", ErrExecutableNotFound)
}

// LocateChrome resolves the path to a Chrome or Chromium binary. A
// non-empty hint is validated and returned as-is; otherwise the system is
// searched.
func LocateChrome(hint string) (string, error) {
	if hint != "" {
		return validateExecutable(hint)
	}

	if path, ok := launcher.LookPath(); ok {
		return path, nil
	}

	return "", fmt.Errorf("chrome: %w", ErrExecutableNotFound)
}

func validateExecutable(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%q: %w", path, ErrExecutableNotFound)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%q is a directory: %w", path, ErrExecutableNotFound)
	}
	return path, nil
}

func firefoxInstallPaths() []string {
	switch runtime.GOOS {
	case "windows":
		var paths []string
		for _, env := range []string{"PROGRAMFILES", "PROGRAMFILES(X86)", "LOCALAPPDATA"} {
			if dir := os.Getenv(env); dir != "" {
				paths = append(paths, filepath.Join(dir, "Mozilla Firefox", "firefox.exe"))
			}
		}
		return paths
	case "darwin":
		return []string{"/Applications/Firefox.app/Contents/MacOS/firefox"}
	default:
		return []string{
			"/usr/bin/firefox",
			"/usr/local/bin/firefox",
			"/snap/bin/firefox",
			"/usr/lib/firefox/firefox",
		}
	}
}
