package browser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
)

const workDirName = "foxshot"

// DefaultWorkDir is the fixed, process-wide working directory for browser
// subprocesses, under the platform's temp root (TMP on Windows, /tmp
// elsewhere). It is shared between invocations; concurrent captures should
// use IsolatedWorkDir instead.
func DefaultWorkDir() string {
	return filepath.Join(os.TempDir(), workDirName)
}

// EnsureWorkDir creates dir if it does not exist. The invoker itself never
// creates its working directory; callers provision it before capturing.
func EnsureWorkDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// IsolatedWorkDir creates and returns a uniquely named working directory,
// so concurrent captures do not race on the fixed screenshot file name.
func IsolatedWorkDir() (string, error) {
	dir := filepath.Join(os.TempDir(), workDirName, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// StageHTML writes a raw HTML document to dir so it can be captured as a
// local file. A non-empty css string is inlined in a <style> block.
func StageHTML(dir, html, css string) (string, error) {
	if css != "" {
		html = fmt.Sprintf("<style>%s</style>\n%s", css, html)
	}

	path := filepath.Join(dir, "stage-"+uuid.NewString()+".html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// moveFile renames src to dst, overwriting dst. When src and dst are on
// different filesystems the rename is replaced by a copy and delete.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil || !isCrossDevice(err) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV)
}
