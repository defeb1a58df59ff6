// Package deps checks the optional system support songdb relies on.
package deps

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// ClipboardInstallHint names the helpers the clipboard copy needs on Linux.
const ClipboardInstallHint = "install xclip, xsel or wl-clipboard"

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name string
	Hint string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s unavailable: %s", e.Name, e.Hint)
}

// CheckClipboard reports whether copying item codes can work.
func CheckClipboard() error {
	if clipboard.Unsupported {
		return &DependencyError{
			Name: "clipboard",
			Hint: ClipboardInstallHint,
		}
	}
	return nil
}

// CheckWritableDir checks that files can be created in dir, creating it if
// needed.
func CheckWritableDir(name, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &DependencyError{Name: name, Hint: err.Error()}
	}
	f, err := os.CreateTemp(dir, ".songdb-check-*")
	if err != nil {
		return &DependencyError{Name: name, Hint: fmt.Sprintf("%s is not writable", dir)}
	}
	path := f.Name()
	f.Close()
	os.Remove(path)
	return nil
}
