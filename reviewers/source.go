// Package reviewers loads the login of the reviewer whose approval is
// required.
package reviewers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
)

// DefaultFile is the file read when no other reviewers file was specified.
const DefaultFile = "REVIEWERS"

// Source provides the login of the required reviewer.
type Source interface {
	// Load returns the reviewer's login with surrounding whitespace removed.
	// An empty string means no reviewer was configured.
	Load() (string, error)
}

// File is a Source that reads the reviewer from a file on disk.
type File string

var _ Source = File("")

// Load reads the file and returns its trimmed contents.
func (f File) Load() (_ string, err error) {
	file, err := os.Open(string(f))
	if err != nil {
		return "", err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	body, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read reviewers from %v: %v", string(f), err)
	}
	return strings.TrimSpace(string(body)), nil
}

// Static is a Source that always provides the same reviewer.
type Static string

var _ Source = Static("")

// Load returns the trimmed reviewer.
func (s Static) Load() (string, error) {
	return strings.TrimSpace(string(s)), nil
}
