// Package git runs the local git binary.
package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Output runs git with the given arguments in dir and returns its
// standard output.
func Output(dir string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %v: %v: %v", strings.Join(args, " "), err, msg)
		}
		return "", fmt.Errorf("git %v: %v", strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}

// RemoteURL returns the URL of the named remote of the repository in dir.
func RemoteURL(dir, remote string) (string, error) {
	out, err := Output(dir, "remote", "get-url", remote)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
