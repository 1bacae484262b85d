package actions

import (
	"fmt"
	"io"
	"strings"
)

var _escapeData = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

// Commands writes workflow commands understood by the runner.
type Commands struct {
	W io.Writer
}

// Error reports an error message. The runner shows it as an annotation on
// the workflow run.
func (c *Commands) Error(msg string) error {
	return c.issue("error", msg)
}

func (c *Commands) issue(name, msg string) error {
	_, err := fmt.Fprintf(c.W, "::%v::%v\n", name, _escapeData.Replace(msg))
	return err
}
