package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
)

// funcCmd is a flags.Commander that runs the given function.
type funcCmd struct{ run func() error }

func (f *funcCmd) Execute([]string) error { return f.run() }

func commandOf(name string, f func() error) *Command {
	return &Command{
		Name:      name,
		ShortDesc: "test command",
		Build: func(ConfigBuilder) flags.Commander {
			return &funcCmd{run: f}
		},
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		Desc string
		Args []string
		Run  func() error

		WantCode   int
		WantOutput string
	}{
		{
			Desc: "success is silent",
			Args: []string{"check"},
			Run:  func() error { return nil },
		},
		{
			Desc:       "failure",
			Args:       []string{"check"},
			Run:        func() error { return errors.New("PR number not found") },
			WantCode:   1,
			WantOutput: "::error::PR number not found\n",
		},
		{
			Desc:       "multiline failure",
			Args:       []string{"check"},
			Run:        func() error { return errors.New("first\nsecond") },
			WantCode:   1,
			WantOutput: "::error::first%0Asecond\n",
		},
		{
			Desc:       "panic with error",
			Args:       []string{"check"},
			Run:        func() error { panic(errors.New("great sadness")) },
			WantCode:   1,
			WantOutput: "::error::great sadness\n",
		},
		{
			Desc:       "panic with arbitrary value",
			Args:       []string{"check"},
			Run:        func() error { panic(42) },
			WantCode:   1,
			WantOutput: "::error::42\n",
		},
		{
			Desc:       "panic with empty message",
			Args:       []string{"check"},
			Run:        func() error { panic("") },
			WantCode:   1,
			WantOutput: "::error::panic: \"\"\n",
		},
		{
			Desc:       "error with empty message",
			Args:       []string{"check"},
			Run:        func() error { return errors.New("") },
			WantCode:   1,
			WantOutput: "::error::command failed without an error message\n",
		},
		{
			Desc:     "unknown command",
			Args:     []string{"land"},
			Run:      func() error { return nil },
			WantCode: 1,
		},
		{
			Desc:     "no command",
			Run:      func() error { return nil },
			WantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.Desc, func(t *testing.T) {
			var stdout bytes.Buffer
			code := run(tt.Args, &stdout, ShortDesc("test program"), commandOf("check", tt.Run))

			assert.Equal(t, tt.WantCode, code)
			if tt.WantOutput != "" {
				assert.Equal(t, tt.WantOutput, stdout.String())
			}
			if tt.WantCode == 0 {
				assert.Empty(t, stdout.String())
			} else {
				assert.Contains(t, stdout.String(), "::error::")
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout bytes.Buffer
	code := run([]string{"--help"}, &stdout, commandOf("check", func() error { return nil }))

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "check")
	assert.NotContains(t, stdout.String(), "::error::")
}
