package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/abhinav/approval-gate/actions"

	"github.com/jessevdk/go-flags"
)

type mainConfig struct {
	ShortDesc string
	Commands  []*Command
}

// Main is the entry point for programs provided by this package.
//
// Failures are reported to the Actions runner and the program exits with a
// non-zero status. Nothing is written on success.
func Main(opts ...Option) {
	os.Exit(run(os.Args[1:], os.Stdout, opts...))
}

func run(args []string, stdout io.Writer, opts ...Option) (exitCode int) {
	log.SetFlags(0)

	report := func(msg string) int {
		cmds := actions.Commands{W: stdout}
		if werr := cmds.Error(msg); werr != nil {
			log.Printf("could not report failure %q: %v", msg, werr)
		}
		return 1
	}

	// Anything a command panics with still fails the run.
	defer func() {
		if r := recover(); r != nil {
			exitCode = report(panicMessage(r))
		}
	}()

	var cfg mainConfig
	for _, o := range opts {
		o.apply(&cfg)
	}

	var gcfg globalConfig
	parser := flags.NewParser(&gcfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.ShortDescription = cfg.ShortDesc
	for _, cmd := range cfg.Commands {
		_, err := parser.AddCommand(
			cmd.Name, cmd.ShortDesc, cmd.LongDesc, cmd.Build(gcfg.Build))
		if err != nil {
			return report(fmt.Sprintf("could not register command %q: %v", cmd.Name, err))
		}
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return 0
		}
		return report(errorMessage(err))
	}
	return 0
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "command failed without an error message"
}

// panicMessage describes a value recovered from a panic.
func panicMessage(r interface{}) string {
	if err, ok := r.(error); ok {
		return errorMessage(err)
	}
	if msg := fmt.Sprint(r); msg != "" {
		return msg
	}
	return fmt.Sprintf("panic: %#v", r)
}
