package main

import "github.com/abhinav/approval-gate/cli"

func main() {
	cli.Main(
		cli.ShortDesc("Require GitHub pull requests to be approved by a specific reviewer."),
		&cli.Command{
			Name:      "check",
			ShortDesc: "Fails unless the required reviewer approved a PR.",
			LongDesc: "Reads the required reviewer from the reviewers file and fails " +
				"unless they approved the pull request that triggered the workflow " +
				"or the pull request given as an argument.",
			Build: newCheckCommand,
		},
		&cli.Command{
			Name:      "status",
			ShortDesc: "Lists who approved or requested changes on a PR.",
			Build:     newStatusCommand,
		},
	)
}
