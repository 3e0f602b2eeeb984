package cmd

import (
	"fmt"

	"github.com/qt-l10n/ts-status-helper/util"
	"github.com/spf13/cobra"
)

type compareCommand struct {
	cmd *cobra.Command
}

func (v *compareCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "compare <old.json> <new.json>",
		Short: "Show score changes between two report documents",
		Long: `Show per-module score changes between two generated report documents.

Output is one line per changed score, "entity lang/module: old -> new",
and is empty when the two reports agree. Scores missing on either side
are shown as "n/a".`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v compareCommand) Execute(args []string) error {
	if len(args) != 2 {
		return newUserError("compare requires two arguments: <old.json> <new.json>")
	}

	changes, err := util.CompareReportFiles(args[0], args[1])
	if err != nil {
		return err
	}
	for _, change := range changes {
		fmt.Println(change.String())
	}

	return nil
}

var compareCmd = compareCommand{}

func init() {
	rootCmd.AddCommand(compareCmd.Command())
}
