package cmd

import (
	"fmt"

	"github.com/qt-l10n/ts-status-helper/util"
	"github.com/spf13/cobra"
)

type statCommand struct {
	cmd *cobra.Command
}

func (v *statCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "stat <XX.ts>...",
		Short: "Report translation statistics for .ts catalogs",
		Long: `Report unit statistics for Qt Linguist .ts catalogs:
  translated - units with a finished translation
  total      - all countable units (obsolete and vanished excluded)

A catalog without countable units is reported as "n/a".`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v statCommand) Execute(args []string) error {
	if len(args) == 0 {
		return newUserError("stat requires at least one argument: <XX.ts>")
	}

	for _, tsFile := range args {
		if !util.Exist(tsFile) {
			return newUserError("file does not exist:", tsFile)
		}
		stats := util.CountTsStats(tsFile)
		fmt.Printf("%s: %d/%d (%s)\n",
			tsFile, stats.Translated, stats.Total, util.FormatScore(stats.Percentage()))
	}

	return nil
}

var statCmd = statCommand{}

func init() {
	rootCmd.AddCommand(statCmd.Command())
}
