package cmd

import (
	"fmt"
	"os"

	"github.com/qt-l10n/ts-status-helper/config"
	"github.com/qt-l10n/ts-status-helper/flag"
	"github.com/qt-l10n/ts-status-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type reportCommand struct {
	cmd *cobra.Command
	O   struct {
		Config    string
		RootDir   string
		JSONFile  string
		HTMLFile  string
		BranchMap string
		WithFiles bool
	}
}

func (v *reportCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "report <collectionId:version:state>...",
		Short: "Build a translation status report over collections",
		Long: `Build a translation status report over the given collections.

Each argument is an entity descriptor of the form collectionId:version:state,
e.g. qt-current:6.9:dev. The collectionId prefix selects the product family
(qt-, qtcreator-, qtifw-) and names the directory below --root-dir holding
the catalogs. Known states: dev, soft, hard, maint, lts, old.

Without --json/--html the JSON document is written to stdout. Descriptors
may also come from the "entities" list of the config file.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	v.cmd.Flags().StringVar(&v.O.Config, "config", "",
		"load report configuration from this file")
	v.cmd.Flags().StringVar(&v.O.RootDir, "root-dir", "",
		"directory holding one subdirectory per collection")
	v.cmd.Flags().StringVar(&v.O.JSONFile, "json", "",
		"write the JSON document to this file")
	v.cmd.Flags().StringVar(&v.O.HTMLFile, "html", "",
		"write the HTML status page to this file")
	v.cmd.Flags().StringVar(&v.O.BranchMap, "branch-map", "",
		"optional branch metadata file merged into the report")
	v.cmd.Flags().BoolVar(&v.O.WithFiles, "with-files", false,
		"include the per-language catalog path table in the JSON output")

	return v.cmd
}

func (v reportCommand) Execute(args []string) error {
	cfg, err := config.Load(v.O.Config)
	if err != nil {
		return err
	}
	// Flags win over config file settings.
	if v.O.RootDir == "" {
		v.O.RootDir = cfg.RootDir
	}
	if v.O.JSONFile == "" {
		v.O.JSONFile = cfg.JSONFile
	}
	if v.O.HTMLFile == "" {
		v.O.HTMLFile = cfg.HTMLFile
	}
	if v.O.BranchMap == "" {
		v.O.BranchMap = cfg.BranchMap
	}
	if !v.O.WithFiles {
		v.O.WithFiles = cfg.WithFiles
	}
	if v.O.RootDir == "" {
		v.O.RootDir = "."
	}

	tokens := args
	if len(tokens) == 0 {
		tokens = cfg.Entities
	}
	if len(tokens) == 0 {
		return newUserError("report requires at least one <collectionId:version:state> descriptor")
	}

	entities, err := util.ParseEntities(tokens)
	if err != nil {
		return newUserErrorF("%v", err)
	}

	report, err := util.BuildReport(entities, util.ReportOptions{
		RootDir:       v.O.RootDir,
		BranchMapFile: v.O.BranchMap,
		WithFiles:     v.O.WithFiles,
	})
	if err != nil {
		return err
	}

	if flag.DryRun() {
		log.Infof("dryrun: report over %d collections not written", len(report.Versions))
		return nil
	}

	if v.O.JSONFile == "" && v.O.HTMLFile == "" {
		data, err := util.MarshalJSONReport(report)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	if v.O.JSONFile != "" {
		data, err := util.MarshalJSONReport(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(v.O.JSONFile, data, 0644); err != nil {
			return fmt.Errorf("fail to write %s: %w", v.O.JSONFile, err)
		}
		log.Debugf("wrote %s", v.O.JSONFile)
	}
	if v.O.HTMLFile != "" {
		data, err := util.RenderHTMLReport(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(v.O.HTMLFile, data, 0644); err != nil {
			return fmt.Errorf("fail to write %s: %w", v.O.HTMLFile, err)
		}
		log.Debugf("wrote %s", v.O.HTMLFile)
	}
	return nil
}

var reportCmd = reportCommand{}

func init() {
	rootCmd.AddCommand(reportCmd.Command())
}
