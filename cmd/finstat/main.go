package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/config"
	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/schema"
	"github.com/Tiechuifeifei/Financial-Statement-Automation-Tool/pkg/service"
)

var (
	cfgFile    string
	schemaFile string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "finstat",
	Short: "Two-period financial statement analysis",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var analyseCmd = &cobra.Command{
	Use:   "analyse [flags] <statement_file>",
	Short: "Analyse a statement and write the csv and text reports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "finstat",
		})
		if debug {
			logger.SetLevel(log.DebugLevel)
		}

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		positions := schema.Default()
		if schemaFile != "" {
			positions, err = schema.Load(schemaFile)
			if err != nil {
				return err
			}
		}

		processor := service.NewProcessor(cfg, positions, logger)
		result, err := processor.AnalyseFile(args[0])
		if err != nil {
			return err
		}

		if debug {
			printer := pp.New()
			printer.SetOutput(os.Stderr)
			printer.Println(result.Table.Rows())
		}

		logger.Info("reports written", "csv", result.CSVPath, "text", result.TextPath)
		return nil
	},
}

func init() {
	gotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging and a table dump")

	analyseCmd.Flags().StringP("output", "o", "", "Output directory (default: same as input file)")
	analyseCmd.Flags().String("delimiter", ",", "Input CSV delimiter")
	analyseCmd.Flags().StringVar(&schemaFile, "schema", "", "YAML file overriding line item positions")

	rootCmd.AddCommand(analyseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
