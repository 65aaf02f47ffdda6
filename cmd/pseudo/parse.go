package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pseudo/internal/diagfmt"
	"pseudo/internal/dialect"
	"pseudo/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.js|file.java>",
	Short: "Parse a source file and output its syntax tree",
	Long:  `Parse analyzes a JavaScript or Java source file and outputs its structural syntax tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
	parseCmd.Flags().String("lang", "", "force input language (js|java|auto)")
	parseCmd.Flags().Bool("positions", false, "include byte spans and line/column positions in JSON output")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	opts, err := inspectOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		prettyOpts := diagfmt.PrettyOpts{
			Color:      useColorOn(cmd, os.Stderr),
			ShowSource: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts)
	}

	switch format {
	case "tree":
		return diagfmt.FormatASTTree(os.Stdout, result.Program)
	case "json":
		positions, _ := cmd.Flags().GetBool("positions")
		return diagfmt.FormatASTJSON(os.Stdout, result.Program, result.FileSet, positions)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// inspectOptions builds driver options for the tokenize and parse debug
// commands from the shared flags.
func inspectOptions(cmd *cobra.Command) (driver.Options, error) {
	opts := driver.DefaultOptions()

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	opts.MaxDiagnostics = maxDiagnostics

	langName, err := cmd.Flags().GetString("lang")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get lang flag: %w", err)
	}
	lang, err := dialect.Parse(strings.TrimSpace(strings.ToLower(langName)))
	if err != nil {
		return driver.Options{}, err
	}
	opts.Lang = lang
	return opts, nil
}
