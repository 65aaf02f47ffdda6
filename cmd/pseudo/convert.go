package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pseudo/internal/diag"
	"pseudo/internal/diagfmt"
	"pseudo/internal/dialect"
	"pseudo/internal/driver"
	"pseudo/internal/gen"
	"pseudo/internal/observ"
	"pseudo/internal/project"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <file|directory>",
	Short: "Convert JavaScript or Java sources to pseudocode",
	Long: `Convert translates a JavaScript or Java source file, or every
convertible file under a directory, into exam-style pseudocode.
Structural errors never abort a conversion: the output carries an
error marker line and a best-effort body instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("out", "o", "", "output file (single input) or directory (batch)")
	convertCmd.Flags().String("lang", "", "force input language (js|java|auto)")
	convertCmd.Flags().Int("indent", 0, "indent width in spaces (0=use project config)")
	convertCmd.Flags().Bool("no-annotations", false, "omit annotation comments from output")
	convertCmd.Flags().Bool("strict", false, "emit an info diagnostic for every annotated construct")
	convertCmd.Flags().Int("jobs", 0, "max parallel workers for directory conversion (0=auto)")
	convertCmd.Flags().Bool("no-cache", false, "bypass the conversion cache")
	convertCmd.Flags().String("ui", "auto", "progress UI for batch conversion (auto|on|off)")
	convertCmd.Flags().Bool("check", false, "verify block balance of converted output without writing files")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	st, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	startDir := inputPath
	if !st.IsDir() {
		startDir = filepath.Dir(inputPath)
	}
	manifest, _, err := project.Load(startDir)
	if err != nil {
		return err
	}

	opts, err := convertOptions(cmd, manifest.Config)
	if err != nil {
		return err
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	if !st.IsDir() {
		return convertSingle(cmd, inputPath, outPath, opts)
	}
	return convertBatch(cmd, inputPath, outPath, manifest.Config, opts)
}

// convertOptions merges project config with command-line overrides. Flags
// that were set explicitly win over the manifest.
func convertOptions(cmd *cobra.Command, cfg project.Config) (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: cfg.Convert.MaxDiagnostics,
		Gen: gen.Options{
			IndentWidth:               cfg.Output.IndentWidth,
			IncludeAnnotationComments: cfg.Output.AnnotationsEnabled(),
			Strict:                    cfg.Output.Strict,
		},
	}

	langName := cfg.Convert.Language
	if cmd.Flags().Changed("lang") {
		langName, _ = cmd.Flags().GetString("lang")
	}
	lang, err := dialect.Parse(strings.TrimSpace(strings.ToLower(langName)))
	if err != nil {
		return driver.Options{}, err
	}
	opts.Lang = lang

	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		opts.MaxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	}
	if cmd.Flags().Changed("indent") {
		opts.Gen.IndentWidth, _ = cmd.Flags().GetInt("indent")
	}
	if noAnn, _ := cmd.Flags().GetBool("no-annotations"); noAnn {
		opts.Gen.IncludeAnnotationComments = false
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		opts.Gen.Strict = true
	}
	return opts, nil
}

// convertSingle converts one file; output goes to stdout unless --out names
// a file.
func convertSingle(cmd *cobra.Command, inputPath, outPath string, opts driver.Options) error {
	result, err := driver.ConvertFile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	printDiagnostics(cmd, result)

	if check, _ := cmd.Flags().GetBool("check"); check {
		return reportBalance(os.Stdout, result)
	}
	if outPath == "" {
		_, err = fmt.Fprint(os.Stdout, result.Output)
		return err
	}
	if err := os.WriteFile(outPath, []byte(result.Output), 0o600); err != nil {
		return fmt.Errorf("failed to write %q: %w", outPath, err)
	}
	return nil
}

func convertBatch(cmd *cobra.Command, inputDir, outDir string, cfg project.Config, opts driver.Options) error {
	timer := observ.NewTimer()

	scanPhase := timer.Begin("scan")
	paths, err := driver.ListSourceFiles(inputDir)
	timer.End(scanPhase, "")
	if err != nil {
		return fmt.Errorf("failed to scan %q: %w", inputDir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no convertible files under %q", inputDir)
	}

	batch := driver.BatchOptions{}
	if jobs, _ := cmd.Flags().GetInt("jobs"); jobs > 0 {
		batch.Jobs = jobs
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		cache, cacheErr := driver.OpenDiskCache("pseudo")
		if cacheErr == nil {
			batch.Cache = cache
		}
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	convertPhase := timer.Begin("convert")
	var results []*driver.ConvertResult
	if shouldUseTUI(mode) {
		results, err = runConvertWithUI(cmd.Context(), "converting "+inputDir, paths, opts, batch)
	} else {
		results, err = driver.ConvertPaths(cmd.Context(), paths, opts, batch)
	}
	timer.End(convertPhase, fmt.Sprintf("%d file(s)", len(paths)))
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	useColor := useColorOn(cmd, os.Stderr)
	prettyOpts := diagfmt.PrettyOpts{Color: useColor, ShowSource: true, ShowNotes: true}

	check, _ := cmd.Flags().GetBool("check")

	writePhase := timer.Begin("write")
	var checkErr error
	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, r.Bag, r.FileSet, prettyOpts)
		}
		if check {
			if err := reportBalance(os.Stdout, r); err != nil {
				checkErr = err
			}
			continue
		}
		target := batchOutputPath(inputDir, outDir, r.Path, cfg.Output.Extension)
		if writeErr := writeConverted(target, r.Output); writeErr != nil {
			return writeErr
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "%s -> %s\n", r.Path, target)
		}
	}
	timer.End(writePhase, "")

	if !quiet {
		total := diag.NewBag(4096)
		for _, r := range results {
			total.Merge(r.Bag)
		}
		diagfmt.Summary(os.Stderr, total, useColor)
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return checkErr
}

// batchOutputPath places converted output next to its source, or mirrors
// the source layout under outDir when --out is given.
func batchOutputPath(inputDir, outDir, sourcePath, extension string) string {
	converted := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + extension
	if outDir == "" {
		return converted
	}
	rel, err := filepath.Rel(inputDir, converted)
	if err != nil {
		rel = filepath.Base(converted)
	}
	return filepath.Join(outDir, rel)
}

func writeConverted(path, output string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(output), 0o600); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// reportBalance verifies opener/closer keyword counts in one conversion
// and prints the verdict. Used by --check, which writes no output files.
func reportBalance(w io.Writer, result *driver.ConvertResult) error {
	if err := gen.VerifyBalance(result.Output); err != nil {
		fmt.Fprintf(w, "FAIL %s: %v\n", result.Path, err)
		return fmt.Errorf("balance check failed for %s", result.Path)
	}
	fmt.Fprintf(w, "ok   %s\n", result.Path)
	return nil
}

func printDiagnostics(cmd *cobra.Command, result *driver.ConvertResult) {
	if !result.Bag.HasErrors() && !result.Bag.HasWarnings() {
		return
	}
	useColor := useColorOn(cmd, os.Stderr)
	opts := diagfmt.PrettyOpts{Color: useColor, ShowSource: true, ShowNotes: true}
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	diagfmt.Summary(os.Stderr, result.Bag, useColor)
}
