// Package main provides the CLI entry point for tablebuilder.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tablebuilder-go/internal/config"
	"github.com/ukaji3/tablebuilder-go/internal/logging"
	"github.com/ukaji3/tablebuilder-go/internal/tui"
	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder"
	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/load"
	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/render"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	format     string
	outputPath string
	ops        []string
	sheetName  string

	pretty bool

	outDir string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablebuilder",
		Short: "Build text tables and export them to PDF, Excel or Word",
		Long: `tablebuilder edits a rectangular grid of text cells and exports it
as a single-page PDF, an Excel workbook with one "Table" sheet, or a Word
document holding one full-width table.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file with export settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(newExportCmd(), newInspectCmd(), newEditCmd())
	return rootCmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [input.csv|input.json|input.xlsx]",
		Short: "Export a grid to PDF, Excel or Word",
		Long: `Export loads a grid (or starts from a single empty cell), applies the
--op mutations in order, and writes the result in the chosen format.

Operations: add-row, add-col, del-row:N, del-col:N, set:ROW,COL,VALUE`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Export format: pdf, excel, word (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <output dir>/table.<ext>)")
	cmd.Flags().StringArrayVar(&ops, "op", nil, "Grid mutation to apply before exporting (repeatable)")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name for the Excel export (default from config: Table)")
	_ = cmd.MarkFlagRequired("format")
	return cmd
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [table.xlsx|table.docx]",
		Short: "Print the grid recovered from an exported workbook or document",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to read from a workbook (default: first sheet)")
	return cmd
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [input.csv|input.json|input.xlsx]",
		Short: "Edit a grid interactively in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEdit,
	}
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for exports (default from config: .)")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := logging.Setup(cmd.ErrOrStderr(), logLevel, logFormat)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	exportFormat, err := tablebuilder.ParseFormat(format)
	if err != nil {
		return err
	}

	g, err := loadGrid(args)
	if err != nil {
		return err
	}
	if err := tablebuilder.ApplyOps(g, ops); err != nil {
		return fmt.Errorf("apply ops: %w", err)
	}

	opts := cfg.Options
	if sheetName != "" {
		opts.Sheet.Name = sheetName
	}

	path := outputPath
	if path == "" {
		path = filepath.Join(cfg.OutputDir, exportFormat.DefaultFileName())
	}

	exporter := tablebuilder.NewExporter(opts, logger)
	res := <-exporter.Start(cmd.Context(), g, exportFormat, path)
	if res.Err != nil {
		return fmt.Errorf("export failed: %w", res.Err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	var result any
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".xlsx", ".xlsm":
		rows, err := render.ReadSpreadsheet(bytes.NewReader(data), sheetName)
		if err != nil {
			return fmt.Errorf("read workbook: %w", err)
		}
		result = rows
	case ".docx":
		doc, err := render.ReadFlowDocumentBytes(data)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
		result = doc
	default:
		return fmt.Errorf("unsupported file: %s (must be .xlsx or .docx)", inputPath)
	}

	jsonData, err := toJSON(result, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	g, err := loadGrid(args)
	if err != nil {
		return err
	}

	dir := outDir
	if dir == "" {
		dir = cfg.OutputDir
	}

	return tui.Run(tui.Deps{
		Grid:     g,
		Exporter: tablebuilder.NewExporter(cfg.Options, logging.Discard()),
		OutDir:   dir,
	})
}

func loadGrid(args []string) (*tablebuilder.Grid, error) {
	if len(args) == 0 {
		return tablebuilder.NewGrid(), nil
	}

	rows, err := load.FromFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", args[0], err)
	}
	return tablebuilder.GridFromRows(rows), nil
}

func toJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
