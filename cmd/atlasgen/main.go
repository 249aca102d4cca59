// Package main provides the CLI entry point for atlasgen.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/censusatlas/atlasgen/pkg/atlas"
	"github.com/censusatlas/atlasgen/pkg/atlas/metadata"
	"github.com/censusatlas/atlasgen/pkg/atlas/output"
	"github.com/censusatlas/atlasgen/pkg/atlas/parser"
)

var (
	metadataDir string
	indexSheet  string
	pretty      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atlasgen [workbook.xlsx] [output.json]",
		Short: "Generate atlas content JSON from the category mapping workbook",
		Long: `atlasgen reads the census category mapping workbook together with the
Topic/Variable/Classification/Category lookup CSVs and writes the nested
topic content document consumed by the atlas front end.`,
		Args: cobra.ExactArgs(2),
		RunE: runContent,
	}

	rootCmd.PersistentFlags().StringVar(&indexSheet, "index-sheet", atlas.DefaultOptions().IndexSheet, "Name of the index worksheet")
	rootCmd.Flags().StringVar(&metadataDir, "metadata-dir", ".", "Directory containing the lookup CSV files")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")

	variablesCmd := &cobra.Command{
		Use:   "variables [workbook.xlsx] [selection.csv]",
		Short: "Extract selected variables with expanded category codes",
		Args:  cobra.ExactArgs(2),
		RunE:  runVariables,
	}
	rootCmd.AddCommand(variablesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runContent(cmd *cobra.Command, args []string) error {
	workbookPath, outPath := args[0], args[1]

	if _, err := os.Stat(workbookPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", workbookPath)
	}

	opts := atlas.DefaultOptions()
	opts.MetadataDir = metadataDir
	opts.IndexSheet = indexSheet

	meta, err := metadata.Load(opts.MetadataDir, metadata.DefaultFiles())
	if err != nil {
		return fmt.Errorf("loading metadata: %w", err)
	}

	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	topics, err := atlas.NewBuilder(meta, opts).BuildTopics(f)
	if err != nil {
		return fmt.Errorf("building content: %w", err)
	}

	jsonData, err := output.ToJSON(topics, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(outPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runVariables(cmd *cobra.Command, args []string) error {
	workbookPath, selectionPath := args[0], args[1]

	if _, err := os.Stat(workbookPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", workbookPath)
	}

	selection, err := parser.ReadSelection(selectionPath)
	if err != nil {
		return fmt.Errorf("reading selection: %w", err)
	}

	opts := atlas.DefaultOptions()
	opts.IndexSheet = indexSheet

	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	extracts, err := atlas.NewBuilder(nil, opts).BuildVariables(f, selection)
	if err != nil {
		return fmt.Errorf("extracting variables: %w", err)
	}

	jsonData, err := output.VariablesToJSON(extracts, true)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}
