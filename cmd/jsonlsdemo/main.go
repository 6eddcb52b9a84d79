// Package main implements jsonlsdemo, a small smoke-test binary for the
// jsonls parser and validator. It is not the language-server product the
// jsonls package itself stays out of scope of; it exists to drive the
// library end to end the way a developer would from a shell.
//
// Usage:
//
//	jsonlsdemo validate --schema schema.yaml data.json
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/log/v2"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/kaptinlin/jsonls"
)

func main() {
	logger := log.New(os.Stderr)

	var schemaPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "jsonlsdemo",
		Short: "Smoke-test the jsonls parser and validator from the command line",
	}

	validateCmd := &cobra.Command{
		Use:           "validate [flags] <data-file>",
		Short:         "Parse a JSON document and validate it against a schema",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			if len(args) == 0 {
				return jsonls.ErrNoInputFile
			}
			return runValidate(logger, schemaPath, args[0])
		},
	}
	flags := validateCmd.Flags()
	flags.StringVar(&schemaPath, "schema", "", "path to a JSON or YAML schema document")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = validateCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(validateCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("jsonlsdemo failed", "error", err)
		os.Exit(1)
	}
}

func runValidate(logger *log.Logger, schemaPath, dataPath string) error {
	schema, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("read data %s: %w", dataPath, err)
	}

	logger.Debug("parsing document", "path", dataPath, "bytes", len(raw))

	doc := jsonls.Parse(string(raw), jsonls.ParseOptions{CollectComments: true})

	var diagnostics []jsonls.Diagnostic
	diagnostics = append(diagnostics, doc.SyntaxErrors...)

	if doc.Root != nil {
		result := jsonls.Validate(doc, schema)
		diagnostics = append(diagnostics, result.Problems...)
	}

	stats := doc.Stats()
	logger.Debug("parsed document", "nodes", stats.NodeCount, "syntaxErrors", stats.ErrorCount, "syntaxWarnings", stats.WarningCount)

	printDiagnostics(dataPath, diagnostics)

	for _, d := range diagnostics {
		if d.Severity == jsonls.SeverityError {
			return fmt.Errorf("%s: %d error(s)", dataPath, countErrors(diagnostics))
		}
	}
	return nil
}

func loadSchema(path string) (*jsonls.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}

	data := raw
	switch ext := filepath.Ext(path); ext {
	case ".json", "":
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("read schema %s: %w", path, err)
		}
		data, err = json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", jsonls.ErrUnsupportedSchemaFormat, ext)
	}

	schema, err := jsonls.ParseSchema(data)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	return schema, nil
}

func countErrors(diagnostics []jsonls.Diagnostic) int {
	n := 0
	for _, d := range diagnostics {
		if d.Severity == jsonls.SeverityError {
			n++
		}
	}
	return n
}

func printDiagnostics(path string, diagnostics []jsonls.Diagnostic) {
	if len(diagnostics) == 0 {
		fmt.Println(color.GreenString("%s: no problems found", path))
		return
	}

	for _, d := range diagnostics {
		label := severityLabel(d.Severity)
		loc := fmt.Sprintf("%s:%d:%d", path, d.Range.Start.Line+1, d.Range.Start.Character+1)
		msg := d.Message
		if d.SchemaPath != "" {
			msg = msg + " (" + strings.TrimPrefix(d.SchemaPath, "/") + ")"
		}
		fmt.Printf("%s %s %s\n", loc, label, msg)
	}
}

func severityLabel(s jsonls.Severity) string {
	switch s {
	case jsonls.SeverityError:
		return color.RedString("error")
	case jsonls.SeverityWarning:
		return color.YellowString("warning")
	case jsonls.SeverityInformation:
		return color.CyanString("info")
	case jsonls.SeverityHint:
		return color.New(color.Faint).Sprint("hint")
	default:
		return s.String()
	}
}
