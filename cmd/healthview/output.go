package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// OutputFormatter handles formatting command results for different output
// formats. Structured formats (json, yaml) serialize the raw result; table
// and csv use the tabular projection the command prepared.
type OutputFormatter struct {
	format string
	quiet  bool
}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter(format string, quiet bool) *OutputFormatter {
	return &OutputFormatter{format: format, quiet: quiet}
}

// Print writes the result to w in the configured format.
func (of *OutputFormatter) Print(w io.Writer, headers []string, rows [][]string, raw interface{}) error {
	switch of.format {
	case "json":
		return of.printJSON(w, raw)
	case "yaml":
		return of.printYAML(w, raw)
	case "csv":
		return of.printCSV(w, headers, rows)
	case "table":
		return of.printTable(w, headers, rows)
	default:
		return of.printTable(w, headers, rows)
	}
}

func (of *OutputFormatter) printJSON(w io.Writer, raw interface{}) error {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func (of *OutputFormatter) printYAML(w io.Writer, raw interface{}) error {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func (of *OutputFormatter) printCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if !of.quiet {
		if err := cw.Write(headers); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (of *OutputFormatter) printTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if !of.quiet {
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
