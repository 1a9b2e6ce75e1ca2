package main

import (
	"github.com/spf13/cobra"

	"github.com/healthexplorer/healthview/dataview"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the artifact's projection methods",
	Args:  cobra.NoArgs,
	RunE:  runMethods,
}

type methodInfo struct {
	Method      string `json:"method" yaml:"method"`
	XAxis       string `json:"x_axis" yaml:"x_axis"`
	YAxis       string `json:"y_axis" yaml:"y_axis"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func runMethods(cmd *cobra.Command, args []string) error {
	_, ds, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	infos := make([]methodInfo, 0, len(ds.Methods()))
	for _, method := range ds.Methods() {
		x, y, err := dataview.AxisLabels(ds, method)
		if err != nil {
			return NewLookupError(cmd.Name(), err)
		}
		infos = append(infos, methodInfo{
			Method:      method,
			XAxis:       x,
			YAxis:       y,
			Description: dataview.MethodDescription(method),
		})
	}

	headers := []string{"Method", "X Axis", "Y Axis", "Description"}
	cells := make([][]string, 0, len(infos))
	for _, info := range infos {
		cells = append(cells, []string{info.Method, info.XAxis, info.YAxis, info.Description})
	}

	formatter := NewOutputFormatter(format, quiet)
	return formatter.Print(cmd.OutOrStdout(), headers, cells, infos)
}
