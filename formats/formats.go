// Package formats renders indicator values for display. Every rendering
// decision flows through an explicit types.IndicatorSpec; a missing value
// always renders as the literal "N/A", never as zero.
package formats

import (
	"fmt"
	"strconv"

	"github.com/healthexplorer/healthview/types"
)

// NotAvailable is the display form of a missing value.
const NotAvailable = "N/A"

// ValueFormat defines how one kind of indicator value is rendered
type ValueFormat struct {
	// Kind is the format identifier this renderer serves
	Kind types.FormatKind

	// Render converts a present value into its display string
	Render func(v float64) string
}

// registry holds the renderer for each format kind
var registry = map[types.FormatKind]*ValueFormat{
	types.FormatCurrency: Currency,
	types.FormatNumber:   Number,
	types.FormatPercent:  Percent,
}

// Currency renders with zero decimals, thousands separators and a leading
// dollar sign: 52000.4 -> "$52,000".
var Currency = &ValueFormat{
	Kind: types.FormatCurrency,
	Render: func(v float64) string {
		return "$" + groupThousands(strconv.FormatFloat(v, 'f', 0, 64))
	},
}

// Number renders with exactly one decimal place: 7.86 -> "7.9".
var Number = &ValueFormat{
	Kind: types.FormatNumber,
	Render: func(v float64) string {
		return strconv.FormatFloat(v, 'f', 1, 64)
	},
}

// Percent renders with one decimal place and a trailing percent sign:
// 45.23 -> "45.2%".
var Percent = &ValueFormat{
	Kind: types.FormatPercent,
	Render: func(v float64) string {
		return strconv.FormatFloat(v, 'f', 1, 64) + "%"
	},
}

// Get returns the renderer for a format kind
func Get(kind types.FormatKind) (*ValueFormat, error) {
	format, exists := registry[kind]
	if !exists {
		return nil, fmt.Errorf("unknown format kind %q", kind)
	}
	return format, nil
}

// FormatValue renders a possibly missing value under an indicator's
// descriptor. Unknown kinds fall back to the one-decimal number rule rather
// than failing a render midway through a table.
func FormatValue(spec types.IndicatorSpec, v *float64) string {
	if v == nil {
		return NotAvailable
	}
	format, exists := registry[spec.Format]
	if !exists {
		format = Number
	}
	return format.Render(*v)
}
