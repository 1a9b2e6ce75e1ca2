package types

import "strings"

// FormatKind selects the display rule for an indicator's values.
type FormatKind int

const (
	// FormatNumber renders with exactly one decimal place (e.g. "7.9").
	FormatNumber FormatKind = iota
	// FormatCurrency renders with zero decimals, thousands separators and a
	// leading dollar sign (e.g. "$52,000").
	FormatCurrency
	// FormatPercent renders with one decimal place and a trailing percent
	// sign (e.g. "45.2%").
	FormatPercent
)

// String returns the string representation of the FormatKind, matching the
// tags accepted in a Dataset's indicator_formats map.
func (k FormatKind) String() string {
	switch k {
	case FormatNumber:
		return "number"
	case FormatCurrency:
		return "currency"
	case FormatPercent:
		return "percent"
	default:
		return "unknown"
	}
}

// ParseFormatKind maps a schema format tag to its FormatKind.
func ParseFormatKind(tag string) (FormatKind, bool) {
	switch tag {
	case "number":
		return FormatNumber, true
	case "currency":
		return FormatCurrency, true
	case "percent":
		return FormatPercent, true
	default:
		return FormatNumber, false
	}
}

// LegacyFormatRule maps an indicator name to a FormatKind for artifacts that
// predate explicit indicator_formats tags: a name containing "GDP" formats
// as currency, everything else as a one-decimal number. Applied exactly once
// when descriptors are derived at load time.
func LegacyFormatRule(name string) FormatKind {
	if strings.Contains(name, "GDP") {
		return FormatCurrency
	}
	return FormatNumber
}

// IndicatorSpec is the declared descriptor for one indicator: its name and
// the formatting rule its values render with. The descriptor list is derived
// once at load time and is the only source of formatting decisions
// downstream; nothing re-infers a format from the indicator name after load.
type IndicatorSpec struct {
	Name   string
	Format FormatKind
}
