package formats

import (
	"testing"

	"github.com/healthexplorer/healthview/types"
)

func fptr(v float64) *float64 { return &v }

func TestFormatValueCurrency(t *testing.T) {
	spec := types.IndicatorSpec{Name: "GDP per capita", Format: types.FormatCurrency}

	tests := []struct {
		name  string
		value *float64
		want  string
	}{
		{"rounds and groups", fptr(52000.4), "$52,000"},
		{"small value", fptr(690), "$690"},
		{"exactly one thousand", fptr(1000), "$1,000"},
		{"millions", fptr(1234567.89), "$1,234,568"},
		{"negative", fptr(-52000.4), "$-52,000"},
		{"missing", nil, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(spec, tt.value); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatValueNumber(t *testing.T) {
	spec := types.IndicatorSpec{Name: "Life Expectancy", Format: types.FormatNumber}

	tests := []struct {
		name  string
		value *float64
		want  string
	}{
		{"rounds to one decimal", fptr(7.86), "7.9"},
		{"pads to one decimal", fptr(82), "82.0"},
		{"missing", nil, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(spec, tt.value); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatValuePercent(t *testing.T) {
	spec := types.IndicatorSpec{Name: "Variance", Format: types.FormatPercent}

	if got := FormatValue(spec, fptr(45.23)); got != "45.2%" {
		t.Errorf("FormatValue(45.23) = %q, want %q", got, "45.2%")
	}
	if got := FormatValue(spec, nil); got != "N/A" {
		t.Errorf("FormatValue(nil) = %q, want %q", got, "N/A")
	}
}

func TestFormatValueUnknownKindFallsBack(t *testing.T) {
	spec := types.IndicatorSpec{Name: "Mystery", Format: types.FormatKind(42)}
	if got := FormatValue(spec, fptr(3.14)); got != "3.1" {
		t.Errorf("FormatValue with unknown kind = %q, want %q", got, "3.1")
	}
}

func TestGet(t *testing.T) {
	format, err := Get(types.FormatCurrency)
	if err != nil {
		t.Fatalf("Get(FormatCurrency) returned error: %v", err)
	}
	if format.Kind != types.FormatCurrency {
		t.Errorf("format kind = %v, want %v", format.Kind, types.FormatCurrency)
	}

	if _, err := Get(types.FormatKind(42)); err == nil {
		t.Error("Get(unknown kind) returned nil error, want error")
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"52000", "52,000"},
		{"1234567", "1,234,567"},
		{"-52000", "-52,000"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
