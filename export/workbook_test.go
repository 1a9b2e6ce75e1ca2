package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/healthexplorer/healthview/types"
)

func fptr(v float64) *float64 { return &v }

func exportDataset() *types.Dataset {
	return &types.Dataset{
		Countries: []string{"Norway", "Chad", "Brazil", "Japan"},
		Clusters:  []int{0, 1, 3, 0},
		ClusterLabels: map[string]string{
			"0": "Developed Nations",
			"1": "Least Developed",
			"2": "Emerging Economies",
			"3": "Developing Nations",
		},
		Embeddings: map[string]types.Embedding{
			"PCA":  {X: []float64{1.2, -3.4, 0.5, 1.1}, Y: []float64{0.1, 2.2, -1.7, 0.3}},
			"UMAP": {X: []float64{4, 5, 6, 7}, Y: []float64{8, 9, 10, 11}},
		},
		Indicators: map[string][]*float64{
			"GDP per capita":  {fptr(75420.3), fptr(690.1), nil, fptr(33815.3)},
			"Life Expectancy": {fptr(82.3), fptr(54.2), fptr(75.9), fptr(84.6)},
		},
	}
}

func exportSpecs() []types.IndicatorSpec {
	return []types.IndicatorSpec{
		{Name: "GDP per capita", Format: types.FormatCurrency},
		{Name: "Life Expectancy", Format: types.FormatNumber},
	}
}

func openWorkbook(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("GetCellValue(%s, %s): %v", sheet, cell, err)
	}
	return v
}

func TestWorkbookSheets(t *testing.T) {
	ds := exportDataset()
	var buf bytes.Buffer

	result, err := Workbook(ds, exportSpecs(), &buf, Options{
		Snapshot: "snap-1",
		Source:   "/data/dashboard_data.json",
	})
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}

	if result.Countries != 4 {
		t.Errorf("result.Countries = %d, want 4", result.Countries)
	}
	if result.Clusters != 4 {
		t.Errorf("result.Clusters = %d, want 4", result.Clusters)
	}
	if result.Snapshot != "snap-1" {
		t.Errorf("result.Snapshot = %q, want %q", result.Snapshot, "snap-1")
	}

	f := openWorkbook(t, &buf)

	sheets := f.GetSheetList()
	want := []string{"Countries", "Cluster Profiles", "Meta"}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
	for _, name := range want {
		if idx, _ := f.GetSheetIndex(name); idx < 0 {
			t.Errorf("missing sheet %q in %v", name, sheets)
		}
	}
	if idx, _ := f.GetSheetIndex("Sheet1"); idx >= 0 {
		t.Error("default Sheet1 should have been removed")
	}
}

func TestWorkbookCountriesSheet(t *testing.T) {
	ds := exportDataset()
	var buf bytes.Buffer

	if _, err := Workbook(ds, exportSpecs(), &buf, Options{Snapshot: "snap-1"}); err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}
	f := openWorkbook(t, &buf)

	// Header: Country, Cluster, Cluster Name, PCA X, PCA Y, UMAP X, UMAP Y,
	// then the indicator columns in descriptor order.
	headerChecks := map[string]string{
		"A1": "Country",
		"B1": "Cluster",
		"C1": "Cluster Name",
		"D1": "PCA X",
		"G1": "UMAP Y",
		"H1": "GDP per capita",
		"I1": "Life Expectancy",
	}
	for cell, want := range headerChecks {
		if got := cellValue(t, f, "Countries", cell); got != want {
			t.Errorf("Countries!%s = %q, want %q", cell, got, want)
		}
	}

	if got := cellValue(t, f, "Countries", "A2"); got != "Norway" {
		t.Errorf("Countries!A2 = %q, want %q", got, "Norway")
	}
	if got := cellValue(t, f, "Countries", "C2"); got != "Developed Nations" {
		t.Errorf("Countries!C2 = %q, want %q", got, "Developed Nations")
	}
	if got := cellValue(t, f, "Countries", "H2"); got != "$75,420" {
		t.Errorf("Norway GDP cell = %q, want %q", got, "$75,420")
	}
	if got := cellValue(t, f, "Countries", "I2"); got != "82.3" {
		t.Errorf("Norway life expectancy cell = %q, want %q", got, "82.3")
	}

	// Brazil's missing GDP renders as N/A, not zero.
	if got := cellValue(t, f, "Countries", "H4"); got != "N/A" {
		t.Errorf("Brazil GDP cell = %q, want %q", got, "N/A")
	}
}

func TestWorkbookProfilesSheet(t *testing.T) {
	ds := exportDataset()
	ds.ClusterAverages = map[string]map[string]*float64{
		"0": {"GDP per capita": fptr(54617.8), "Life Expectancy": fptr(83.45)},
	}
	var buf bytes.Buffer

	if _, err := Workbook(ds, exportSpecs(), &buf, Options{Snapshot: "snap-1"}); err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}
	f := openWorkbook(t, &buf)

	if got := cellValue(t, f, "Cluster Profiles", "B2"); got != "Developed Nations" {
		t.Errorf("profile name = %q, want %q", got, "Developed Nations")
	}
	if got := cellValue(t, f, "Cluster Profiles", "C2"); got != "2" {
		t.Errorf("profile count = %q, want %q", got, "2")
	}
	if got := cellValue(t, f, "Cluster Profiles", "D2"); got != "$54,618" {
		t.Errorf("profile GDP average = %q, want %q", got, "$54,618")
	}

	// Clusters without artifact averages fall back to N/A columns.
	if got := cellValue(t, f, "Cluster Profiles", "D3"); got != "N/A" {
		t.Errorf("cluster 1 GDP average = %q, want %q", got, "N/A")
	}
}

func TestWorkbookVisibleClusters(t *testing.T) {
	ds := exportDataset()
	var buf bytes.Buffer

	result, err := Workbook(ds, exportSpecs(), &buf, Options{
		Snapshot: "snap-1",
		Visible:  map[int]bool{0: true},
	})
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}

	if result.Countries != 2 {
		t.Errorf("result.Countries = %d, want 2", result.Countries)
	}
	if result.Clusters != 1 {
		t.Errorf("result.Clusters = %d, want 1", result.Clusters)
	}

	f := openWorkbook(t, &buf)
	if got := cellValue(t, f, "Countries", "A2"); got != "Norway" {
		t.Errorf("Countries!A2 = %q, want %q", got, "Norway")
	}
	if got := cellValue(t, f, "Countries", "A3"); got != "Japan" {
		t.Errorf("Countries!A3 = %q, want %q", got, "Japan")
	}
	if got := cellValue(t, f, "Countries", "A4"); got != "" {
		t.Errorf("Countries!A4 = %q, want empty", got)
	}
	if got := cellValue(t, f, "Cluster Profiles", "A3"); got != "" {
		t.Errorf("Cluster Profiles!A3 = %q, want empty", got)
	}
}

func TestWorkbookGeneratesSnapshot(t *testing.T) {
	ds := exportDataset()
	var buf bytes.Buffer

	result, err := Workbook(ds, exportSpecs(), &buf, Options{Title: "Health Atlas"})
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}

	if _, err := uuid.Parse(result.Snapshot); err != nil {
		t.Errorf("result.Snapshot = %q is not a valid id: %v", result.Snapshot, err)
	}
	if !strings.HasPrefix(result.Filename, result.Snapshot+"-") {
		t.Errorf("result.Filename = %q, want prefix %q", result.Filename, result.Snapshot+"-")
	}
	if !strings.HasSuffix(result.Filename, "-health-atlas.xlsx") {
		t.Errorf("result.Filename = %q, want suffix %q", result.Filename, "-health-atlas.xlsx")
	}
}
