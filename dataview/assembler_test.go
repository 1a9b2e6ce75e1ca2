package dataview

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/healthexplorer/healthview/types"
)

func fptr(v float64) *float64 { return &v }

func assemblerDataset() *types.Dataset {
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

func TestBuildRowsAlignment(t *testing.T) {
	ds := assemblerDataset()
	rows := BuildRows(ds)

	if len(rows) != len(ds.Countries) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(ds.Countries))
	}

	for i, row := range rows {
		if row.Country != ds.Countries[i] {
			t.Errorf("rows[%d].Country = %q, want %q", i, row.Country, ds.Countries[i])
		}
		if row.Cluster != ds.Clusters[i] {
			t.Errorf("rows[%d].Cluster = %d, want %d", i, row.Cluster, ds.Clusters[i])
		}
		p, ok := row.Coord("PCA")
		if !ok {
			t.Fatalf("rows[%d] has no PCA coordinates", i)
		}
		if p.X != ds.Embeddings["PCA"].X[i] || p.Y != ds.Embeddings["PCA"].Y[i] {
			t.Errorf("rows[%d] PCA point = %+v, want (%v, %v)",
				i, p, ds.Embeddings["PCA"].X[i], ds.Embeddings["PCA"].Y[i])
		}
	}

	if rows[0].ClusterName != "Developed Nations" {
		t.Errorf("rows[0].ClusterName = %q, want %q", rows[0].ClusterName, "Developed Nations")
	}
	if rows[2].Indicators["GDP per capita"] != nil {
		t.Error("expected Brazil's missing GDP value to stay nil")
	}
}

func TestFilterRows(t *testing.T) {
	ds := assemblerDataset()
	rows := BuildRows(ds)

	t.Run("no clusters visible", func(t *testing.T) {
		got := FilterRows(rows, map[int]bool{})
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("all clusters visible", func(t *testing.T) {
		visible := map[int]bool{0: true, 1: true, 2: true, 3: true}
		got := FilterRows(rows, visible)
		if diff := cmp.Diff(rows, got); diff != "" {
			t.Errorf("filtered rows differ from input (-want +got):\n%s", diff)
		}
	})

	t.Run("subset preserves order", func(t *testing.T) {
		got := FilterRows(rows, map[int]bool{0: true})
		want := []string{"Norway", "Japan"}
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i, row := range got {
			if row.Country != want[i] {
				t.Errorf("filtered[%d].Country = %q, want %q", i, row.Country, want[i])
			}
		}
	})

	t.Run("toggled off explicitly", func(t *testing.T) {
		got := FilterRows(rows, map[int]bool{0: false, 1: true, 3: true})
		for _, row := range got {
			if row.Cluster == 0 {
				t.Errorf("row %q from hidden cluster 0 survived the filter", row.Country)
			}
		}
	})
}

func TestClusterSummaryCounts(t *testing.T) {
	ds := assemblerDataset()

	tests := []struct {
		id        int
		wantName  string
		wantCount int
	}{
		{0, "Developed Nations", 2},
		{1, "Least Developed", 1},
		{2, "Emerging Economies", 0},
		{3, "Developing Nations", 1},
	}

	for _, tt := range tests {
		summary, err := ClusterSummary(ds, tt.id)
		if err != nil {
			t.Fatalf("ClusterSummary(%d) returned error: %v", tt.id, err)
		}
		if summary.Name != tt.wantName || summary.Count != tt.wantCount {
			t.Errorf("ClusterSummary(%d) = {%q, %d}, want {%q, %d}",
				tt.id, summary.Name, summary.Count, tt.wantName, tt.wantCount)
		}
		if summary.Averages != nil {
			t.Errorf("ClusterSummary(%d).Averages = %v, want nil without artifact averages",
				tt.id, summary.Averages)
		}
	}
}

func TestClusterSummaryUnknownCluster(t *testing.T) {
	ds := assemblerDataset()
	_, err := ClusterSummary(ds, 9)
	if !types.IsNotFound(err) {
		t.Errorf("ClusterSummary(9) error = %v, want NotFoundError", err)
	}
}

func TestClusterSummaryArtifactAverages(t *testing.T) {
	ds := assemblerDataset()
	ds.ClusterAverages = map[string]map[string]*float64{
		"0": {"GDP per capita": fptr(54617.8), "Life Expectancy": nil},
	}

	summary, err := ClusterSummary(ds, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := summary.Averages["GDP per capita"]; got == nil || *got != 54617.8 {
		t.Errorf("average GDP = %v, want 54617.8", got)
	}
	// Null upstream average stays nil so it renders as N/A, never 0.
	if summary.Averages["Life Expectancy"] != nil {
		t.Error("expected null upstream average to stay nil")
	}
}

func TestLoaderClusterSummaryComputedAverages(t *testing.T) {
	fs := NewMockFileSystem()
	loader := NewLoader(artifactPath,
		WithFileSystem(fs),
		WithFileLockFactory(NoopLockFactory{}),
		WithComputedAverages())

	ds := assemblerDataset()

	summary, err := loader.ClusterSummary(ds, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := summary.Averages["GDP per capita"]; got == nil || *got != (75420.3+33815.3)/2 {
		t.Errorf("computed GDP average = %v, want %v", got, (75420.3+33815.3)/2)
	}

	// Brazil is cluster 3's only member and its GDP is missing: the
	// computed average must stay nil.
	summary, err = loader.ClusterSummary(ds, 3)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Averages["GDP per capita"] != nil {
		t.Error("expected all-missing computed average to stay nil")
	}
	if got := summary.Averages["Life Expectancy"]; got == nil || *got != 75.9 {
		t.Errorf("computed life expectancy average = %v, want 75.9", got)
	}
}

func TestCountryDetail(t *testing.T) {
	ds := assemblerDataset()

	detail, err := CountryDetail(ds, "Chad")
	if err != nil {
		t.Fatalf("CountryDetail returned error: %v", err)
	}
	if detail.Cluster != 1 || detail.ClusterName != "Least Developed" {
		t.Errorf("detail cluster = (%d, %q), want (1, %q)",
			detail.Cluster, detail.ClusterName, "Least Developed")
	}
	if got := detail.Indicators["Life Expectancy"]; got == nil || *got != 54.2 {
		t.Errorf("Life Expectancy = %v, want 54.2", got)
	}
}

func TestCountryDetailNotFound(t *testing.T) {
	ds := assemblerDataset()
	_, err := CountryDetail(ds, "Atlantis")
	if !types.IsNotFound(err) {
		t.Errorf("CountryDetail error = %v, want NotFoundError", err)
	}
}

func TestAxisLabels(t *testing.T) {
	ds := assemblerDataset()

	x, y, err := AxisLabels(ds, "UMAP")
	if err != nil {
		t.Fatal(err)
	}
	if x != "UMAP Dim 1" || y != "UMAP Dim 2" {
		t.Errorf("UMAP labels = (%q, %q)", x, y)
	}

	ds.VarianceExplained = map[string]float64{"PC1": 45.2, "PC2": 23.1}
	x, y, err = AxisLabels(ds, "PCA")
	if err != nil {
		t.Fatal(err)
	}
	if x != "PCA Dim 1 (45.2%)" || y != "PCA Dim 2 (23.1%)" {
		t.Errorf("PCA labels = (%q, %q)", x, y)
	}

	if _, _, err := AxisLabels(ds, "LLE"); !types.IsNotFound(err) {
		t.Errorf("AxisLabels for absent method error = %v, want NotFoundError", err)
	}
}

func TestMethodDescription(t *testing.T) {
	if got := MethodDescription("PCA"); got != "Linear, global variance" {
		t.Errorf("MethodDescription(PCA) = %q", got)
	}
	if got := MethodDescription("SOM"); got != "" {
		t.Errorf("MethodDescription(SOM) = %q, want empty", got)
	}
}

// Guard against the loader cache leaking across distinct loaders: two
// loaders over the same mock see independent caches.
func TestLoadersDoNotShareState(t *testing.T) {
	fs := NewMockFileSystem()
	fs.WriteFile(artifactPath, []byte(validArtifact))

	a := NewLoader(artifactPath, WithFileSystem(fs), WithFileLockFactory(NoopLockFactory{}))
	b := NewLoader(artifactPath, WithFileSystem(fs), WithFileLockFactory(NoopLockFactory{}))

	ctx := context.Background()
	dsA, err := a.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	dsB, err := b.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if dsA == dsB {
		t.Error("expected independent loaders to hold independent datasets")
	}
}
