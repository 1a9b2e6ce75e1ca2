// Package testutil provides the shared test fixture: a known dataset
// artifact loaded through the real loader, with typed access to its rows.
package testutil

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/healthexplorer/healthview/dataview"
	"github.com/healthexplorer/healthview/types"
)

//go:embed testdata/universe.json
var universeArtifact []byte

// UniverseData provides typed access to the test fixture data
type UniverseData struct {
	// Developed Nations (cluster 0)
	Norway  types.Row
	Japan   types.Row
	Germany types.Row

	// Least Developed (cluster 1)
	Chad  types.Row
	Niger types.Row // Infant Mortality is missing for Niger

	// Emerging Economies (cluster 2)
	Brazil types.Row
	Mexico types.Row

	// Developing Nations (cluster 3)
	India   types.Row
	Kenya   types.Row
	Vietnam types.Row

	// Dataset is the parsed artifact the rows were assembled from
	Dataset *types.Dataset

	// Rows holds every row in artifact order
	Rows []types.Row

	// Specs holds the indicator descriptors derived at load time
	Specs []types.IndicatorSpec

	// ByName maps country name to its row for easy access
	ByName map[string]types.Row

	// Path is where the artifact was written on disk
	Path string
}

// LoadUniverse writes the fixture artifact to a temp dir, loads it through a
// real Loader and returns the loader alongside typed access to the rows.
func LoadUniverse(t *testing.T) (*dataview.Loader, *UniverseData) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dashboard_data.json")
	if err := os.WriteFile(path, universeArtifact, 0o644); err != nil {
		t.Fatalf("failed to write fixture artifact: %v", err)
	}

	loader := dataview.NewLoader(path)
	ds, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load fixture artifact: %v", err)
	}

	rows := dataview.BuildRows(ds)
	universe := &UniverseData{
		Dataset: ds,
		Rows:    rows,
		Specs:   loader.Specs(),
		ByName:  make(map[string]types.Row, len(rows)),
		Path:    path,
	}
	for _, row := range rows {
		universe.ByName[row.Country] = row
	}

	universe.Norway = universe.row(t, "Norway")
	universe.Japan = universe.row(t, "Japan")
	universe.Germany = universe.row(t, "Germany")
	universe.Chad = universe.row(t, "Chad")
	universe.Niger = universe.row(t, "Niger")
	universe.Brazil = universe.row(t, "Brazil")
	universe.Mexico = universe.row(t, "Mexico")
	universe.India = universe.row(t, "India")
	universe.Kenya = universe.row(t, "Kenya")
	universe.Vietnam = universe.row(t, "Vietnam")

	return loader, universe
}

func (u *UniverseData) row(t *testing.T, country string) types.Row {
	t.Helper()
	row, ok := u.ByName[country]
	if !ok {
		t.Fatalf("fixture artifact has no country %q", country)
	}
	return row
}

// VisibleAll returns a toggle map with every cluster in the fixture visible.
func (u *UniverseData) VisibleAll() map[int]bool {
	visible := make(map[int]bool)
	for _, id := range u.Dataset.ClusterIDs() {
		visible[id] = true
	}
	return visible
}
