package dataview

import (
	"strconv"

	"github.com/healthexplorer/healthview/types"
)

// BuildRows assembles the row-per-country table from a validated dataset.
// It is a pure function of the dataset: row i carries country i's cluster
// membership, its coordinates in every projection and its indicator values.
func BuildRows(ds *types.Dataset) []types.Row {
	rows := make([]types.Row, len(ds.Countries))
	for i, country := range ds.Countries {
		coords := make(map[string]types.Point, len(ds.Embeddings))
		for method, emb := range ds.Embeddings {
			coords[method] = types.Point{X: emb.X[i], Y: emb.Y[i]}
		}

		indicators := make(map[string]*float64, len(ds.Indicators))
		for name, values := range ds.Indicators {
			indicators[name] = values[i]
		}

		rows[i] = types.Row{
			Country:     country,
			Cluster:     ds.Clusters[i],
			ClusterName: ds.Label(ds.Clusters[i]),
			Coords:      coords,
			Indicators:  indicators,
		}
	}
	return rows
}

// FilterRows keeps the rows whose cluster toggle is set, preserving the
// original order. An empty result is valid and renders as "no data".
func FilterRows(rows []types.Row, visible map[int]bool) []types.Row {
	filtered := make([]types.Row, 0, len(rows))
	for _, row := range rows {
		if visible[row.Cluster] {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// ClusterSummary returns the profile for one cluster: its label, member
// count, and per-indicator averages when the artifact carries them. Averages
// are never recomputed here; use Loader.ClusterSummary with the
// WithComputedAverages option for the computed fallback.
func ClusterSummary(ds *types.Dataset, clusterID int) (types.ClusterSummary, error) {
	return clusterSummary(ds, clusterID, false)
}

func clusterSummary(ds *types.Dataset, clusterID int, compute bool) (types.ClusterSummary, error) {
	key := types.ClusterKey(clusterID)
	name, ok := ds.ClusterLabels[key]
	if !ok {
		return types.ClusterSummary{}, &types.NotFoundError{Kind: "cluster", Name: key}
	}

	count := 0
	for _, c := range ds.Clusters {
		if c == clusterID {
			count++
		}
	}

	summary := types.ClusterSummary{ID: clusterID, Name: name, Count: count}

	if averages, ok := ds.ClusterAverages[key]; ok {
		summary.Averages = make(map[string]*float64, len(averages))
		for indicator, value := range averages {
			summary.Averages[indicator] = value
		}
	} else if compute {
		summary.Averages = computeAverages(ds, clusterID)
	}

	return summary, nil
}

// computeAverages derives per-indicator means over the cluster's members,
// skipping missing values. An indicator with no present values stays nil so
// it displays as "N/A" rather than zero.
func computeAverages(ds *types.Dataset, clusterID int) map[string]*float64 {
	averages := make(map[string]*float64, len(ds.Indicators))
	for indicator, values := range ds.Indicators {
		var sum float64
		var n int
		for i, c := range ds.Clusters {
			if c != clusterID || values[i] == nil {
				continue
			}
			sum += *values[i]
			n++
		}
		if n == 0 {
			averages[indicator] = nil
			continue
		}
		mean := sum / float64(n)
		averages[indicator] = &mean
	}
	return averages
}

// CountryDetail returns the single-country lookup: cluster membership plus
// every indicator value for that country.
func CountryDetail(ds *types.Dataset, country string) (types.CountryDetail, error) {
	idx := ds.CountryIndex(country)
	if idx < 0 {
		return types.CountryDetail{}, &types.NotFoundError{Kind: "country", Name: country}
	}

	indicators := make(map[string]*float64, len(ds.Indicators))
	for name, values := range ds.Indicators {
		indicators[name] = values[idx]
	}

	return types.CountryDetail{
		Country:     country,
		Cluster:     ds.Clusters[idx],
		ClusterName: ds.Label(ds.Clusters[idx]),
		Indicators:  indicators,
	}, nil
}

// AxisLabels returns the axis titles for one projection. PCA axes carry the
// explained-variance percentages when the artifact provides them, echoing
// the value as exported.
func AxisLabels(ds *types.Dataset, method string) (x, y string, err error) {
	if _, ok := ds.Embeddings[method]; !ok {
		return "", "", &types.NotFoundError{Kind: "method", Name: method}
	}

	x = method + " Dim 1"
	y = method + " Dim 2"
	if method == "PCA" && ds.VarianceExplained != nil {
		if pc1, ok := ds.VarianceExplained["PC1"]; ok {
			x += " (" + strconv.FormatFloat(pc1, 'f', -1, 64) + "%)"
		}
		if pc2, ok := ds.VarianceExplained["PC2"]; ok {
			y += " (" + strconv.FormatFloat(pc2, 'f', -1, 64) + "%)"
		}
	}
	return x, y, nil
}

// methodDescriptions summarizes what each projection emphasizes, for the
// method comparison view.
var methodDescriptions = map[string]string{
	"PCA":    "Linear, global variance",
	"t-SNE":  "Non-linear, local focus",
	"UMAP":   "Local & global balance",
	"Isomap": "Geodesic distances",
	"LLE":    "Local reconstruction",
}

// MethodDescription returns a one-line description of a projection method,
// or "" for methods without one.
func MethodDescription(method string) string {
	return methodDescriptions[method]
}
