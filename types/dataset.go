package types

import "sort"

// Dataset is the parsed projection artifact. It is produced upstream by the
// analysis pipeline (embeddings, clustering, per-cluster averages) and is
// treated here as an opaque, already-computed input: nothing in this module
// recomputes embeddings or cluster assignments.
//
// Every slice keyed by country index (Clusters, each Embedding's X/Y, each
// indicator's values) has length exactly len(Countries), and index i refers
// to the same country in all of them. That invariant is checked once at load
// time; code operating on a Dataset may assume it holds.
type Dataset struct {
	// Countries is the ordered list of country names. Names are unique.
	Countries []string `json:"countries"`

	// Clusters holds the externally assigned integer cluster id per country.
	Clusters []int `json:"clusters"`

	// ClusterLabels maps cluster id (as string key, mirroring the JSON
	// encoding) to its human-readable display name. The set of clusters is
	// derived from this map; there is no fixed cluster count.
	ClusterLabels map[string]string `json:"cluster_labels"`

	// Embeddings maps projection method name (e.g. "PCA", "t-SNE") to its
	// per-country 2D coordinates.
	Embeddings map[string]Embedding `json:"embeddings"`

	// Indicators maps indicator name to per-country values. A nil entry
	// means the value is missing for that country and displays as "N/A".
	Indicators map[string][]*float64 `json:"indicators"`

	// VarianceExplained optionally maps "PC1"/"PC2" to the percentage of
	// variance each principal component explains. Only meaningful for PCA.
	VarianceExplained map[string]float64 `json:"variance_explained,omitempty"`

	// ClusterAverages optionally maps cluster id (string key) to
	// per-indicator averages computed upstream. A nil value inside a
	// cluster's map means the average is unavailable for that indicator.
	ClusterAverages map[string]map[string]*float64 `json:"cluster_averages,omitempty"`

	// IndicatorFormats optionally maps indicator name to a format tag
	// ("currency", "number", "percent"). Indicators without a tag fall back
	// to the legacy naming rule, applied once when descriptors are derived.
	IndicatorFormats map[string]string `json:"indicator_formats,omitempty"`
}

// Embedding holds the precomputed 2D coordinates for one projection method,
// aligned by index with Dataset.Countries.
type Embedding struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Point is a single 2D coordinate in a projection.
type Point struct {
	X float64
	Y float64
}

// Methods returns the projection method names in sorted order.
func (d *Dataset) Methods() []string {
	methods := make([]string, 0, len(d.Embeddings))
	for name := range d.Embeddings {
		methods = append(methods, name)
	}
	sort.Strings(methods)
	return methods
}

// IndicatorNames returns the indicator names in sorted order.
func (d *Dataset) IndicatorNames() []string {
	names := make([]string, 0, len(d.Indicators))
	for name := range d.Indicators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClusterIDs returns the cluster ids declared in ClusterLabels, sorted
// ascending. Ids are derived from the label map rather than from the
// assignment slice so that an empty cluster still appears in summaries.
func (d *Dataset) ClusterIDs() []int {
	ids := make([]int, 0, len(d.ClusterLabels))
	for key := range d.ClusterLabels {
		if id, ok := parseClusterKey(key); ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Label returns the display name for a cluster id, or "" when unknown.
func (d *Dataset) Label(clusterID int) string {
	return d.ClusterLabels[clusterKey(clusterID)]
}

// CountryIndex returns the index of a country name, or -1 when absent.
func (d *Dataset) CountryIndex(name string) int {
	for i, c := range d.Countries {
		if c == name {
			return i
		}
	}
	return -1
}
