package types

// ClusterSummary describes one cluster for the profile panel: its display
// name, how many countries belong to it, and per-indicator averages when
// the artifact (or opt-in recomputation) provides them.
type ClusterSummary struct {
	ID    int
	Name  string
	Count int

	// Averages maps indicator name to the cluster's average value. The map
	// is nil when no averages are available for this cluster; a nil value
	// inside the map means that single indicator's average is missing and
	// displays as "N/A", never as 0.
	Averages map[string]*float64
}

// CountryDetail is the single-country lookup: cluster membership plus every
// indicator value for that country.
type CountryDetail struct {
	Country     string
	Cluster     int
	ClusterName string
	Indicators  map[string]*float64
}
