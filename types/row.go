package types

// Row is the per-country view assembled from a Dataset: the country's cluster
// membership, its coordinates in every projection, and its indicator values.
// Rows are purely derived and immutable once built; the table is rebuilt from
// scratch whenever the Dataset is reloaded, never mutated incrementally.
type Row struct {
	Country     string
	Cluster     int
	ClusterName string

	// Coords maps projection method name to this country's 2D point.
	Coords map[string]Point

	// Indicators maps indicator name to this country's value; nil means
	// missing.
	Indicators map[string]*float64
}

// Coord returns the row's point for a projection method.
func (r Row) Coord(method string) (Point, bool) {
	p, ok := r.Coords[method]
	return p, ok
}
