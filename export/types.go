package export

// Options configures what an export contains and how it is labeled.
type Options struct {
	// Snapshot identifies this export; a fresh id is generated when empty.
	Snapshot string

	// Source records the artifact path the export was built from.
	Source string

	// Visible restricts the Countries sheet to these cluster ids.
	// nil exports every cluster.
	Visible map[int]bool

	// Title becomes the sanitized base of the suggested filename.
	Title string
}

// Result summarizes a completed export.
type Result struct {
	// Snapshot is the id stamped into the Meta sheet.
	Snapshot string

	// Filename is the suggested output filename.
	Filename string

	// Countries is the number of country rows exported.
	Countries int

	// Clusters is the number of cluster profiles exported.
	Clusters int
}
