package dataview

// LoaderOption is a function that modifies Loader configuration
type LoaderOption func(*Loader)

// WithFileSystem sets a custom FileSystem implementation
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithFileLockFactory sets a custom FileLockFactory implementation
func WithFileLockFactory(factory FileLockFactory) LoaderOption {
	return func(l *Loader) {
		l.lockFactory = factory
	}
}

// WithComputedAverages makes ClusterSummary fall back to computing averages
// from the raw indicator values (skipping missing entries) when the artifact
// carries no cluster_averages block. Missing values still render as "N/A",
// never as zero.
func WithComputedAverages() LoaderOption {
	return func(l *Loader) {
		l.computeAverages = true
	}
}
