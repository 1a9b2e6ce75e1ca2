package dataview

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/healthexplorer/healthview/internal/validation"
	"github.com/healthexplorer/healthview/types"
)

// Loader reads and caches the projection artifact. It is the explicit,
// injectable replacement for a process-wide memoized load: construct one,
// hand it to whatever consumes datasets, and substitute a MockFileSystem in
// tests. Load is cheap to call repeatedly, since a reactive caller may
// invoke it on every interaction: the parsed dataset is memoized against
// the file's size and modification time.
type Loader struct {
	path        string
	fs          FileSystem
	lockFactory FileLockFactory
	fileLock    FileLock

	computeAverages bool

	mu         sync.Mutex
	cached     *types.Dataset
	specs      []types.IndicatorSpec
	cachedSize int64
	cachedMod  time.Time
}

// Constants for file locking
const (
	lockMaxRetries = 3
	lockRetryDelay = 100 * time.Millisecond
	lockTimeout    = 3 * time.Second
)

// NewLoader creates a Loader for the artifact at path.
func NewLoader(path string, opts ...LoaderOption) *Loader {
	l := &Loader{path: path}

	for _, opt := range opts {
		opt(l)
	}

	// Set defaults for dependencies not provided via options
	if l.fs == nil {
		l.fs = OSFileSystem{}
	}
	if l.lockFactory == nil {
		l.lockFactory = FlockFactory{}
	}
	l.fileLock = l.lockFactory.New(path + ".lock")

	return l
}

// Path returns the artifact path this loader reads from.
func (l *Loader) Path() string {
	return l.path
}

// Load reads, parses and validates the artifact, returning the cached
// dataset when the file is unchanged since the previous call. A missing
// file is a *NotFoundError: the artifact has to be regenerated upstream,
// there is nothing to retry here. Schema violations are *MalformedDataError.
func (l *Loader) Load(ctx context.Context) (*types.Dataset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, err := l.fs.Stat(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &types.NotFoundError{Kind: "artifact", Name: l.path, WrappedError: err}
		}
		return nil, fmt.Errorf("failed to stat artifact: %w", err)
	}

	if l.cached != nil && info.Size() == l.cachedSize && info.ModTime().Equal(l.cachedMod) {
		return l.cached, nil
	}

	data, err := l.readLocked(ctx)
	if err != nil {
		return nil, err
	}

	var ds types.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, &types.MalformedDataError{Key: l.path, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if err := validation.Validate(&ds); err != nil {
		return nil, err
	}

	l.cached = &ds
	l.specs = deriveSpecs(&ds)
	l.cachedSize = info.Size()
	l.cachedMod = info.ModTime()

	return l.cached, nil
}

// Specs returns the indicator descriptors derived from the most recently
// loaded dataset, in sorted indicator order. Returns nil before the first
// successful Load.
func (l *Loader) Specs() []types.IndicatorSpec {
	l.mu.Lock()
	defer l.mu.Unlock()

	specs := make([]types.IndicatorSpec, len(l.specs))
	copy(specs, l.specs)
	return specs
}

// ClusterSummary looks up a cluster profile, honoring the loader's
// WithComputedAverages option when the artifact carries no averages.
func (l *Loader) ClusterSummary(ds *types.Dataset, clusterID int) (types.ClusterSummary, error) {
	return clusterSummary(ds, clusterID, l.computeAverages)
}

// readLocked reads the artifact bytes under a shared file lock so a
// concurrent upstream re-export cannot be observed mid-replace.
func (l *Loader) readLocked(ctx context.Context) ([]byte, error) {
	if err := l.acquireLock(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = l.fileLock.Unlock() }()

	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &types.NotFoundError{Kind: "artifact", Name: l.path, WrappedError: err}
		}
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return data, nil
}

// acquireLock attempts to acquire a shared file lock with retry logic
func (l *Loader) acquireLock(ctx context.Context) error {
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	for i := 0; i < lockMaxRetries; i++ {
		locked, err := l.fileLock.TryRLockContext(lockCtx, lockRetryDelay)
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if locked {
			return nil
		}
	}
	return fmt.Errorf("failed to acquire lock on %s after %d attempts", l.path, lockMaxRetries)
}

// deriveSpecs builds the declared indicator descriptor list. Explicit
// indicator_formats tags win; untagged indicators get the legacy naming
// rule (a name containing "GDP" formats as currency, everything else as a
// one-decimal number), applied here once and never re-inferred downstream.
func deriveSpecs(ds *types.Dataset) []types.IndicatorSpec {
	names := ds.IndicatorNames()
	specs := make([]types.IndicatorSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, types.IndicatorSpec{
			Name:   name,
			Format: formatFor(ds, name),
		})
	}
	return specs
}

func formatFor(ds *types.Dataset, indicator string) types.FormatKind {
	if tag, ok := ds.IndicatorFormats[indicator]; ok {
		if kind, ok := types.ParseFormatKind(tag); ok {
			return kind
		}
	}
	return types.LegacyFormatRule(indicator)
}
