package validation

import (
	"fmt"

	"github.com/healthexplorer/healthview/types"
)

// Validate checks a freshly parsed dataset against the schema invariants.
// Any violation is reported as a *types.MalformedDataError naming the
// offending key, and for sequence mismatches, both lengths. A dataset that
// passes Validate satisfies the index-alignment invariant: index i refers
// to the same country in every country-keyed sequence.
func Validate(ds *types.Dataset) error {
	if ds.Countries == nil {
		return missingKey("countries")
	}
	if len(ds.Countries) == 0 {
		return &types.MalformedDataError{Key: "countries", Reason: "no countries in artifact"}
	}
	if ds.Clusters == nil {
		return missingKey("clusters")
	}
	if ds.ClusterLabels == nil {
		return missingKey("cluster_labels")
	}
	if len(ds.Embeddings) == 0 {
		return missingKey("embeddings")
	}

	n := len(ds.Countries)

	if len(ds.Clusters) != n {
		return lengthMismatch("clusters", n, len(ds.Clusters))
	}

	seen := make(map[string]bool, n)
	for _, name := range ds.Countries {
		if seen[name] {
			return &types.MalformedDataError{
				Key:    "countries",
				Reason: fmt.Sprintf("duplicate country name %q", name),
			}
		}
		seen[name] = true
	}

	for method, emb := range ds.Embeddings {
		if len(emb.X) != n {
			return lengthMismatch("embeddings."+method+".x", n, len(emb.X))
		}
		if len(emb.Y) != n {
			return lengthMismatch("embeddings."+method+".y", n, len(emb.Y))
		}
	}

	for indicator, values := range ds.Indicators {
		if len(values) != n {
			return lengthMismatch("indicators."+indicator, n, len(values))
		}
	}

	for _, clusterID := range ds.Clusters {
		if _, ok := ds.ClusterLabels[types.ClusterKey(clusterID)]; !ok {
			return &types.MalformedDataError{
				Key:    "cluster_labels",
				Reason: fmt.Sprintf("cluster %d has no label", clusterID),
			}
		}
	}

	for indicator, tag := range ds.IndicatorFormats {
		if _, ok := ds.Indicators[indicator]; !ok {
			return &types.MalformedDataError{
				Key:    "indicator_formats",
				Reason: fmt.Sprintf("format tag for unknown indicator %q", indicator),
			}
		}
		if _, ok := types.ParseFormatKind(tag); !ok {
			return &types.MalformedDataError{
				Key:    "indicator_formats",
				Reason: fmt.Sprintf("unknown format tag %q for indicator %q", tag, indicator),
			}
		}
	}

	return nil
}

func missingKey(key string) error {
	return &types.MalformedDataError{Key: key, Reason: "missing required key"}
}

func lengthMismatch(key string, want, got int) error {
	return &types.MalformedDataError{Key: key, Reason: "length mismatch", Want: want, Got: got}
}
