package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/healthexplorer/healthview/types"
)

// SnapshotJSON writes the dataset back out as a pretty-printed artifact,
// for round-tripping a view into another tool. The output parses under the
// same schema it was loaded with.
func SnapshotJSON(ds *types.Dataset, w io.Writer) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
