package types

import "strconv"

// clusterKey converts a cluster id to the string form used as a JSON map key.
func clusterKey(id int) string {
	return strconv.Itoa(id)
}

// parseClusterKey parses a JSON map key back into a cluster id.
func parseClusterKey(key string) (int, bool) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ClusterKey exposes the JSON map key form of a cluster id for callers that
// index into ClusterLabels or ClusterAverages directly.
func ClusterKey(id int) string {
	return clusterKey(id)
}
