package iam

import (
	"github.com/mirrorops/cloudiam/pkg/provider/query"
)

// collectAll drives a paginated listing to exhaustion. fetch is called
// with the previous page's continuation marker ("" on the first call) and
// returns one page of items plus the next marker; an empty marker ends the
// walk. Pages are appended in the order received, never re-sorted or
// de-duplicated. There is no page cap: a provider that keeps returning
// markers keeps the walk going, bounded only by the transport's own
// timeout policy.
func collectAll[T any](fetch func(marker string) ([]T, string, error)) ([]T, error) {
	var all []T
	marker := ""
	for {
		items, next, err := fetch(marker)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if next == "" {
			return all, nil
		}
		marker = next
	}
}

// nextMarker reads the continuation marker from a listing result node.
// The provider only honors the marker when it also reports the listing as
// truncated.
func nextMarker(result *query.Node) string {
	if result.ChildText("IsTruncated") != "true" {
		return ""
	}
	return result.ChildText("Marker")
}

// markerParams builds call parameters carrying the continuation marker.
func markerParams(marker string, params map[string]string) map[string]string {
	if params == nil {
		params = map[string]string{}
	}
	if marker != "" {
		params["Marker"] = marker
	}
	return params
}
