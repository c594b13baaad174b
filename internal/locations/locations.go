// Package locations holds the catalog of known Harris County FWS
// monitoring stations.
package locations

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultID is the gauge used when a caller does not name one.
const DefaultID = "590"

// ErrUnknownLocation is returned for IDs not in the catalog.
var ErrUnknownLocation = errors.New("unknown monitoring location")

// catalog maps location IDs to their station descriptions. IDs are the
// numeric gauge identifiers the FWS site uses in its detail-page URLs.
var catalog = map[string]string{
	"430": "Brays Bayou @ Stella Link Road",
	"440": "Brays Bayou @ Rice Avenue",
	"460": "Brays Bayou @ Gessner Road",
	"480": "Keegans Bayou @ Roark Road",
	"490": "Keegans Bayou @ Keegan Road",
	"520": "White Oak Bayou @ Heights Boulevard",
	"530": "White Oak Bayou @ Ella Boulevard",
	"540": "White Oak Bayou @ Alabonson Road",
	"550": "White Oak Bayou @ Lakeview Drive",
	"590": "Cole Creek @ Deihl Road",
}

// Describe returns the station description for an ID.
func Describe(id string) (string, error) {
	desc, ok := catalog[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocation, id)
	}
	return desc, nil
}

// Known reports whether the ID is in the catalog.
func Known(id string) bool {
	_, ok := catalog[id]
	return ok
}

// All returns a copy of the catalog for listing endpoints.
func All() map[string]string {
	out := make(map[string]string, len(catalog))
	for id, desc := range catalog {
		out[id] = desc
	}
	return out
}

// IDs returns the catalog IDs in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
