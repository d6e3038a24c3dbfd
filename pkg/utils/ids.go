package utils

import "github.com/google/uuid"

// Identifier prefixes carried over from the stored data format. Lodging and
// transport IDs stay distinguishable from the other collections.
const (
	LodgingIDPrefix   = "HOS-"
	TransportIDPrefix = "TRA-"
)

// NewID returns a fresh collision-safe identifier.
func NewID() string {
	return uuid.NewString()
}

func PrefixedID(prefix string) string {
	return prefix + uuid.NewString()
}
