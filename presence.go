package mtschema

// Presence is the bit flag recorded per field while a Record is materialized.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was explicit null.
	PresenceDefaultApplied                      // Default value was applied.
)

// PresenceMap maps dotted field paths to Presence flags.
type PresenceMap map[string]Presence

// mergePresence folds child presence flags into dst under a dotted prefix.
func mergePresence(dst PresenceMap, prefix string, child PresenceMap) {
	for path, p := range child {
		if prefix != "" {
			path = prefix + "." + path
		}
		dst[path] |= p
	}
}
