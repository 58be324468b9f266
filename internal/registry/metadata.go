package registry

import (
	"fmt"
	"sort"
)

// Metadata is a record's decoded CBOR metadata map. Keys may be integers or
// text strings; values are arbitrary CBOR values.
type Metadata map[any]any

// MetadataEntry is one key/value pair from a metadata map.
type MetadataEntry struct {
	Key   any
	Value any
}

// Entries returns the metadata pairs in a stable order: integer keys first,
// ascending, then text keys, lexicographic, then everything else by its
// formatted form.
func (m Metadata) Entries() []MetadataEntry {
	entries := make([]MetadataEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, MetadataEntry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		ci, cj := keyClass(entries[i].Key), keyClass(entries[j].Key)
		if ci != cj {
			return ci < cj
		}
		switch ci {
		case keyClassInt:
			return keyInt(entries[i].Key) < keyInt(entries[j].Key)
		case keyClassText:
			return entries[i].Key.(string) < entries[j].Key.(string)
		default:
			return fmt.Sprint(entries[i].Key) < fmt.Sprint(entries[j].Key)
		}
	})
	return entries
}

const (
	keyClassInt = iota
	keyClassText
	keyClassOther
)

func keyClass(k any) int {
	switch k.(type) {
	case int64, uint64:
		return keyClassInt
	case string:
		return keyClassText
	default:
		return keyClassOther
	}
}

// keyInt widens both CBOR integer representations for comparison. Negative
// values sort before all non-negative ones.
func keyInt(k any) int64 {
	switch v := k.(type) {
	case int64:
		return v
	case uint64:
		if v > 1<<62 {
			return 1 << 62
		}
		return int64(v)
	default:
		return 0
	}
}
