package layout

// cacheCapacity bounds the number of retained results per node. A node is
// typically probed with at most a handful of distinct constraint sets during
// one pass, so a small fixed window is enough.
const cacheCapacity = 9

type cacheEntry struct {
	known     KnownDimensions
	available AvailableSizes
	mode      RunMode
	out       LayoutOutput
}

// Cache holds layout results for one node, keyed by the inputs that produced
// them. Tree implementations embed one per node to back CacheGet/CacheStore.
type Cache struct {
	entries []cacheEntry
}

// Get returns the cached output for the exact inputs, if present. A stored
// RunModePerformLayout result also satisfies a RunModeComputeSize request
// with the same constraints, since a full layout subsumes a size probe.
func (c *Cache) Get(known KnownDimensions, available AvailableSizes, mode RunMode) (LayoutOutput, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		e := c.entries[i]
		if e.known != known || e.available != available {
			continue
		}
		if e.mode == mode || (e.mode == RunModePerformLayout && mode == RunModeComputeSize) {
			return e.out, true
		}
	}
	return LayoutOutput{}, false
}

// Store records a result, evicting the oldest entry when full.
func (c *Cache) Store(known KnownDimensions, available AvailableSizes, mode RunMode, out LayoutOutput) {
	if len(c.entries) >= cacheCapacity {
		copy(c.entries, c.entries[1:])
		c.entries = c.entries[:cacheCapacity-1]
	}
	c.entries = append(c.entries, cacheEntry{known: known, available: available, mode: mode, out: out})
}

// Clear drops all cached results. Called when a node's style or content
// changes so stale sizes cannot leak into the next pass.
func (c *Cache) Clear() {
	c.entries = c.entries[:0]
}

// IsEmpty reports whether the cache holds no results. An empty cache marks
// the node dirty for the purposes of dirty propagation.
func (c *Cache) IsEmpty() bool {
	return len(c.entries) == 0
}
