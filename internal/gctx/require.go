package gctx

import "fen/internal/value"

// requireEntry is one memoized load: the option map it was loaded
// under and the result produced (or the thrown error value, if the
// load failed). A failed load is cached too: a second require of the
// same path+options must not re-run side effects even if the first
// attempt threw.
type requireEntry struct {
	options value.Value
	result  value.Value
	failed  bool
}

// requireCache memoizes module loads by canonical path; within a path,
// entries are distinguished by option-map value equality rather than
// by a hashable key, since option maps are ordinary MapV values and
// "same options" means value equality, not identity.
type requireCache struct {
	byPath map[string][]requireEntry
}

func newRequireCache() requireCache {
	return requireCache{byPath: make(map[string][]requireEntry)}
}

// Lookup returns the cached result for (path, options) if one exists.
func (c *requireCache) Lookup(path string, options value.Value) (result value.Value, failed bool, ok bool) {
	for _, e := range c.byPath[path] {
		if value.Equal(e.options, options) {
			return e.result, e.failed, true
		}
	}
	return nil, false, false
}

// Store records the outcome of loading (path, options) so later
// requires of the same pair replay it instead of reloading. A later
// store for a pair already present replaces the earlier entry, so
// Lookup always returns the most recent outcome for that pair.
func (c *Context) StoreRequire(path string, options, result value.Value, failed bool) {
	entry := requireEntry{options: options, result: result, failed: failed}
	entries := c.require.byPath[path]
	for i, e := range entries {
		if value.Equal(e.options, options) {
			entries[i] = entry
			return
		}
	}
	c.require.byPath[path] = append(entries, entry)
}
