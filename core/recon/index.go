package recon

// entry is one right-side row awaiting consumption by the left scan.
// The consumed flag is the only mutable state of a run and is confined to it.
type entry struct {
	row      Row
	consumed bool
}

// index buckets the right-side rows by composite key. Keys iterate in
// first-seen order and entries keep their original input order, so the
// first-unconsumed tie-break and the residual scan are deterministic.
type index struct {
	order   []string
	buckets map[string][]*entry
	dups    map[string]struct{}
}

// buildIndex groups rows by their composite key. Rows whose key columns are
// all blank are omitted entirely. Keys whose bucket holds more than one row
// are recorded as duplicate keys.
func buildIndex(rows []Row, keyColumns []string) *index {
	ix := &index{
		buckets: make(map[string][]*entry),
		dups:    make(map[string]struct{}),
	}

	for _, row := range rows {
		key := CompositeKey(row, keyColumns)
		if key == "" {
			continue
		}
		if _, seen := ix.buckets[key]; !seen {
			ix.order = append(ix.order, key)
		}
		ix.buckets[key] = append(ix.buckets[key], &entry{row: row})
	}

	for key, bucket := range ix.buckets {
		if len(bucket) > 1 {
			ix.dups[key] = struct{}{}
		}
	}

	return ix
}

// takeFirstUnconsumed consumes and returns the first unconsumed entry in
// bucket order, or nil when the bucket is missing or exhausted.
func (ix *index) takeFirstUnconsumed(key string) *entry {
	for _, e := range ix.buckets[key] {
		if !e.consumed {
			e.consumed = true
			return e
		}
	}
	return nil
}

// isDuplicate reports whether more than one right row shares the key.
func (ix *index) isDuplicate(key string) bool {
	_, ok := ix.dups[key]
	return ok
}
