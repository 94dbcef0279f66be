package searcher

import "sync"

type tableEntry struct {
	visits   int
	value    float64
	accesses int
	seq      uint64
}

// Table is a bounded cache of base heuristic evaluations keyed by the coarse
// state hash. Eviction is least-frequently-used: by access count, ties broken
// by insertion order. No recency is tracked.
//
// Safe for concurrent use: the root-parallel mode shares one table across
// worker trees.
type Table struct {
	mu      sync.Mutex
	maxSize int
	seq     uint64
	entries map[string]*tableEntry
}

func NewTable(maxSize int) *Table {
	return &Table{
		maxSize: maxSize,
		entries: make(map[string]*tableEntry, maxSize),
	}
}

// Lookup returns the cached (visits, value) pair, counting the access. The
// stored pair itself is not mutated.
func (t *Table) Lookup(hash string) (visits int, value float64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[hash]
	if !ok {
		return 0, 0, false
	}
	entry.accesses++
	return entry.visits, entry.value, true
}

// Store inserts or overwrites an entry with a fresh access counter. When the
// table is full, the least-accessed entry is evicted first.
func (t *Table) Store(hash string, visits int, value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if entry, ok := t.entries[hash]; ok {
		entry.visits = visits
		entry.value = value
		entry.accesses = 1
		return
	}

	if len(t.entries) >= t.maxSize {
		t.evict()
	}

	t.seq++
	t.entries[hash] = &tableEntry{
		visits:   visits,
		value:    value,
		accesses: 1,
		seq:      t.seq,
	}
}

// evict removes the entry with the fewest accesses; among equals the oldest
// insertion goes. Caller holds the lock.
func (t *Table) evict() {
	var victim string
	minAccesses, minSeq := -1, uint64(0)
	for hash, entry := range t.entries {
		if minAccesses < 0 ||
			entry.accesses < minAccesses ||
			(entry.accesses == minAccesses && entry.seq < minSeq) {
			victim = hash
			minAccesses = entry.accesses
			minSeq = entry.seq
		}
	}
	delete(t.entries, victim)
}

func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}

func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = make(map[string]*tableEntry, t.maxSize)
	t.seq = 0
}
