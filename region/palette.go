package region

import (
	"github.com/cespare/xxhash/v2"

	"github.com/brinewood/ritematica/block"
)

// palette holds a region's local block-state table plus a hash-based
// accelerator for the linear-scan lookup a naive implementation would
// otherwise do on every SetBlock. The accelerator is a pure cache: it
// never changes what find/add return, only how fast they return it.
type palette struct {
	entries []block.State
	byHash  map[uint64][]int32
}

func newPalette() *palette {
	return &palette{byHash: make(map[uint64][]int32)}
}

func hashKey(key string) uint64 {
	return xxhash.Sum64String(key)
}

// find returns the index of an entry structurally equal to s, if any.
func (p *palette) find(s block.State) (int32, bool) {
	h := hashKey(s.Key())
	for _, idx := range p.byHash[h] {
		if p.entries[idx].Equal(s) {
			return idx, true
		}
	}
	return 0, false
}

// add appends s unconditionally and returns its new index.
func (p *palette) add(s block.State) int32 {
	idx := int32(len(p.entries))
	p.entries = append(p.entries, s)
	h := hashKey(s.Key())
	p.byHash[h] = append(p.byHash[h], idx)
	return idx
}

// size returns the number of entries in the palette.
func (p *palette) size() int {
	return len(p.entries)
}

// rebuildIndex recomputes byHash from scratch. Needed after entries is
// replaced wholesale (e.g. decoding from NBT) or after a palette entry
// is mutated in place, since either can invalidate existing buckets.
func (p *palette) rebuildIndex() {
	p.byHash = make(map[uint64][]int32, len(p.entries))
	for i, e := range p.entries {
		h := hashKey(e.Key())
		p.byHash[h] = append(p.byHash[h], int32(i))
	}
}
