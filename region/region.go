// Package region implements a single Litematica region: a palette-coded,
// bit-packed voxel volume plus its associated entities, tile entities,
// and pending tick lists.
package region

import (
	"errors"
	"iter"

	"github.com/brinewood/ritematica/block"
	"github.com/brinewood/ritematica/errs"
)

var (
	errEmptyPalette = errors.New("block state palette is empty")
	errWordCount    = errors.New("packed block state array length does not match palette bit width")
)

// Region is one named volume within a schematic file.
type Region struct {
	Position Coordinates
	Size     Coordinates

	entities          []Entity
	tileEntities      []map[string]any
	pendingBlockTicks []map[string]any
	pendingFluidTicks []map[string]any

	palette *palette
	words   []int64
}

// Entities returns a copy of the region's entity list.
func (r *Region) Entities() []Entity {
	return append([]Entity(nil), r.entities...)
}

// SetEntities replaces the region's entity list with a copy of v.
func (r *Region) SetEntities(v []Entity) {
	r.entities = append([]Entity(nil), v...)
}

// TileEntities returns the region's tile entities, carried opaquely as
// raw NBT compound trees.
func (r *Region) TileEntities() []map[string]any {
	return append([]map[string]any(nil), r.tileEntities...)
}

// SetTileEntities replaces the region's tile entity list.
func (r *Region) SetTileEntities(v []map[string]any) {
	r.tileEntities = append([]map[string]any(nil), v...)
}

// PendingBlockTicks returns the region's pending block ticks, carried
// opaquely as raw NBT compound trees.
func (r *Region) PendingBlockTicks() []map[string]any {
	return append([]map[string]any(nil), r.pendingBlockTicks...)
}

// SetPendingBlockTicks replaces the region's pending block tick list.
func (r *Region) SetPendingBlockTicks(v []map[string]any) {
	r.pendingBlockTicks = append([]map[string]any(nil), v...)
}

// PendingFluidTicks returns the region's pending fluid ticks, carried
// opaquely as raw NBT compound trees.
func (r *Region) PendingFluidTicks() []map[string]any {
	return append([]map[string]any(nil), r.pendingFluidTicks...)
}

// SetPendingFluidTicks replaces the region's pending fluid tick list.
func (r *Region) SetPendingFluidTicks(v []map[string]any) {
	r.pendingFluidTicks = append([]map[string]any(nil), v...)
}

// New creates an empty region of the given size, with every cell
// initialized to defaultState (palette index 0). Size components may
// be negative; Volume and addressing use their absolute magnitude.
func New(position, size Coordinates, defaultState block.State) *Region {
	r := &Region{
		Position: position,
		Size:     size,
		palette:  newPalette(),
	}
	r.palette.add(defaultState)

	bitsPer := bitsPerCell(1)
	r.words = make([]int64, wordsNeeded(r.Volume(), bitsPer))
	return r
}

// Volume returns the number of addressable cells in the region.
func (r *Region) Volume() int {
	abs := r.Size.Abs()
	return int(abs.X) * int(abs.Y) * int(abs.Z)
}

// Palette returns a snapshot of the region's current block-state
// palette, in index order.
func (r *Region) Palette() []block.State {
	out := make([]block.State, len(r.palette.entries))
	copy(out, r.palette.entries)
	return out
}

// linearIndex maps a 3D position within the region to an index into
// the packed cell array: y-major, then z, then x.
func (r *Region) linearIndex(c Coordinates) (int, error) {
	abs := r.Size.Abs()
	sx, sy, sz := int(abs.X), int(abs.Y), int(abs.Z)

	x, y, z := int(c.X), int(c.Y), int(c.Z)
	if x < 0 || x >= sx || y < 0 || y >= sy || z < 0 || z >= sz {
		return 0, errs.New(errs.OutOfBounds, "region.Region", nil)
	}
	return y*(sx*sz) + z*sx + x, nil
}

// GetBlock returns the block state at c. The returned pointer aliases
// the region's palette and must not be retained across a call to
// SetBlock or MutatePaletteEntry.
func (r *Region) GetBlock(c Coordinates) (*block.State, error) {
	i, err := r.linearIndex(c)
	if err != nil {
		return nil, err
	}
	bitsPer := bitsPerCell(r.palette.size())
	mask := uint64(1)<<bitsPer - 1
	idx := readCell(r.words, i, bitsPer, mask)
	return &r.palette.entries[idx], nil
}

// SetBlock places bs at c, growing the palette (and widening the
// packed cell array, if the palette is about to cross a power-of-two
// boundary) as needed.
func (r *Region) SetBlock(c Coordinates, bs block.State) error {
	i, err := r.linearIndex(c)
	if err != nil {
		return err
	}

	bitsOld := bitsPerCell(r.palette.size())

	v, found := r.palette.find(bs)
	if !found {
		v = int32(r.palette.size())
		if isPow2(int(v)) && v >= 4 {
			bitsNew := bitsOld + 1
			r.resize(bitsOld, bitsNew)
		}
		r.palette.add(bs)
	}

	bitsCur := bitsPerCell(r.palette.size())
	mask := uint64(1)<<bitsCur - 1
	writeCell(r.words, i, uint64(v), bitsCur, mask)
	return nil
}

// resize re-packs every existing cell from oldBits to newBits width
// and replaces the backing word array.
func (r *Region) resize(oldBits, newBits int) {
	vol := r.Volume()
	newWords := make([]int64, wordsNeeded(vol, newBits))

	oldMask := uint64(1)<<oldBits - 1
	newMask := uint64(1)<<newBits - 1
	for k := 0; k < vol; k++ {
		val := readCell(r.words, k, oldBits, oldMask)
		writeCell(newWords, k, val, newBits, newMask)
	}
	r.words = newWords
}

// MutatePaletteEntry applies fn to the palette entry at index, in
// place. Every cell currently referencing that index is affected. This
// is the only supported form of aliasing mutation; there is no
// separate "get mutable reference" accessor.
func (r *Region) MutatePaletteEntry(index int, fn func(*block.State)) error {
	if index < 0 || index >= r.palette.size() {
		return errs.New(errs.OutOfBounds, "region.Region.MutatePaletteEntry", nil)
	}
	fn(&r.palette.entries[index])
	r.palette.rebuildIndex()
	return nil
}

// EachPosition visits every cell in the region in y-then-z-then-x
// order, calling fn with its coordinates and current block state.
// Iteration stops early if fn returns false. This is the one place
// the triple loop over a region's volume is written; FindPositions
// builds on it.
func (r *Region) EachPosition(fn func(Coordinates, *block.State) bool) {
	abs := r.Size.Abs()
	sx, sy, sz := int(abs.X), int(abs.Y), int(abs.Z)

	for y := 0; y < sy; y++ {
		for z := 0; z < sz; z++ {
			for x := 0; x < sx; x++ {
				c := Coordinates{X: int32(x), Y: int32(y), Z: int32(z)}
				bs, err := r.GetBlock(c)
				if err != nil {
					return
				}
				if !fn(c, bs) {
					return
				}
			}
		}
	}
}

// FindPositions returns a lazy sequence of every position whose block
// state matches p, in y-then-z-then-x order.
func (r *Region) FindPositions(p block.Pattern) iter.Seq[Coordinates] {
	return func(yield func(Coordinates) bool) {
		r.EachPosition(func(c Coordinates, bs *block.State) bool {
			if p.Matches(bs) {
				return yield(c)
			}
			return true
		})
	}
}

// Words returns a copy of the region's packed cell storage, in the
// layout a Litematica BlockStates long array uses on the wire.
func (r *Region) Words() []int64 {
	out := make([]int64, len(r.words))
	copy(out, r.words)
	return out
}

// FromPacked reconstructs a Region directly from an already-decoded
// palette and packed cell array, as read off the wire. It validates
// the cheap invariants a corrupt or hand-edited file could violate:
// a non-empty palette and a word array of exactly the length the
// palette's bit width implies for this region's volume.
func FromPacked(position, size Coordinates, entries []block.State, words []int64) (*Region, error) {
	if len(entries) == 0 {
		return nil, errs.New(errs.NBT, "region.FromPacked", errEmptyPalette)
	}

	r := &Region{Position: position, Size: size}
	bitsPer := bitsPerCell(len(entries))
	want := wordsNeeded(r.Volume(), bitsPer)
	if len(words) != want {
		return nil, errs.New(errs.NBT, "region.FromPacked", errWordCount)
	}

	p := newPalette()
	p.entries = entries
	p.rebuildIndex()
	r.palette = p
	r.words = words
	return r, nil
}
