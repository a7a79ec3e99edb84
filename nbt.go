package ritematica

import (
	"github.com/brinewood/ritematica/block"
	"github.com/brinewood/ritematica/errs"
	"github.com/brinewood/ritematica/region"
	"github.com/brinewood/ritematica/resource"
)

// fileNBT is the root NBT compound of a Litematica file.
type fileNBT struct {
	Version              int32                `nbt:"Version"`
	MinecraftDataVersion int32                `nbt:"MinecraftDataVersion"`
	Metadata             metadataNBT          `nbt:"Metadata"`
	Regions              map[string]regionNBT `nbt:"Regions"`
	Extra                map[string]any       `nbt:"*"`
}

type coordsNBT struct {
	X int32 `nbt:"x"`
	Y int32 `nbt:"y"`
	Z int32 `nbt:"z"`
}

type metadataNBT struct {
	Name          string    `nbt:"Name"`
	Author        string    `nbt:"Author"`
	Description   string    `nbt:"Description"`
	TimeCreated   int64     `nbt:"TimeCreated"`
	TimeModified  int64     `nbt:"TimeModified"`
	RegionCount   int32     `nbt:"RegionCount"`
	TotalBlocks   int32     `nbt:"TotalBlocks"`
	TotalVolume   int32     `nbt:"TotalVolume"`
	EnclosingSize coordsNBT `nbt:"EnclosingSize"`
}

type paletteEntryNBT struct {
	Name       string            `nbt:"Name"`
	Properties map[string]string `nbt:"Properties,omitempty"`
}

type entityNBT struct {
	ID             string    `nbt:"id"`
	Pos            []float64 `nbt:"Pos"`
	Rotation       []float64 `nbt:"Rotation"`
	Motion         []float64 `nbt:"Motion"`
	Fire           int16     `nbt:"Fire"`
	Air            int16     `nbt:"Air"`
	FallDistance   float64   `nbt:"FallDistance"`
	OnGround       bool      `nbt:"OnGround"`
	PortalCooldown int32     `nbt:"PortalCooldown"`
	Invulnerable   bool      `nbt:"Invulnerable"`
	UUID           []int32   `nbt:"UUID,omitempty"`
}

type regionNBT struct {
	Position coordsNBT `nbt:"Position"`
	Size     coordsNBT `nbt:"Size"`

	BlockStatePalette []paletteEntryNBT `nbt:"BlockStatePalette"`
	BlockStates       []int64           `nbt:"BlockStates,array"`

	TileEntities      []map[string]any `nbt:"TileEntities"`
	Entities          []entityNBT      `nbt:"Entities"`
	PendingBlockTicks []map[string]any `nbt:"PendingBlockTicks,omitempty"`
	PendingFluidTicks []map[string]any `nbt:"PendingFluidTicks,omitempty"`
}

func coordsToNBT(c region.Coordinates) coordsNBT {
	return coordsNBT{X: c.X, Y: c.Y, Z: c.Z}
}

func coordsFromNBT(c coordsNBT) region.Coordinates {
	return region.Coordinates{X: c.X, Y: c.Y, Z: c.Z}
}

func blockStateToNBT(s block.State) paletteEntryNBT {
	return paletteEntryNBT{Name: s.ID().String(), Properties: s.Properties()}
}

func blockStateFromNBT(p paletteEntryNBT) (block.State, error) {
	id, err := resource.Parse(p.Name)
	if err != nil {
		return block.State{}, err
	}
	return block.New(id, p.Properties), nil
}

func entityToNBT(e region.Entity) entityNBT {
	out := entityNBT{
		ID:             e.ID,
		Pos:            e.Pos[:],
		Rotation:       e.Rotation[:],
		Motion:         e.Motion[:],
		Fire:           e.Fire,
		Air:            e.Air,
		FallDistance:   e.FallDistance,
		OnGround:       e.OnGround,
		PortalCooldown: e.PortalCooldown,
		Invulnerable:   e.Invulnerable,
	}
	if e.UUID != nil {
		ints := region.UUIDToInts(*e.UUID)
		out.UUID = ints[:]
	}
	return out
}

func entityFromNBT(n entityNBT) region.Entity {
	e := region.Entity{
		ID:             n.ID,
		Fire:           n.Fire,
		Air:            n.Air,
		FallDistance:   n.FallDistance,
		OnGround:       n.OnGround,
		PortalCooldown: n.PortalCooldown,
		Invulnerable:   n.Invulnerable,
	}
	copy(e.Pos[:], n.Pos)
	copy(e.Rotation[:], n.Rotation)
	copy(e.Motion[:], n.Motion)
	if len(n.UUID) == 4 {
		id := region.UUIDFromInts([4]int32(n.UUID))
		e.UUID = &id
	}
	return e
}

func regionToNBT(r *region.Region) regionNBT {
	palette := r.Palette()
	entries := make([]paletteEntryNBT, len(palette))
	for i, s := range palette {
		entries[i] = blockStateToNBT(s)
	}

	regionEntities := r.Entities()
	entities := make([]entityNBT, len(regionEntities))
	for i, e := range regionEntities {
		entities[i] = entityToNBT(e)
	}

	return regionNBT{
		Position:          coordsToNBT(r.Position),
		Size:              coordsToNBT(r.Size),
		BlockStatePalette: entries,
		BlockStates:       r.Words(),
		TileEntities:      r.TileEntities(),
		Entities:          entities,
		PendingBlockTicks: r.PendingBlockTicks(),
		PendingFluidTicks: r.PendingFluidTicks(),
	}
}

func regionFromNBT(n regionNBT) (*region.Region, error) {
	entries := make([]block.State, len(n.BlockStatePalette))
	for i, p := range n.BlockStatePalette {
		s, err := blockStateFromNBT(p)
		if err != nil {
			return nil, errs.New(errs.InvalidID, "ritematica.Read", err)
		}
		entries[i] = s
	}

	r, err := region.FromPacked(coordsFromNBT(n.Position), coordsFromNBT(n.Size), entries, n.BlockStates)
	if err != nil {
		return nil, err
	}

	if len(n.Entities) > 0 {
		entities := make([]region.Entity, len(n.Entities))
		for i, e := range n.Entities {
			entities[i] = entityFromNBT(e)
		}
		r.SetEntities(entities)
	}
	r.SetTileEntities(n.TileEntities)
	r.SetPendingBlockTicks(n.PendingBlockTicks)
	r.SetPendingFluidTicks(n.PendingFluidTicks)
	return r, nil
}
