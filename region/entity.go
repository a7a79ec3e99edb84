package region

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Entity is a typed mirror of a Litematica region's Entities list,
// covering the fields every vanilla entity NBT tag carries. Ported
// from the original implementation's Entity record.
type Entity struct {
	ID             string
	Pos            [3]float64
	Rotation       [2]float64
	Motion         [3]float64
	Fire           int16
	Air            int16
	FallDistance   float64
	OnGround       bool
	PortalCooldown int32
	Invulnerable   bool
	UUID           *uuid.UUID
}

// UUIDToInts converts a UUID to Minecraft's four-int32 wire
// representation: the most-significant 64 bits split into two big
// halves, then the least-significant 64 bits the same way.
func UUIDToInts(id uuid.UUID) [4]int32 {
	var out [4]int32
	b := id[:]
	out[0] = int32(binary.BigEndian.Uint32(b[0:4]))
	out[1] = int32(binary.BigEndian.Uint32(b[4:8]))
	out[2] = int32(binary.BigEndian.Uint32(b[8:12]))
	out[3] = int32(binary.BigEndian.Uint32(b[12:16]))
	return out
}

// UUIDFromInts is the inverse of UUIDToInts.
func UUIDFromInts(ints [4]int32) uuid.UUID {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(ints[0]))
	binary.BigEndian.PutUint32(b[4:8], uint32(ints[1]))
	binary.BigEndian.PutUint32(b[8:12], uint32(ints[2]))
	binary.BigEndian.PutUint32(b[12:16], uint32(ints[3]))
	return uuid.UUID(b)
}
