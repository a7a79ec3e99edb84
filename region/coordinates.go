package region

// Coordinates is a 3D integer position or extent. Size components may
// be negative, indicating the region's orientation relative to its
// declared Position; addressing always uses their absolute magnitude.
type Coordinates struct {
	X, Y, Z int32
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Abs returns a copy of c with every component made non-negative.
func (c Coordinates) Abs() Coordinates {
	return Coordinates{absInt32(c.X), absInt32(c.Y), absInt32(c.Z)}
}
