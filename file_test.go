package ritematica

import (
	"bytes"
	"errors"
	"testing"

	"github.com/brinewood/ritematica/block"
	"github.com/brinewood/ritematica/errs"
	"github.com/brinewood/ritematica/region"
	"github.com/brinewood/ritematica/resource"
)

func mustBlock(t *testing.T, path string, props map[string]string) block.State {
	t.Helper()
	id, err := resource.Minecraft(path)
	if err != nil {
		t.Fatalf("resource.Minecraft(%q): %v", path, err)
	}
	return block.New(id, props)
}

func buildSampleFile(t *testing.T) *File {
	t.Helper()
	air := mustBlock(t, "air", nil)
	stone := mustBlock(t, "stone", nil)

	r := region.New(region.Coordinates{}, region.Coordinates{X: 2, Y: 2, Z: 2}, air)
	if err := r.SetBlock(region.Coordinates{X: 1, Y: 1, Z: 1}, stone); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}

	f := NewFile(3953)
	f.Metadata.Name = "Sample"
	f.Metadata.Author = "tester"
	f.Metadata.RegionCount = 1
	f.SetRegion("Main", r)
	return f
}

func TestWriteReadRoundTrip(t *testing.T) {
	f := buildSampleFile(t)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.DataVersion != f.DataVersion {
		t.Errorf("DataVersion = %d, want %d", got.DataVersion, f.DataVersion)
	}
	if got.Metadata.Name != f.Metadata.Name || got.Metadata.Author != f.Metadata.Author {
		t.Errorf("Metadata = %+v, want %+v", got.Metadata, f.Metadata)
	}

	names := got.RegionNames()
	if len(names) != 1 || names[0] != "Main" {
		t.Fatalf("RegionNames = %v, want [Main]", names)
	}

	origReg, _ := f.Region("Main")
	gotReg, ok := got.Region("Main")
	if !ok {
		t.Fatalf("region Main missing after round trip")
	}

	for y := int32(0); y < 2; y++ {
		for z := int32(0); z < 2; z++ {
			for x := int32(0); x < 2; x++ {
				c := region.Coordinates{X: x, Y: y, Z: z}
				want, err := origReg.GetBlock(c)
				if err != nil {
					t.Fatalf("origReg.GetBlock(%v): %v", c, err)
				}
				gotBlock, err := gotReg.GetBlock(c)
				if err != nil {
					t.Fatalf("gotReg.GetBlock(%v): %v", c, err)
				}
				if !gotBlock.Equal(*want) {
					t.Errorf("GetBlock(%v) = %v, want %v", c, gotBlock, want)
				}
			}
		}
	}
}

func TestRenameRegion(t *testing.T) {
	f := buildSampleFile(t)

	f.RenameRegion("Main", "Primary")
	if _, ok := f.Region("Main"); ok {
		t.Fatalf("old name still present after rename")
	}
	if _, ok := f.Region("Primary"); !ok {
		t.Fatalf("new name missing after rename")
	}

	// Renaming an absent region is a no-op.
	f.RenameRegion("Nope", "AlsoNope")
	if _, ok := f.Region("AlsoNope"); ok {
		t.Fatalf("rename of absent region should be a no-op")
	}
}

func TestWriteFileRejectsExtension(t *testing.T) {
	f := buildSampleFile(t)

	err := f.WriteFile("/tmp/ritematica-test-no-touch.schematic")
	if err == nil {
		t.Fatalf("expected error for non-.litematic extension")
	}
	if !errors.Is(err, errs.ErrInvalidPath) {
		t.Errorf("error = %v, want errs.ErrInvalidPath", err)
	}
}
