// Package ritematica reads, mutates, and writes Litematica schematic
// files: a gzip-compressed, big-endian NBT container holding one or
// more palette-coded, bit-packed voxel regions.
package ritematica

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oriumgames/nbt"

	"github.com/brinewood/ritematica/errs"
	"github.com/brinewood/ritematica/region"
)

// litematicExt is the only extension WriteFile accepts.
const litematicExt = ".litematic"

// supportedVersions lists the Litematica format versions Read accepts.
var supportedVersions = map[int32]bool{6: true, 7: true}

// Metadata carries a file's descriptive fields: author, timestamps,
// and the summary statistics Litematica stores alongside the regions
// themselves (region/block/volume counts, enclosing size). These are
// not recomputed on Write; the caller owns keeping them consistent,
// mirroring the original implementation's plain pass-through fields.
type Metadata struct {
	Name          string
	Author        string
	Description   string
	TimeCreated   int64
	TimeModified  int64
	RegionCount   int32
	TotalBlocks   int32
	TotalVolume   int32
	EnclosingSize region.Coordinates
}

// File is an in-memory Litematica schematic: file-level metadata plus
// a named collection of regions.
type File struct {
	DataVersion int32
	Version     int32
	Metadata    Metadata

	// Extra carries any top-level NBT fields this library does not
	// otherwise model (e.g. SubVersion), verbatim from read to write,
	// so round-tripping a file never silently drops unrecognized data.
	Extra map[string]any

	regions map[string]*region.Region
}

// NewFile creates an empty File targeting the given Minecraft data
// version, with no regions.
func NewFile(dataVersion int32) *File {
	return &File{
		DataVersion: dataVersion,
		Version:     6,
		regions:     make(map[string]*region.Region),
	}
}

// RegionNames returns the names of every region in the file, in no
// particular order.
func (f *File) RegionNames() []string {
	names := make([]string, 0, len(f.regions))
	for name := range f.regions {
		names = append(names, name)
	}
	return names
}

// Region returns the region with the given name, if any.
func (f *File) Region(name string) (*region.Region, bool) {
	r, ok := f.regions[name]
	return r, ok
}

// SetRegion inserts or replaces the region stored under name.
func (f *File) SetRegion(name string, r *region.Region) {
	f.regions[name] = r
}

// RenameRegion moves the region stored under oldName to newName. It is
// a no-op if oldName is not present. If newName already names a
// region, that region is overwritten.
func (f *File) RenameRegion(oldName, newName string) {
	r, ok := f.regions[oldName]
	if !ok {
		return
	}
	delete(f.regions, oldName)
	f.regions[newName] = r
}

// Read decodes a Litematica file from r: gzip decompression followed
// by big-endian NBT decoding.
func Read(r io.Reader) (*File, error) {
	const op = "ritematica.Read"

	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, errs.New(errs.IO, op, err)
	}
	defer gz.Close()

	var data fileNBT
	if err := nbt.NewDecoderWithEncoding(gz, nbt.BigEndian).Decode(&data); err != nil {
		return nil, errs.New(errs.NBT, op, err)
	}

	if !supportedVersions[data.Version] {
		return nil, errs.New(errs.NBT, op, unsupportedVersionError(data.Version))
	}

	f := &File{
		DataVersion: data.MinecraftDataVersion,
		Version:     data.Version,
		Metadata: Metadata{
			Name:          data.Metadata.Name,
			Author:        data.Metadata.Author,
			Description:   data.Metadata.Description,
			TimeCreated:   data.Metadata.TimeCreated,
			TimeModified:  data.Metadata.TimeModified,
			RegionCount:   data.Metadata.RegionCount,
			TotalBlocks:   data.Metadata.TotalBlocks,
			TotalVolume:   data.Metadata.TotalVolume,
			EnclosingSize: coordsFromNBT(data.Metadata.EnclosingSize),
		},
		Extra:   data.Extra,
		regions: make(map[string]*region.Region, len(data.Regions)),
	}

	for name, rn := range data.Regions {
		reg, err := regionFromNBT(rn)
		if err != nil {
			return nil, err
		}
		f.regions[name] = reg
	}

	return f, nil
}

// ReadFile opens path and decodes it as a Litematica file. Unlike
// WriteFile, the extension is not validated on read: Litematica
// files are sometimes distributed under other names.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errs.New(errs.IO, "ritematica.ReadFile", err)
	}
	defer fh.Close()
	return Read(fh)
}

// Write gzip-compresses and NBT-encodes f to w.
func (f *File) Write(w io.Writer) error {
	const op = "ritematica.Write"

	regions := make(map[string]regionNBT, len(f.regions))
	for name, r := range f.regions {
		regions[name] = regionToNBT(r)
	}

	data := fileNBT{
		Version:              6,
		MinecraftDataVersion: f.DataVersion,
		Metadata: metadataNBT{
			Name:          f.Metadata.Name,
			Author:        f.Metadata.Author,
			Description:   f.Metadata.Description,
			TimeCreated:   f.Metadata.TimeCreated,
			TimeModified:  f.Metadata.TimeModified,
			RegionCount:   f.Metadata.RegionCount,
			TotalBlocks:   f.Metadata.TotalBlocks,
			TotalVolume:   f.Metadata.TotalVolume,
			EnclosingSize: coordsToNBT(f.Metadata.EnclosingSize),
		},
		Regions: regions,
		Extra:   f.Extra,
	}

	gz := gzip.NewWriter(w)
	if err := nbt.NewEncoderWithEncoding(gz, nbt.BigEndian).Encode(data); err != nil {
		gz.Close()
		return errs.New(errs.NBT, op, err)
	}
	if err := gz.Close(); err != nil {
		return errs.New(errs.IO, op, err)
	}
	return nil
}

// WriteFile validates that path ends in ".litematic", then creates (or
// truncates) it and writes f. The extension is checked before the
// destination file is opened, so a rejected call never touches disk.
func (f *File) WriteFile(path string) error {
	const op = "ritematica.WriteFile"

	if !strings.EqualFold(filepath.Ext(path), litematicExt) {
		return errs.New(errs.InvalidPath, op, invalidExtensionError(path))
	}

	fh, err := os.Create(path)
	if err != nil {
		return errs.New(errs.IO, op, err)
	}
	defer fh.Close()

	return f.Write(fh)
}
