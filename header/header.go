// seehuhn.de/go/fontmeta - extract metadata from font files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package header reads the table directory of sfnt font files.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff
package header

import (
	"encoding/binary"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/fontmeta/parser"
)

// The recognized values for the sfnt scaler type.
const (
	ScalerTypeTrueType uint32 = 0x00010000
	ScalerTypeCFF      uint32 = 0x4F54544F // "OTTO"
	ScalerTypeApple    uint32 = 0x74727565 // "true"

	ttcTag uint32 = 0x74746366 // "ttcf"
)

// Info describes the table directory of a single font.
type Info struct {
	ScalerType uint32
	Toc        map[string]Record
}

// Record gives the location of a single table within the font file.
type Record struct {
	Offset uint32
	Length uint32
}

// NumFonts returns the number of fonts contained in data.
// For a TrueType collection this is the declared font count,
// for everything else it is 1.
func NumFonts(data []byte) int {
	if len(data) >= 12 && binary.BigEndian.Uint32(data) == ttcTag {
		return int(binary.BigEndian.Uint32(data[8:]))
	}
	return 1
}

// Read locates the table directory of the font with the given index and
// parses it.  The returned Info refers to positions within data; no part of
// data is copied.
func Read(data []byte, index int) (*Info, error) {
	base := 0
	if len(data) >= 12 && binary.BigEndian.Uint32(data) == ttcTag {
		numFonts := int(binary.BigEndian.Uint32(data[8:]))
		if index < 0 || index >= numFonts {
			return nil, invalidFont(fmt.Sprintf("font index %d out of range", index))
		}
		offsetPos := 12 + 4*index
		if offsetPos+4 > len(data) {
			return nil, invalidFont("truncated collection header")
		}
		offset := binary.BigEndian.Uint32(data[offsetPos:])
		if offset > uint32(len(data)) {
			return nil, invalidFont("collection offset out of range")
		}
		base = int(offset)
	} else if index != 0 {
		return nil, invalidFont(fmt.Sprintf("font index %d out of range", index))
	}

	if base+12 > len(data) {
		return nil, invalidFont("missing table directory")
	}
	scalerType := binary.BigEndian.Uint32(data[base:])
	switch scalerType {
	case ScalerTypeTrueType, ScalerTypeCFF, ScalerTypeApple:
		// pass
	default:
		return nil, &parser.NotSupportedError{
			SubSystem: "fontmeta/header",
			Feature:   fmt.Sprintf("scaler type 0x%08x", scalerType),
		}
	}

	numTables := int(binary.BigEndian.Uint16(data[base+4:]))
	if base+12+16*numTables > len(data) {
		return nil, invalidFont("truncated table directory")
	}

	info := &Info{
		ScalerType: scalerType,
		Toc:        make(map[string]Record, numTables),
	}
	for i := 0; i < numTables; i++ {
		rec := data[base+12+16*i:]
		name := string(rec[:4])
		offset := binary.BigEndian.Uint32(rec[8:])
		length := binary.BigEndian.Uint32(rec[12:])
		if offset > uint32(len(data)) || length > uint32(len(data))-offset {
			return nil, invalidFont(
				fmt.Sprintf("table %q extends beyond end of file", name))
		}
		info.Toc[name] = Record{Offset: offset, Length: length}
	}
	if len(info.Toc) == 0 {
		return nil, invalidFont("no tables found")
	}
	return info, nil
}

// Has returns true if the given table is present in the font.
func (info *Info) Has(name string) bool {
	_, ok := info.Toc[name]
	return ok
}

// TableBytes returns the contents of the named table as a sub-slice of data.
// The second return value is false if the table is not present.
func (info *Info) TableBytes(data []byte, name string) ([]byte, bool) {
	rec, ok := info.Toc[name]
	if !ok {
		return nil, false
	}
	return data[rec.Offset : rec.Offset+rec.Length], true
}

// Tables returns the names of all tables in the font,
// sorted by file position.
func (info *Info) Tables() []string {
	names := maps.Keys(info.Toc)
	sort.Slice(names, func(i, j int) bool {
		return info.Toc[names[i]].Offset < info.Toc[names[j]].Offset
	})
	return names
}

func invalidFont(reason string) error {
	return &parser.InvalidFontError{
		SubSystem: "fontmeta/header",
		Reason:    reason,
	}
}
