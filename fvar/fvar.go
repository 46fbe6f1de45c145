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

// Package fvar reads the axis records of "fvar" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/fvar
package fvar

import (
	"encoding/binary"

	"seehuhn.de/go/fontmeta/parser"
)

// Axis describes one axis of variation of a variable font.
//
// The table stores minimum, default and maximum as 16.16 fixed-point
// numbers.  Fonts are expected to satisfy Min <= Default <= Max, but this
// is not checked here; the stored values are passed through unchanged.
type Axis struct {
	Tag     string // four characters, or "" for the null tag
	Min     float32
	Default float32
	Max     float32
	NameID  uint16 // reference into the "name" table, not resolved
	Hidden  bool
}

// Axes reads the list of variation axes from data, in the order in which
// they are declared in the table.  This order is significant: it is the
// axis ordering seen by all consumers of the font.
func Axes(data []byte) ([]Axis, error) {
	if len(data) < 16 {
		return nil, invalidFvar("table too short")
	}
	axesArrayOffset := int(binary.BigEndian.Uint16(data[4:]))
	axisCount := int(binary.BigEndian.Uint16(data[8:]))
	axisSize := int(binary.BigEndian.Uint16(data[10:]))
	if axisSize < 20 {
		return nil, invalidFvar("invalid axis record size")
	}
	if axisCount > 0 && axesArrayOffset+axisCount*axisSize > len(data) {
		return nil, invalidFvar("truncated axis records")
	}

	axes := make([]Axis, axisCount)
	for i := range axes {
		rec := data[axesArrayOffset+i*axisSize:]
		var tag string
		if tagBytes := rec[:4]; binary.BigEndian.Uint32(tagBytes) != 0 {
			tag = string(tagBytes)
		}
		flags := binary.BigEndian.Uint16(rec[16:])
		axes[i] = Axis{
			Tag:     tag,
			Min:     fixedToFloat(binary.BigEndian.Uint32(rec[4:])),
			Default: fixedToFloat(binary.BigEndian.Uint32(rec[8:])),
			Max:     fixedToFloat(binary.BigEndian.Uint32(rec[12:])),
			Hidden:  flags&0x0001 != 0,
			NameID:  binary.BigEndian.Uint16(rec[18:]),
		}
	}
	return axes, nil
}

func fixedToFloat(x uint32) float32 {
	return float32(int32(x)) / 65536
}

func invalidFvar(reason string) error {
	return &parser.InvalidFontError{
		SubSystem: "fontmeta/fvar",
		Reason:    reason,
	}
}
