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

// Package head reads "head" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
package head

import (
	"encoding/binary"
	"io"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontmeta/parser"
)

// Info contains information from the "head" table.
type Info struct {
	FontRevision uint32 // fixed-point version number, times 65536
	UnitsPerEm   uint16
}

// HasUnitsPerEm returns true if the stored units-per-em value is within
// the range 16 to 16384 allowed for sfnt fonts.
func (info *Info) HasUnitsPerEm() bool {
	return info.UnitsPerEm >= 16 && info.UnitsPerEm <= 16384
}

// Read reads the "head" table from r.
func Read(r io.Reader) (*Info, error) {
	data := &headData{}
	err := binary.Read(r, binary.BigEndian, data)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = &parser.InvalidFontError{
				SubSystem: "fontmeta/head",
				Reason:    "table too short",
			}
		}
		return nil, err
	}
	if data.MagicNumber != 0x5F0F3CF5 {
		return nil, &parser.InvalidFontError{
			SubSystem: "fontmeta/head",
			Reason:    "wrong magic number",
		}
	}

	info := &Info{
		FontRevision: data.FontRevision,
		UnitsPerEm:   data.UnitsPerEm,
	}
	return info, nil
}

type headData struct {
	Version            uint32
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64
	XMin               funit.Int16
	YMin               funit.Int16
	XMax               funit.Int16
	YMax               funit.Int16
	MacStyle           uint16
	LowestRecPPEM      uint16
	FontDirectionHint  int16
	IndexToLocFormat   int16
	GlyphDataFormat    int16
}
