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

// Package post reads the fixed-length header of "post" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
package post

import (
	"encoding/binary"
	"io"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontmeta/parser"
)

// Info contains information from the "post" table.
// The glyph name sub-tables of version 2.0 are not read.
type Info struct {
	ItalicAngle        float64 // degrees counterclockwise from vertical
	UnderlinePosition  funit.Int16
	UnderlineThickness funit.Int16
	IsFixedPitch       bool
}

// Read reads the "post" table from r.
func Read(r io.Reader) (*Info, error) {
	data := &postHeader{}
	err := binary.Read(r, binary.BigEndian, data)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = &parser.InvalidFontError{
				SubSystem: "fontmeta/post",
				Reason:    "table too short",
			}
		}
		return nil, err
	}

	info := &Info{
		ItalicAngle:        float64(data.ItalicAngle) / 65536,
		UnderlinePosition:  data.UnderlinePosition,
		UnderlineThickness: data.UnderlineThickness,
		IsFixedPitch:       data.IsFixedPitch != 0,
	}
	return info, nil
}

type postHeader struct {
	Version            uint32
	ItalicAngle        int32 // fixed-point, times 65536
	UnderlinePosition  funit.Int16
	UnderlineThickness funit.Int16
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32
}
