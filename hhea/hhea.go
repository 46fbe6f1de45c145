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

// Package hhea reads "hhea" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
package hhea

import (
	"encoding/binary"
	"io"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontmeta/parser"
)

// Info contains the line metrics from the "hhea" table.
type Info struct {
	Ascent  funit.Int16
	Descent funit.Int16 // negative
	LineGap funit.Int16
}

// Read reads the "hhea" table from r.
func Read(r io.Reader) (*Info, error) {
	data := &hheaData{}
	err := binary.Read(r, binary.BigEndian, data)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = &parser.InvalidFontError{
				SubSystem: "fontmeta/hhea",
				Reason:    "table too short",
			}
		}
		return nil, err
	}

	info := &Info{
		Ascent:  data.Ascender,
		Descent: data.Descender,
		LineGap: data.LineGap,
	}
	return info, nil
}

type hheaData struct {
	MajorVersion        uint16
	MinorVersion        uint16
	Ascender            funit.Int16
	Descender           funit.Int16
	LineGap             funit.Int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  funit.Int16
	MinRightSideBearing funit.Int16
	XMaxExtent          funit.Int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	Reserved            [4]int16
	MetricDataFormat    int16
	NumberOfHMetrics    uint16
}
