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

// Package vhea reads "vhea" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/vhea
package vhea

import (
	"encoding/binary"
	"io"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontmeta/parser"
)

// Info contains the line metrics from the "vhea" table.
type Info struct {
	Ascent  funit.Int16
	Descent funit.Int16
	LineGap funit.Int16
}

// Read reads the "vhea" table from r.
func Read(r io.Reader) (*Info, error) {
	data := &vheaData{}
	err := binary.Read(r, binary.BigEndian, data)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = &parser.InvalidFontError{
				SubSystem: "fontmeta/vhea",
				Reason:    "table too short",
			}
		}
		return nil, err
	}

	info := &Info{
		Ascent:  data.VertTypoAscender,
		Descent: data.VertTypoDescender,
		LineGap: data.VertTypoLineGap,
	}
	return info, nil
}

type vheaData struct {
	Version              uint32
	VertTypoAscender     funit.Int16
	VertTypoDescender    funit.Int16
	VertTypoLineGap      funit.Int16
	AdvanceHeightMax     uint16
	MinTopSideBearing    funit.Int16
	MinBottomSideBearing funit.Int16
	YMaxExtent           funit.Int16
	CaretSlopeRise       int16
	CaretSlopeRun        int16
	CaretOffset          int16
	Reserved             [4]int16
	MetricDataFormat     int16
	NumOfLongVerMetrics  uint16
}
