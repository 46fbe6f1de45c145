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

// Package os2 reads "OS/2" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
package os2

import (
	"encoding/binary"
	"fmt"
	"io"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontmeta/parser"
)

// Info contains information from the "OS/2" table.
type Info struct {
	Version uint16

	WeightClass Weight
	WidthClass  Width

	IsBold    bool // glyphs are emboldened
	IsItalic  bool // font contains italic or oblique glyphs
	IsRegular bool // glyphs are in the standard weight/style for the font
	IsOblique bool // font contains oblique glyphs

	Ascent  funit.Int16
	Descent funit.Int16 // negative
	LineGap funit.Int16

	// XHeight is only meaningful for table version 2 and above,
	// see HasXHeight.
	XHeight funit.Int16

	SubscriptXSize     funit.Int16
	SubscriptYSize     funit.Int16
	SubscriptXOffset   funit.Int16
	SubscriptYOffset   funit.Int16
	SuperscriptXSize   funit.Int16
	SuperscriptYSize   funit.Int16
	SuperscriptXOffset funit.Int16
	SuperscriptYOffset funit.Int16
	StrikeoutSize      funit.Int16
	StrikeoutPosition  funit.Int16
}

// HasXHeight returns true if the XHeight field is present in the table.
func (info *Info) HasXHeight() bool {
	return info.Version >= 2
}

// Read reads the "OS/2" table from r.
func Read(r io.Reader) (*Info, error) {
	v0 := &v0Data{}
	err := binary.Read(r, binary.BigEndian, v0)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = &parser.InvalidFontError{
				SubSystem: "fontmeta/os2",
				Reason:    "table too short",
			}
		}
		return nil, err
	} else if v0.Version > 5 {
		return nil, &parser.NotSupportedError{
			SubSystem: "fontmeta/os2",
			Feature:   fmt.Sprintf("OS/2 table version %d", v0.Version),
		}
	}

	sel := v0.Selection
	if v0.Version <= 3 {
		// Applications should ignore bits 7 to 15 in a font that has a
		// version 0 to version 3 OS/2 table.
		sel &= 0x007F
	}

	info := &Info{
		Version: v0.Version,

		WeightClass: Weight(v0.WeightClass),
		WidthClass:  Width(v0.WidthClass),

		IsBold:    sel&0x0060 == 0x0020,
		IsItalic:  sel&0x0041 == 0x0001,
		IsRegular: sel&0x0040 != 0,
		IsOblique: sel&0x0200 != 0,

		SubscriptXSize:     v0.SubscriptXSize,
		SubscriptYSize:     v0.SubscriptYSize,
		SubscriptXOffset:   v0.SubscriptXOffset,
		SubscriptYOffset:   v0.SubscriptYOffset,
		SuperscriptXSize:   v0.SuperscriptXSize,
		SuperscriptYSize:   v0.SuperscriptYSize,
		SuperscriptXOffset: v0.SuperscriptXOffset,
		SuperscriptYOffset: v0.SuperscriptYOffset,
		StrikeoutSize:      v0.StrikeoutSize,
		StrikeoutPosition:  v0.StrikeoutPosition,
	}

	v0ms := &v0MsData{}
	err = binary.Read(r, binary.BigEndian, v0ms)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return info, nil
	} else if err != nil {
		return nil, err
	}
	info.Ascent = v0ms.TypoAscender
	info.Descent = v0ms.TypoDescender
	info.LineGap = v0ms.TypoLineGap

	if v0.Version < 2 {
		return info, nil
	}

	var codePageRange [8]byte
	err = binary.Read(r, binary.BigEndian, codePageRange[:])
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}

	v2 := &v2Data{}
	err = binary.Read(r, binary.BigEndian, v2)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	info.XHeight = v2.XHeight

	return info, nil
}

type v0Data struct {
	Version            uint16
	AvgCharWidth       funit.Int16
	WeightClass        uint16
	WidthClass         uint16
	Type               uint16
	SubscriptXSize     funit.Int16
	SubscriptYSize     funit.Int16
	SubscriptXOffset   funit.Int16
	SubscriptYOffset   funit.Int16
	SuperscriptXSize   funit.Int16
	SuperscriptYSize   funit.Int16
	SuperscriptXOffset funit.Int16
	SuperscriptYOffset funit.Int16
	StrikeoutSize      funit.Int16
	StrikeoutPosition  funit.Int16
	FamilyClass        int16
	Panose             [10]byte
	UnicodeRange       [4]uint32
	VendID             [4]byte
	Selection          uint16
	FirstCharIndex     uint16
	LastCharIndex      uint16
}

type v0MsData struct {
	TypoAscender  funit.Int16
	TypoDescender funit.Int16
	TypoLineGap   funit.Int16
	WinAscent     funit.Int16
	WinDescent    funit.Int16 // positive
}

type v2Data struct {
	XHeight     funit.Int16
	CapHeight   funit.Int16
	DefaultChar uint16
	BreakChar   uint16
	MaxContext  uint16
}
