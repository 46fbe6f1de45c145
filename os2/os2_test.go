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

package os2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"seehuhn.de/go/fontmeta/parser"
)

// encode builds an "OS/2" table for use in the tests.
func encode(v0 *v0Data, v0ms *v0MsData, v2 *v2Data) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, v0)
	if v0ms != nil {
		binary.Write(buf, binary.BigEndian, v0ms)
	}
	if v2 != nil {
		var codePageRange [8]byte
		buf.Write(codePageRange[:])
		binary.Write(buf, binary.BigEndian, v2)
	}
	return buf.Bytes()
}

func TestReadV4(t *testing.T) {
	data := encode(
		&v0Data{
			Version:           4,
			WeightClass:       700,
			WidthClass:        3,
			Selection:         0x0021, // italic and bold
			StrikeoutSize:     50,
			StrikeoutPosition: 258,
			SubscriptXSize:    650,
		},
		&v0MsData{
			TypoAscender:  800,
			TypoDescender: -200,
			TypoLineGap:   90,
		},
		&v2Data{
			XHeight:   500,
			CapHeight: 700,
		})

	info, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if info.WeightClass != WeightBold {
		t.Errorf("WeightClass == %d, expected bold", info.WeightClass)
	}
	if info.WidthClass != WidthCondensed {
		t.Errorf("WidthClass == %d, expected condensed", info.WidthClass)
	}
	if !info.IsBold || !info.IsItalic || info.IsRegular || info.IsOblique {
		t.Errorf("wrong style flags: %+v", info)
	}
	if info.Ascent != 800 || info.Descent != -200 || info.LineGap != 90 {
		t.Errorf("wrong line metrics: %+v", info)
	}
	if !info.HasXHeight() || info.XHeight != 500 {
		t.Errorf("wrong x-height: %+v", info)
	}
	if info.StrikeoutSize != 50 || info.StrikeoutPosition != 258 {
		t.Errorf("wrong strikeout metrics: %+v", info)
	}
	if info.SubscriptXSize != 650 {
		t.Errorf("wrong subscript metrics: %+v", info)
	}
}

func TestReadV0(t *testing.T) {
	data := encode(
		&v0Data{
			Version:   0,
			Selection: 0x0040, // regular
		},
		nil, nil)

	info, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsRegular || info.IsBold || info.IsItalic {
		t.Errorf("wrong style flags: %+v", info)
	}
	if info.HasXHeight() {
		t.Error("x-height must not be present in a version 0 table")
	}
}

func TestObliqueBit(t *testing.T) {
	// Bit 9 of fsSelection is only defined for table version 4 and above.
	for _, version := range []uint16{3, 4} {
		data := encode(&v0Data{Version: version, Selection: 0x0200},
			&v0MsData{}, &v2Data{})
		info, err := Read(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		if info.IsOblique != (version >= 4) {
			t.Errorf("version %d: IsOblique == %t", version, info.IsOblique)
		}
	}
}

func TestReadShort(t *testing.T) {
	data := encode(&v0Data{Version: 4}, &v0MsData{}, &v2Data{})
	_, err := Read(bytes.NewReader(data[:20]))
	var fontErr *parser.InvalidFontError
	if !errors.As(err, &fontErr) {
		t.Errorf("expected InvalidFontError, got %v", err)
	}
}

func TestReadBadVersion(t *testing.T) {
	data := encode(&v0Data{Version: 6}, nil, nil)
	_, err := Read(bytes.NewReader(data))
	var notSupported *parser.NotSupportedError
	if !errors.As(err, &notSupported) {
		t.Errorf("expected NotSupportedError, got %v", err)
	}
}

func TestWeightString(t *testing.T) {
	cases := []struct {
		w    Weight
		want string
	}{
		{WeightThin, "Thin"},
		{WeightNormal, "Normal"},
		{WeightBold, "Bold"},
		{WeightBlack, "Black"},
		{412, "Other(412)"},
	}
	for _, c := range cases {
		if got := c.w.String(); got != c.want {
			t.Errorf("Weight(%d).String() == %q, expected %q", c.w, got, c.want)
		}
	}
}

func TestWidthString(t *testing.T) {
	cases := []struct {
		w    Width
		want string
	}{
		{WidthUltraCondensed, "UltraCondensed"},
		{WidthNormal, "Normal"},
		{WidthUltraExpanded, "UltraExpanded"},
		{0, "Normal"},
		{12, "Normal"},
	}
	for _, c := range cases {
		if got := c.w.String(); got != c.want {
			t.Errorf("Width(%d).String() == %q, expected %q", c.w, got, c.want)
		}
	}
}

func FuzzOS2(f *testing.F) {
	f.Add(encode(&v0Data{Version: 4}, &v0MsData{}, &v2Data{}))
	f.Fuzz(func(t *testing.T, in []byte) {
		info, err := Read(bytes.NewReader(in))
		if err != nil {
			return
		}
		_ = info.WeightClass.String()
		_ = info.WidthClass.String()
	})
}
