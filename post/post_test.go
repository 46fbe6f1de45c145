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

package post

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"seehuhn.de/go/fontmeta/parser"
)

func TestRead(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, &postHeader{
		Version:            0x00030000,
		ItalicAngle:        -12 << 16,
		UnderlinePosition:  -75,
		UnderlineThickness: 50,
		IsFixedPitch:       1,
	})

	info, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if info.ItalicAngle != -12 {
		t.Errorf("ItalicAngle == %g", info.ItalicAngle)
	}
	if info.UnderlinePosition != -75 || info.UnderlineThickness != 50 {
		t.Errorf("wrong underline metrics: %+v", info)
	}
	if !info.IsFixedPitch {
		t.Error("IsFixedPitch not set")
	}
}

func TestFractionalAngle(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, &postHeader{
		Version:     0x00020000,
		ItalicAngle: -(12<<16 + 1<<15), // -12.5 degrees
	})

	info, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if info.ItalicAngle != -12.5 {
		t.Errorf("ItalicAngle == %g, expected -12.5", info.ItalicAngle)
	}
}

func TestReadShort(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, &postHeader{Version: 0x00030000})
	for _, n := range []int{0, 11, 31} {
		_, err := Read(bytes.NewReader(buf.Bytes()[:n]))
		var fontErr *parser.InvalidFontError
		if !errors.As(err, &fontErr) {
			t.Errorf("%d bytes: expected InvalidFontError, got %v", n, err)
		}
	}
}
