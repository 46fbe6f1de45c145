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

package name

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// encodeTable builds a "name" table containing the given records.
func encodeTable(records []Record) []byte {
	buf := []byte{0, 0} // version
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(records)))
	buf = binary.BigEndian.AppendUint16(buf, uint16(6+12*len(records)))

	var storage []byte
	for _, r := range records {
		buf = binary.BigEndian.AppendUint16(buf, uint16(r.PlatformID))
		buf = binary.BigEndian.AppendUint16(buf, r.EncodingID)
		buf = binary.BigEndian.AppendUint16(buf, r.LanguageID)
		buf = binary.BigEndian.AppendUint16(buf, uint16(r.NameID))
		buf = binary.BigEndian.AppendUint16(buf, uint16(len(r.Value)))
		buf = binary.BigEndian.AppendUint16(buf, uint16(len(storage)))
		storage = append(storage, r.Value...)
	}
	return append(buf, storage...)
}

func TestRead(t *testing.T) {
	records := []Record{
		{
			PlatformID: PlatformWindows,
			EncodingID: 1,
			LanguageID: 0x0409,
			NameID:     IDFamily,
			Value:      []byte{0, 'G', 0, 'o'},
		},
		{
			PlatformID: PlatformMacintosh,
			EncodingID: 0,
			LanguageID: 0,
			NameID:     IDSubfamily,
			Value:      []byte("Regular"),
		},
	}
	table, err := Read(encodeTable(records))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(records, table.Records); d != "" {
		t.Errorf("records differ (-want +got):\n%s", d)
	}
}

func TestReadInvalid(t *testing.T) {
	cases := [][]byte{
		{},
		{0, 0, 0},
		{0, 0, 0, 1, 0, 6},             // one record claimed, none present
		{0, 2, 0, 0, 0, 6},             // unsupported version
		encodeTable([]Record{{Value: []byte("x")}})[:18], // string data cut off
	}
	for i, data := range cases {
		if _, err := Read(data); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestDecodeUTF16(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte{0x00, 0x48, 0x00, 0x69}, "Hi"},
		{[]byte{0x00, 0x61, 0xD8, 0x3D, 0xDE, 0x00}, "a\U0001F600"},
		{[]byte{0x00, 0x47, 0x00, 0x6F, 0x00, 0x20, 0x00, 0x4D, 0x00, 0x6F, 0x00, 0x6E, 0x00, 0x6F}, "Go Mono"},
	}
	for _, c := range cases {
		r := &Record{Value: c.in}
		got, err := r.Decode()
		if err != nil {
			t.Errorf("Decode(% x): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Decode(% x) == %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestDecodeUTF16Invalid(t *testing.T) {
	cases := [][]byte{
		{0x00, 0x48, 0xD8, 0x00},             // high surrogate at end
		{0x00, 0x48, 0xD8, 0x00, 0x00, 0x48}, // high surrogate not followed by low
		{0x00, 0x48, 0xDC, 0x00},             // lone low surrogate
	}
	for _, in := range cases {
		r := &Record{Value: in}
		if _, err := r.Decode(); err == nil {
			t.Errorf("Decode(% x): expected error", in)
		}
	}
}

func TestDecodeUTF8(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte("Helvetica"), "Helvetica"},
		{[]byte{}, ""},
		{[]byte{'A', 0xFF, 'B'}, "A�B"},
		// even length, but no leading zero byte
		{[]byte("Hi"), "Hi"},
		{[]byte{0xC3, 0xA9}, "é"},
	}
	for _, c := range cases {
		r := &Record{Value: c.in}
		got, err := r.Decode()
		if err != nil {
			t.Errorf("Decode(% x): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Decode(% x) == %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestIDString(t *testing.T) {
	cases := []struct {
		id   ID
		want string
	}{
		{IDFamily, "Family"},
		{IDPostScriptName, "PostScriptName"},
		{IDVariationsPostScriptNamePrefix, "VariationsPostScriptNamePrefix"},
		{15, "Unrecognised(15)"}, // reserved
		{9999, "Unrecognised(9999)"},
	}
	for _, c := range cases {
		if got := c.id.String(); got != c.want {
			t.Errorf("ID(%d).String() == %q, expected %q", uint16(c.id), got, c.want)
		}
	}
}

func TestIDMarshalJSON(t *testing.T) {
	b, err := IDFamily.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"Family"` {
		t.Errorf("got %s", b)
	}

	b, err = ID(9999).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"Unrecognised(9999)"` {
		t.Errorf("got %s", b)
	}
}

func TestLanguage(t *testing.T) {
	cases := []struct {
		platform   PlatformID
		languageID uint16
		want       string
	}{
		{PlatformWindows, 0x0409, "English (United States)"},
		{PlatformWindows, 0x0809, "English (United Kingdom)"},
		{PlatformWindows, 0x0804, "Chinese (People's Republic of China)"},
		{PlatformWindows, 0x0000, "None"},
		{PlatformWindows, 0x9999, "unknown"},
		{PlatformMacintosh, 0, "unknown (todo)"},
		{PlatformMacintosh, 0x0409, "unknown (todo)"},
		{PlatformUnicode, 0, "unknown (todo)"},
		{PlatformID(7), 0x0409, "unknown (todo)"},
	}
	for _, c := range cases {
		if got := Language(c.platform, c.languageID); got != c.want {
			t.Errorf("Language(%d, 0x%04X) == %q, expected %q",
				c.platform, c.languageID, got, c.want)
		}
	}
}

func FuzzRead(f *testing.F) {
	f.Add(encodeTable([]Record{
		{PlatformID: PlatformWindows, LanguageID: 0x0409, NameID: IDFamily,
			Value: []byte{0, 'G', 0, 'o'}},
	}))
	f.Fuzz(func(t *testing.T, data []byte) {
		table, err := Read(data)
		if err != nil {
			return
		}
		for i := range table.Records {
			_, _ = table.Records[i].Decode()
		}
	})
}
