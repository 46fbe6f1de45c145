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

// Package name reads "name" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"

	"seehuhn.de/go/fontmeta/parser"
)

// Table is a decoded "name" table.
type Table struct {
	Records []Record
}

// Record is a single entry of the "name" table.
// Value is the raw string data; use Decode to turn it into text.
type Record struct {
	PlatformID PlatformID
	EncodingID uint16
	LanguageID uint16
	NameID     ID
	Value      []byte
}

// Read reads the "name" table from data.
// The Value fields of the returned records are sub-slices of data.
func Read(data []byte) (*Table, error) {
	if len(data) < 6 {
		return nil, invalidName("table too short")
	}
	version := binary.BigEndian.Uint16(data)
	if version > 1 {
		return nil, &parser.NotSupportedError{
			SubSystem: "fontmeta/name",
			Feature:   "name table version > 1",
		}
	}
	count := int(binary.BigEndian.Uint16(data[2:]))
	storageOffset := int(binary.BigEndian.Uint16(data[4:]))
	if 6+12*count > len(data) {
		return nil, invalidName("truncated name records")
	}

	table := &Table{
		Records: make([]Record, 0, count),
	}
	for i := 0; i < count; i++ {
		rec := data[6+12*i:]
		length := int(binary.BigEndian.Uint16(rec[8:]))
		offset := int(binary.BigEndian.Uint16(rec[10:]))
		start := storageOffset + offset
		if start+length > len(data) {
			return nil, invalidName("string data out of range")
		}
		table.Records = append(table.Records, Record{
			PlatformID: PlatformID(binary.BigEndian.Uint16(rec)),
			EncodingID: binary.BigEndian.Uint16(rec[2:]),
			LanguageID: binary.BigEndian.Uint16(rec[4:]),
			NameID:     ID(binary.BigEndian.Uint16(rec[6:])),
			Value:      data[start : start+length],
		})
	}
	return table, nil
}

// Decode converts the raw string data of a name record into text.
//
// If the data has even length and starts with a zero byte, it is decoded as
// big-endian UTF-16; malformed surrogate sequences are an error in this
// case.  All other data is decoded as UTF-8, with invalid byte sequences
// replaced by U+FFFD.
//
// This heuristic matches the common case of Unicode and Windows platform
// records, whose text normally starts with a character in the ASCII range.
// It deliberately does not dispatch on the platform and encoding IDs.
func (r *Record) Decode() (string, error) {
	b := r.Value
	if len(b) > 0 && len(b)%2 == 0 && b[0] == 0 {
		return decodeUTF16(b)
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}

func decodeUTF16(b []byte) (string, error) {
	var runes []rune
	for i := 0; i < len(b); i += 2 {
		c := binary.BigEndian.Uint16(b[i:])
		switch {
		case c < 0xD800 || c >= 0xE000:
			runes = append(runes, rune(c))
		case c < 0xDC00: // high surrogate
			if i+4 > len(b) {
				return "", invalidName("unpaired surrogate in name record")
			}
			c2 := binary.BigEndian.Uint16(b[i+2:])
			if c2 < 0xDC00 || c2 >= 0xE000 {
				return "", invalidName("unpaired surrogate in name record")
			}
			runes = append(runes, utf16.DecodeRune(rune(c), rune(c2)))
			i += 2
		default: // low surrogate without preceding high surrogate
			return "", invalidName("unpaired surrogate in name record")
		}
	}
	return string(runes), nil
}

func invalidName(reason string) error {
	return &parser.InvalidFontError{
		SubSystem: "fontmeta/name",
		Reason:    reason,
	}
}
