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

// Package fontgen assembles small font files for use in unit tests.
//
// The generated files have valid table directories but zero checksums;
// the readers in this module do not verify checksums.
package fontgen

import (
	"encoding/binary"
	"sort"

	"golang.org/x/exp/maps"
)

// Single builds a font file with the given scaler type and tables.
func Single(scalerType uint32, tables map[string][]byte) []byte {
	buf := make([]byte, 0, fontSize(tables))
	return appendFont(buf, scalerType, tables)
}

// Collection builds a TrueType collection file containing the given fonts,
// in order.
func Collection(scalerType uint32, fonts ...map[string][]byte) []byte {
	headerSize := 12 + 4*len(fonts)

	total := headerSize
	offsets := make([]uint32, len(fonts))
	for i, tables := range fonts {
		offsets[i] = uint32(total)
		total += fontSize(tables)
	}

	buf := make([]byte, 0, total)
	buf = append(buf, "ttcf"...)
	buf = binary.BigEndian.AppendUint32(buf, 0x00010000)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(fonts)))
	for _, offset := range offsets {
		buf = binary.BigEndian.AppendUint32(buf, offset)
	}
	for _, tables := range fonts {
		buf = appendFont(buf, scalerType, tables)
	}
	return buf
}

func fontSize(tables map[string][]byte) int {
	size := 12 + 16*len(tables)
	for _, data := range tables {
		size += pad4(len(data))
	}
	return size
}

func appendFont(buf []byte, scalerType uint32, tables map[string][]byte) []byte {
	names := maps.Keys(tables)
	sort.Strings(names)

	buf = binary.BigEndian.AppendUint32(buf, scalerType)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(names)))
	buf = append(buf, 0, 0, 0, 0, 0, 0) // search fields, unused by the readers

	offset := len(buf) + 16*len(names)
	for _, name := range names {
		buf = append(buf, name...)
		buf = binary.BigEndian.AppendUint32(buf, 0) // checksum
		buf = binary.BigEndian.AppendUint32(buf, uint32(offset))
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(tables[name])))
		offset += pad4(len(tables[name]))
	}
	for _, name := range names {
		buf = append(buf, tables[name]...)
		for len(buf)%4 != 0 {
			buf = append(buf, 0)
		}
	}
	return buf
}

func pad4(n int) int {
	return (n + 3) &^ 3
}
