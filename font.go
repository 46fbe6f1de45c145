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

package fontmeta

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/fontmeta/fvar"
	"seehuhn.de/go/fontmeta/head"
	"seehuhn.de/go/fontmeta/header"
	"seehuhn.de/go/fontmeta/hhea"
	"seehuhn.de/go/fontmeta/name"
	"seehuhn.de/go/fontmeta/os2"
	"seehuhn.de/go/fontmeta/parser"
	"seehuhn.de/go/fontmeta/post"
	"seehuhn.de/go/fontmeta/vhea"
)

func readFont(data []byte, index int) (*Font, error) {
	dir, err := header.Read(data, index)
	if err != nil {
		return nil, err
	}

	f := &Font{
		Names:         []Name{},
		VariationAxes: []VariationAxis{},
	}

	// naming table
	var records []name.Record
	var decoded []string
	if b, ok := dir.TableBytes(data, "name"); ok {
		nameTable, err := name.Read(b)
		if err != nil {
			return nil, err
		}
		records = nameTable.Records
		decoded = make([]string, len(records))
		for i := range records {
			r := &records[i]
			s, err := r.Decode()
			if err != nil {
				return nil, err
			}
			decoded[i] = s
			entry := Name{
				NameID:     r.NameID,
				Name:       s,
				Language:   name.Language(r.PlatformID, r.LanguageID),
				EncodingID: r.EncodingID,
				LanguageID: r.LanguageID,
			}
			if r.PlatformID.Known() {
				label := r.PlatformID.String()
				entry.PlatformID = &label
			}
			f.Names = append(f.Names, entry)
		}
	}
	f.FamilyName = findName(records, decoded, name.IDFamily)
	f.PostScriptName = findName(records, decoded, name.IDPostScriptName)

	// style flags and categorical classes
	var os2Info *os2.Info
	if b, ok := dir.TableBytes(data, "OS/2"); ok {
		os2Info, err = os2.Read(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
	}
	weight := os2.WeightNormal
	width := os2.WidthNormal
	if os2Info != nil {
		weight = os2Info.WeightClass
		width = os2Info.WidthClass
		f.IsRegular = os2Info.IsRegular
		f.IsItalic = os2Info.IsItalic
		f.IsBold = os2Info.IsBold
		f.IsOblique = os2Info.IsOblique
		if os2Info.HasXHeight() {
			xHeight := os2Info.XHeight
			f.XHeight = &xHeight
		}
		f.StrikeoutMetrics = textPtr(LineMetrics{
			Position:  os2Info.StrikeoutPosition,
			Thickness: os2Info.StrikeoutSize,
		})
		f.SubscriptMetrics = textPtr(ScriptMetrics{
			XSize:   os2Info.SubscriptXSize,
			YSize:   os2Info.SubscriptYSize,
			XOffset: os2Info.SubscriptXOffset,
			YOffset: os2Info.SubscriptYOffset,
		})
		f.SuperscriptMetrics = textPtr(ScriptMetrics{
			XSize:   os2Info.SuperscriptXSize,
			YSize:   os2Info.SuperscriptYSize,
			XOffset: os2Info.SuperscriptXOffset,
			YOffset: os2Info.SuperscriptYOffset,
		})
	}
	f.Weight = weight.String()
	f.Width = width.String()

	// horizontal metrics
	b, ok := dir.TableBytes(data, "hhea")
	if !ok {
		return nil, &parser.InvalidFontError{
			SubSystem: "fontmeta",
			Reason:    `missing "hhea" table`,
		}
	}
	hheaInfo, err := hhea.Read(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	f.Ascender = hheaInfo.Ascent
	f.Descender = hheaInfo.Descent
	f.Height = hheaInfo.Ascent - hheaInfo.Descent
	f.LineGap = hheaInfo.LineGap

	// vertical metrics, either all four or none
	if b, ok := dir.TableBytes(data, "vhea"); ok {
		vheaInfo, err := vhea.Read(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		ascender := vheaInfo.Ascent
		descender := vheaInfo.Descent
		height := ascender - descender
		lineGap := vheaInfo.LineGap
		f.VerticalAscender = &ascender
		f.VerticalDescender = &descender
		f.VerticalHeight = &height
		f.VerticalLineGap = &lineGap
	}

	if b, ok := dir.TableBytes(data, "head"); ok {
		headInfo, err := head.Read(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		if headInfo.HasUnitsPerEm() {
			unitsPerEm := headInfo.UnitsPerEm
			f.UnitsPerEm = &unitsPerEm
		}
	}

	if b, ok := dir.TableBytes(data, "post"); ok {
		postInfo, err := post.Read(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		f.UnderlineMetrics = textPtr(LineMetrics{
			Position:  postInfo.UnderlinePosition,
			Thickness: postInfo.UnderlineThickness,
		})
	}

	// variation axes, in declaration order
	if b, ok := dir.TableBytes(data, "fvar"); ok {
		axes, err := fvar.Axes(b)
		if err != nil {
			return nil, err
		}
		f.IsVariable = len(axes) > 0
		for _, ax := range axes {
			out := VariationAxis{
				MinValue:     ax.Min,
				DefaultValue: ax.Default,
				MaxValue:     ax.Max,
				NameID:       ax.NameID,
				Hidden:       ax.Hidden,
			}
			if ax.Tag != "" {
				tag := ax.Tag
				out.Tag = &tag
			}
			f.VariationAxes = append(f.VariationAxes, out)
		}
	}

	return f, nil
}

// findName returns the decoded text of the first suitable record with the
// given name ID.  Windows platform records in American English are
// preferred, to get stable results for fonts with multilingual name tables.
func findName(records []name.Record, decoded []string, id name.ID) *string {
	best := -1
	for i := range records {
		r := &records[i]
		if r.NameID != id {
			continue
		}
		if r.PlatformID == name.PlatformWindows && r.LanguageID == 0x0409 {
			best = i
			break
		}
		if best < 0 {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	s := decoded[best]
	return &s
}

func textPtr(v fmt.Stringer) *string {
	s := v.String()
	return &s
}
