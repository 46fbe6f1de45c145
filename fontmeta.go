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

// Package fontmeta extracts descriptive metadata from font files.
//
// The package reads TrueType and OpenType fonts as well as TrueType
// collections, and converts the information from the "name", "OS/2",
// "head", "hhea", "vhea", "post" and "fvar" tables into a form suitable
// for JSON output.  Glyph outlines are not touched.
package fontmeta

import (
	"fmt"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontmeta/header"
	"seehuhn.de/go/fontmeta/name"
)

// Collection holds the metadata for all fonts contained in a font file.
// Most files contain a single font; TrueType collections can contain
// several.
type Collection struct {
	Fonts []*Font `json:"fonts"`
}

// Font is the decoded metadata of a single font.
//
// Pointer fields are nil, and encode as JSON null, when the corresponding
// table or field is not present in the font.  The four vertical metrics are
// either all present or all absent, depending on the "vhea" table.
type Font struct {
	Names              []Name          `json:"names"`
	FamilyName         *string         `json:"family_name"`
	PostScriptName     *string         `json:"post_script_name"`
	IsRegular          bool            `json:"is_regular"`
	IsItalic           bool            `json:"is_italic"`
	IsBold             bool            `json:"is_bold"`
	IsOblique          bool            `json:"is_oblique"`
	IsVariable         bool            `json:"is_variable"`
	Weight             string          `json:"weight"`
	Width              string          `json:"width"`
	Ascender           funit.Int16     `json:"ascender"`
	Descender          funit.Int16     `json:"descender"`
	Height             funit.Int16     `json:"height"`
	LineGap            funit.Int16     `json:"line_gap"`
	VerticalAscender   *funit.Int16    `json:"vertical_ascender"`
	VerticalDescender  *funit.Int16    `json:"vertical_descender"`
	VerticalHeight     *funit.Int16    `json:"vertical_height"`
	VerticalLineGap    *funit.Int16    `json:"vertical_line_gap"`
	UnitsPerEm         *uint16         `json:"units_per_em"`
	XHeight            *funit.Int16    `json:"x_height"`
	UnderlineMetrics   *string         `json:"underline_metrics"`
	StrikeoutMetrics   *string         `json:"strikeout_metrics"`
	SubscriptMetrics   *string         `json:"subscript_metrics"`
	SuperscriptMetrics *string         `json:"superscript_metrics"`
	VariationAxes      []VariationAxis `json:"variation_axes"`
}

// Name is one entry of the font's naming table.
type Name struct {
	NameID     name.ID `json:"name_id"`
	Name       string  `json:"name"`
	PlatformID *string `json:"platform_id"`
	Language   string  `json:"language"`
	EncodingID uint16  `json:"encoding_id"`
	LanguageID uint16  `json:"language_id"`
}

// VariationAxis is one axis descriptor of a variable font.
type VariationAxis struct {
	Tag          *string `json:"tag"`
	MinValue     float32 `json:"min_value"`
	DefaultValue float32 `json:"default_value"`
	MaxValue     float32 `json:"max_value"`
	NameID       uint16  `json:"name_id"`
	Hidden       bool    `json:"hidden"`
}

// Extract decodes the metadata for all fonts contained in data.
//
// Extraction is all-or-nothing: if any font in a collection cannot be
// parsed, or if a name record which looks like UTF-16 cannot be decoded,
// an error is returned and no partial result is produced.
func Extract(data []byte) (*Collection, error) {
	numFonts := header.NumFonts(data)
	var fonts []*Font
	for i := 0; i < numFonts; i++ {
		f, err := readFont(data, i)
		if err != nil {
			return nil, fmt.Errorf("cannot parse font at index %d: %w", i, err)
		}
		fonts = append(fonts, f)
	}
	return &Collection{Fonts: fonts}, nil
}
