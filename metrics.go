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
	"fmt"

	"seehuhn.de/go/postscript/funit"
)

// LineMetrics describes a decoration line, like an underline or a
// strikeout line.  Position is relative to the baseline; Thickness is the
// width of the line.  Both are in font design units.
type LineMetrics struct {
	Position  funit.Int16
	Thickness funit.Int16
}

func (m LineMetrics) String() string {
	return fmt.Sprintf("LineMetrics{Position: %d, Thickness: %d}",
		m.Position, m.Thickness)
}

// ScriptMetrics describes the recommended size and offset of subscript or
// superscript glyphs, in font design units.
type ScriptMetrics struct {
	XSize   funit.Int16
	YSize   funit.Int16
	XOffset funit.Int16
	YOffset funit.Int16
}

func (m ScriptMetrics) String() string {
	return fmt.Sprintf(
		"ScriptMetrics{XSize: %d, YSize: %d, XOffset: %d, YOffset: %d}",
		m.XSize, m.YSize, m.XOffset, m.YOffset)
}
