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

import "fmt"

// Weight is the visual weight of a font, from the usWeightClass field.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2#usweightclass
type Weight uint16

// The standard weight classes.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightExtraLight:
		return "ExtraLight"
	case WeightLight:
		return "Light"
	case WeightNormal:
		return "Normal"
	case WeightMedium:
		return "Medium"
	case WeightSemiBold:
		return "SemiBold"
	case WeightBold:
		return "Bold"
	case WeightExtraBold:
		return "ExtraBold"
	case WeightBlack:
		return "Black"
	default:
		return fmt.Sprintf("Other(%d)", uint16(w))
	}
}

// Width indicates the aspect ratio of a font, from the usWidthClass field.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2#uswidthclass
type Width uint16

// The valid width values.
const (
	WidthUltraCondensed Width = 1
	WidthExtraCondensed Width = 2
	WidthCondensed      Width = 3
	WidthSemiCondensed  Width = 4
	WidthNormal         Width = 5
	WidthSemiExpanded   Width = 6
	WidthExpanded       Width = 7
	WidthExtraExpanded  Width = 8
	WidthUltraExpanded  Width = 9
)

func (w Width) String() string {
	switch w {
	case WidthUltraCondensed:
		return "UltraCondensed"
	case WidthExtraCondensed:
		return "ExtraCondensed"
	case WidthCondensed:
		return "Condensed"
	case WidthSemiCondensed:
		return "SemiCondensed"
	case WidthSemiExpanded:
		return "SemiExpanded"
	case WidthExpanded:
		return "Expanded"
	case WidthExtraExpanded:
		return "ExtraExpanded"
	case WidthUltraExpanded:
		return "UltraExpanded"
	default:
		// Values outside 1 to 9 are reserved; treat them like the default.
		return "Normal"
	}
}
