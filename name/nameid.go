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
	"encoding/json"
	"fmt"
)

// ID identifies the meaning of a name record.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#name-ids
type ID uint16

// The predefined name IDs.
const (
	IDCopyrightNotice                ID = 0
	IDFamily                         ID = 1
	IDSubfamily                      ID = 2
	IDUniqueID                       ID = 3
	IDFullName                       ID = 4
	IDVersion                        ID = 5
	IDPostScriptName                 ID = 6
	IDTrademark                      ID = 7
	IDManufacturer                   ID = 8
	IDDesigner                       ID = 9
	IDDescription                    ID = 10
	IDVendorURL                      ID = 11
	IDDesignerURL                    ID = 12
	IDLicense                        ID = 13
	IDLicenseURL                     ID = 14
	IDTypographicFamily              ID = 16
	IDTypographicSubfamily           ID = 17
	IDCompatibleFull                 ID = 18
	IDSampleText                     ID = 19
	IDPostScriptCID                  ID = 20
	IDWWSFamily                      ID = 21
	IDWWSSubfamily                   ID = 22
	IDLightBackgroundPalette         ID = 23
	IDDarkBackgroundPalette          ID = 24
	IDVariationsPostScriptNamePrefix ID = 25
)

func (id ID) String() string {
	switch id {
	case IDCopyrightNotice:
		return "CopyrightNotice"
	case IDFamily:
		return "Family"
	case IDSubfamily:
		return "Subfamily"
	case IDUniqueID:
		return "UniqueID"
	case IDFullName:
		return "FullName"
	case IDVersion:
		return "Version"
	case IDPostScriptName:
		return "PostScriptName"
	case IDTrademark:
		return "Trademark"
	case IDManufacturer:
		return "Manufacturer"
	case IDDesigner:
		return "Designer"
	case IDDescription:
		return "Description"
	case IDVendorURL:
		return "VendorURL"
	case IDDesignerURL:
		return "DesignerURL"
	case IDLicense:
		return "License"
	case IDLicenseURL:
		return "LicenseURL"
	case IDTypographicFamily:
		return "TypographicFamily"
	case IDTypographicSubfamily:
		return "TypographicSubfamily"
	case IDCompatibleFull:
		return "CompatibleFull"
	case IDSampleText:
		return "SampleText"
	case IDPostScriptCID:
		return "PostScriptCID"
	case IDWWSFamily:
		return "WWSFamily"
	case IDWWSSubfamily:
		return "WWSSubfamily"
	case IDLightBackgroundPalette:
		return "LightBackgroundPalette"
	case IDDarkBackgroundPalette:
		return "DarkBackgroundPalette"
	case IDVariationsPostScriptNamePrefix:
		return "VariationsPostScriptNamePrefix"
	default:
		return fmt.Sprintf("Unrecognised(%d)", uint16(id))
	}
}

// MarshalJSON encodes the ID as its textual label.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// PlatformID identifies the platform a name record is meant for.
type PlatformID uint16

// The predefined platform IDs.
const (
	PlatformUnicode   PlatformID = 0
	PlatformMacintosh PlatformID = 1
	PlatformIso       PlatformID = 2
	PlatformWindows   PlatformID = 3
	PlatformCustom    PlatformID = 4
)

// Known returns true if the platform ID is one of the predefined values.
func (p PlatformID) Known() bool {
	return p <= PlatformCustom
}

func (p PlatformID) String() string {
	switch p {
	case PlatformUnicode:
		return "Unicode"
	case PlatformMacintosh:
		return "Macintosh"
	case PlatformIso:
		return "Iso"
	case PlatformWindows:
		return "Windows"
	case PlatformCustom:
		return "Custom"
	default:
		return fmt.Sprintf("PlatformID(%d)", uint16(p))
	}
}
