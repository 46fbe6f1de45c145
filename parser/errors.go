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

// Package parser provides the error types shared by the table readers.
package parser

import "fmt"

// InvalidFontError indicates a problem with the font file.
type InvalidFontError struct {
	SubSystem string
	Reason    string
}

func (err *InvalidFontError) Error() string {
	return fmt.Sprintf("%s: invalid font: %s", err.SubSystem, err.Reason)
}

// NotSupportedError indicates that a font file may be valid, but uses a
// feature which is not supported by this library.
type NotSupportedError struct {
	SubSystem string
	Feature   string
}

func (err *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: unsupported: %s", err.SubSystem, err.Feature)
}
