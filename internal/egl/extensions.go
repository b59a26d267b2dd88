// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Extensions returns the display's extension list.
func Extensions(d Driver, disp Display) []string {
	return strings.Fields(d.QueryString(disp, EXTENSIONS))
}

func HasExtension(exts []string, ext string) bool {
	return slices.Contains(exts, ext)
}
