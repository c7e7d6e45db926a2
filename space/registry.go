// SPDX-License-Identifier: MIT

package space

import (
	"fmt"
	"sort"
	"strings"
)

// registry lists the built-in spaces by their lower-case name.
var registry = map[string]Space{
	XYZ.Name():        XYZ,
	CIELAB.Name():     CIELAB,
	CIELUV.Name():     CIELUV,
	CIEDE00LCh.Name(): CIEDE00LCh,
	LinearSRGB.Name(): LinearSRGB,
}

// Lookup returns the built-in space with the given name (case-insensitive).
//
// Errors:
//   - ErrUnsupportedSpace for unknown names.
func Lookup(name string) (Space, error) {
	sp, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, spaceErrorf(opLookup, fmt.Errorf("%q: %w", name, ErrUnsupportedSpace))
	}

	return sp, nil
}

// Names returns the registered space names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
