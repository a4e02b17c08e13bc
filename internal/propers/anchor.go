package propers

import (
	"fmt"
	"strings"
)

// AnchorID builds the in-page anchor for a proper within the day view.
// bundleIndex is the bundle's position in the presentation order
// (lectionary, festivals, daily). The id is deterministic and distinct
// across (bundleIndex, code) pairs so smooth-scroll navigation always
// resolves to the right section.
func AnchorID(bundleIndex, code int, reg *Registry) string {
	name := strings.ReplaceAll(strings.ToLower(reg.Lookup(code).Name), " ", "_")
	return fmt.Sprintf("proper_%d_%s", bundleIndex, name)
}
