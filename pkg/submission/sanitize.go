package submission

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// SanitizeText strips any markup from a free-text value before it reaches
// the wire. Select values and radio answers come from fixed option lists and
// do not pass through here.
func SanitizeText(value string) string {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(strictPolicy.Sanitize(value))
}
