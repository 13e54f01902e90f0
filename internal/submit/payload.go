// Package submit posts a completed answer set to the intake form.
package submit

import (
	"strings"

	"github.com/skadvisory/findna/internal/answers"
	"github.com/skadvisory/findna/internal/catalog"
)

// Payload flattens the answer set into answerKey → display value for the
// questions visible under the set itself. Answers behind a gate that no
// longer passes stay stored but are excluded here. Empty and
// whitespace-only values are omitted.
func Payload(cat catalog.Catalog, set answers.Set) map[string]string {
	out := make(map[string]string)
	for _, q := range cat.Visible(set) {
		v := strings.TrimSpace(set.Display(q.Key))
		if v == "" {
			continue
		}
		out[q.Key] = v
	}
	return out
}
