package catalog

import (
	"strings"

	"github.com/roycode360/theglamstore-sub001/models"
)

// BuildMatchSet turns a resolved category (and its descendants) into the
// deduplicated pattern list used against the product category text. Both the
// slug and the display name of every resolved record are candidates because
// the stored text may carry either spelling; the raw token is always included
// so an unresolved filter still matches literally.
func BuildMatchSet(token string, matched *models.Category, descendants []models.Category) []Pattern {
	values := []string{token}
	if matched != nil {
		values = append(values, matched.Slug, matched.Name)
		for _, d := range descendants {
			values = append(values, d.Slug, d.Name)
		}
	}

	seen := make(map[string]struct{}, len(values)*2)
	patterns := make([]Pattern, 0, len(values)*2)
	add := func(p Pattern, ok bool) {
		if !ok {
			return
		}
		if _, dup := seen[p.Key()]; dup {
			return
		}
		seen[p.Key()] = struct{}{}
		patterns = append(patterns, p)
	}

	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		p, ok := Strict(v)
		add(p, ok)
		p, ok = Segment(v)
		add(p, ok)
	}
	return patterns
}
