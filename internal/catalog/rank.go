package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultResultLimit caps result sets when the caller supplies no limit.
const DefaultResultLimit = 10

// SearchResult is the public projection of a ranked candidate. The canonical
// name itself is never exposed; callers address entities by slug.
type SearchResult struct {
	DisplayName string   `json:"pretty_name"`
	Aliases     []string `json:"aliases"`
	Slug        string   `json:"slug"`
}

// rank orders candidate canonical names by edit distance between the
// lower-cased query and each lower-cased canonical name, ascending. Equal
// distances keep catalog order, so the sort must be stable. Duplicates are
// dropped before ranking and the result is truncated to limit.
func rank(c *Catalog, query string, candidates []string, limit int) []SearchResult {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	query = strings.ToLower(query)

	type scored struct {
		name     string
		distance int
		position int
	}

	seen := make(map[string]struct{}, len(candidates))
	ranked := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		ranked = append(ranked, scored{
			name:     name,
			distance: levenshtein.ComputeDistance(strings.ToLower(name), query),
			position: c.Position(name),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].position < ranked[j].position
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	results := make([]SearchResult, 0, len(ranked))
	for _, s := range ranked {
		entity, ok := c.Get(s.name)
		if !ok {
			continue
		}
		aliases := entity.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		results = append(results, SearchResult{
			DisplayName: entity.DisplayName,
			Aliases:     aliases,
			Slug:        Slugify(entity.CanonicalName),
		})
	}
	return results
}
