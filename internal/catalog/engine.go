package catalog

// Engine is the fully built lookup index: catalog, identity and
// classification indexes, and the search trie, populated in a single pass
// over the catalog. Construct it completely before publishing a reference;
// it is immutable afterwards, so any number of lookups may run concurrently
// without coordination.
type Engine struct {
	catalog        *Catalog
	identity       *IdentityIndex
	classification *ClassificationIndex
	trie           *Trie
}

// NewEngine builds the engine from a loaded catalog.
func NewEngine(c *Catalog) *Engine {
	trie := NewTrie()
	for _, name := range c.Names() {
		entity, _ := c.Get(name)
		trie.Insert(name, name)
		trie.Insert(entity.DisplayName, name)
		for _, alias := range entity.Aliases {
			trie.Insert(alias, name)
		}
	}

	return &Engine{
		catalog:        c,
		identity:       buildIdentityIndex(c),
		classification: buildClassificationIndex(c),
		trie:           trie,
	}
}

// Autocomplete returns up to limit entities whose canonical name, display
// name or any alias contains query, ordered by edit-distance similarity of
// the canonical name to the query.
func (e *Engine) Autocomplete(query string, limit int) []SearchResult {
	candidates := e.trie.SearchSubstring(query)
	return rank(e.catalog, query, candidates, limit)
}

// LookupSubstance resolves a slug to a cleaned, render-safe entity record.
// A miss is an ordinary outcome, not an error: the caller surfaces it as
// not-found.
func (e *Engine) LookupSubstance(slug string) (map[string]any, bool) {
	name, ok := e.identity.Resolve(slug)
	if !ok {
		return nil, false
	}
	entity, ok := e.catalog.Get(name)
	if !ok {
		return nil, false
	}
	return CleanEntity(entity), true
}

// LookupCategory resolves a tag slug to its display label and the cleaned
// records of its member entities, keyed by canonical name. A known tag with
// zero members reports not-found exactly like an unknown tag.
func (e *Engine) LookupCategory(slug string) (string, map[string]map[string]any, bool) {
	label, ok := e.classification.ResolveTagSlug(slug)
	if !ok {
		return "", nil, false
	}

	members := e.classification.MembersOf(slug)
	if len(members) == 0 {
		return "", nil, false
	}

	cleaned := make(map[string]map[string]any, len(members))
	for name, entity := range members {
		cleaned[name] = CleanEntity(entity)
	}
	return label, cleaned, true
}

// CategoryLabels returns the sorted public classification labels.
func (e *Engine) CategoryLabels() []string {
	return e.catalog.CategoryLabels()
}

// CategoryColors returns the accent color per classification tag, used by
// the frontend for category cards and badges. Callers receive a copy; the
// engine's own tables stay immutable.
func (e *Engine) CategoryColors() map[string]string {
	colors := make(map[string]string, len(categoryColors))
	for tag, color := range categoryColors {
		colors[tag] = color
	}
	return colors
}

var categoryColors = map[string]string{
	"psychedelic":       "#FFB6C1",
	"dissociative":      "#87CEFA",
	"stimulant":         "#FFD700",
	"research-chemical": "#98FB98",
	"empathogen":        "#FF69B4",
	"habit-forming":     "#FFA07A",
	"opioid":            "#BA55D3",
	"depressant":        "#ADD8E6",
	"hallucinogen":      "#FF6347",
	"entactogen":        "#20B2AA",
	"deliant":           "#FFFFE0",
	"antidepressant":    "#FF4500",
	"sedative":          "#9370DB",
	"nootropic":         "#AFEEEE",
	"disassociative":    "#FF7F50",
	"barbiturate":       "#F08080",
	"benzodiazepine":    "#FFDEAD",
	"deliriant":         "#FFE4E1",
	"supplement":        "#98FB98",
}
