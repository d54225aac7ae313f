package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
)

// Entity is one catalog record. CanonicalName is the stable join key; every
// other field is read-only after load. Attributes retains the full raw
// dataset record, including arbitrarily nested optional fields.
type Entity struct {
	CanonicalName string
	DisplayName   string
	Aliases       []string
	Tags          []string
	Attributes    map[string]any
}

// Catalog is the authoritative in-memory entity table. It preserves dataset
// document order because the indexes and the ranking tie-break depend on a
// fixed stable iteration order.
type Catalog struct {
	entities  map[string]*Entity
	order     []string
	positions map[string]int
}

// Load decodes a dataset object mapping canonical names to entity records.
// Key order is taken from the document itself rather than from a Go map.
func Load(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("dataset must be a JSON object, got %v", tok)
	}

	c := &Catalog{
		entities:  make(map[string]*Entity),
		positions: make(map[string]int),
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset key: %w", err)
		}
		name := tok.(string)

		var attrs map[string]any
		if err := dec.Decode(&attrs); err != nil {
			return nil, fmt.Errorf("failed to decode entity %q: %w", name, err)
		}

		entity := &Entity{
			CanonicalName: name,
			DisplayName:   stringField(attrs, "pretty_name", "Unknown"),
			Aliases:       stringListField(attrs, "aliases"),
			Tags:          stringListField(attrs, "categories"),
			Attributes:    attrs,
		}
		if _, exists := c.entities[name]; !exists {
			c.positions[name] = len(c.order)
			c.order = append(c.order, name)
		}
		c.entities[name] = entity
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	return c, nil
}

// LoadFile loads the dataset from disk. Errors here are startup-fatal for
// the caller; the engine is never built from a partial catalog.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Get returns the entity for a canonical name.
func (c *Catalog) Get(name string) (*Entity, bool) {
	e, ok := c.entities[name]
	return e, ok
}

// Names returns canonical names in dataset order.
func (c *Catalog) Names() []string {
	return c.order
}

// Len returns the number of entities.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Position returns the dataset ordinal of a canonical name, or -1.
func (c *Catalog) Position(name string) int {
	if i, ok := c.positions[name]; ok {
		return i
	}
	return -1
}

func stringField(attrs map[string]any, key, fallback string) string {
	if v, ok := attrs[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func stringListField(attrs map[string]any, key string) []string {
	raw, ok := attrs[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// maxCleanDepth bounds the null-stripping recursion so adversarially nested
// records cannot exhaust the stack. Subtrees past the bound are returned
// unchanged.
const maxCleanDepth = 64

// Clean recursively removes map keys and list elements whose value is null,
// preserving the order of surviving elements. The catalog keeps the original
// records, so repeated cleaning always starts from the source of truth.
func Clean(v any) any {
	return cleanDepth(v, 0)
}

func cleanDepth(v any, depth int) any {
	if depth >= maxCleanDepth {
		return v
	}
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = cleanDepth(val, depth+1)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			if val == nil {
				continue
			}
			out = append(out, cleanDepth(val, depth+1))
		}
		return out
	default:
		return v
	}
}

// CleanEntity returns a render-safe copy of an entity's attributes.
func CleanEntity(e *Entity) map[string]any {
	cleaned, _ := Clean(e.Attributes).(map[string]any)
	return cleaned
}

// hiddenTags are administrative tags excluded from the public category
// catalog. They remain valid membership predicates when filtering entities.
var hiddenTags = map[string]struct{}{
	"inactive":      {},
	"tentative":     {},
	"habit-forming": {},
	"common":        {},
	"ssri":          {},
}

// CategoryLabels returns the sorted display labels of every public
// classification tag in the catalog.
func (c *Catalog) CategoryLabels() []string {
	seen := make(map[string]struct{})
	for _, name := range c.order {
		for _, tag := range c.entities[name].Tags {
			if _, hidden := hiddenTags[strings.ToLower(tag)]; hidden {
				continue
			}
			seen[capitalize(tag)] = struct{}{}
		}
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// capitalize upper-cases the first rune and lower-cases the rest, matching
// how the dataset's tag labels are displayed.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
