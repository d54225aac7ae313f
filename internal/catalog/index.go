package catalog

import "strings"

// IdentityIndex maps slugs to canonical entity names. Canonical-name slugs
// are authoritative: they are assigned unconditionally during the build,
// while alias slugs only fill keys that are still vacant. This keeps a later
// entity's alias from shadowing an earlier canonical-name slug.
type IdentityIndex struct {
	bySlug map[string]string
}

func buildIdentityIndex(c *Catalog) *IdentityIndex {
	idx := &IdentityIndex{bySlug: make(map[string]string, c.Len())}
	for _, name := range c.Names() {
		entity, _ := c.Get(name)
		idx.bySlug[Slugify(name)] = name
		for _, alias := range entity.Aliases {
			slug := Slugify(alias)
			if _, taken := idx.bySlug[slug]; !taken {
				idx.bySlug[slug] = name
			}
		}
	}
	return idx
}

// Resolve returns the canonical name behind a slug. The input is lower-cased
// first; stored keys are Slugify output and already lowercase.
func (idx *IdentityIndex) Resolve(slug string) (string, bool) {
	name, ok := idx.bySlug[strings.ToLower(slug)]
	return name, ok
}

// ClassificationIndex maps classification-tag slugs to their display labels
// and resolves tag membership across the catalog. Labels are last-write-wins
// across entities sharing a tag slug, since the display form of a shared tag
// is expected to be stable.
type ClassificationIndex struct {
	labels  map[string]string
	catalog *Catalog
}

func buildClassificationIndex(c *Catalog) *ClassificationIndex {
	idx := &ClassificationIndex{
		labels:  make(map[string]string),
		catalog: c,
	}
	for _, name := range c.Names() {
		entity, _ := c.Get(name)
		for _, tag := range entity.Tags {
			idx.labels[Slugify(tag)] = capitalize(tag)
		}
	}
	return idx
}

// ResolveTagSlug returns the display label for a tag slug.
func (idx *ClassificationIndex) ResolveTagSlug(slug string) (string, bool) {
	label, ok := idx.labels[strings.ToLower(slug)]
	return label, ok
}

// MembersOf returns every entity carrying at least one tag whose slug equals
// tagSlug, keyed by canonical name. An unknown slug and a known slug with no
// members both return an empty map; callers treat the two identically.
func (idx *ClassificationIndex) MembersOf(tagSlug string) map[string]*Entity {
	tagSlug = strings.ToLower(tagSlug)
	members := make(map[string]*Entity)
	for _, name := range idx.catalog.Names() {
		entity, _ := idx.catalog.Get(name)
		for _, tag := range entity.Tags {
			if Slugify(tag) == tagSlug {
				members[name] = entity
				break
			}
		}
	}
	return members
}
