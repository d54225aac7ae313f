package catalog

import (
	"strings"
	"testing"
)

func loadTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(loadTestCatalog(t))
}

func TestEngine_Autocomplete(t *testing.T) {
	engine := loadTestEngine(t)

	tests := []struct {
		name      string
		query     string
		wantFirst string
		wantCount int
	}{
		{
			name:      "canonical name substring",
			query:     "dxm",
			wantFirst: "DXM",
			wantCount: 1,
		},
		{
			name:      "alias substring",
			query:     "coffee",
			wantFirst: "Caffeine",
			wantCount: 1,
		},
		{
			name:      "display name substring",
			query:     "caffe",
			wantFirst: "Caffeine",
			wantCount: 1,
		},
		{
			name:      "no matches",
			query:     "xyzzy",
			wantCount: 0,
		},
		{
			name:      "empty query",
			query:     "",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := engine.Autocomplete(tt.query, 10)
			if len(results) != tt.wantCount {
				t.Fatalf("unexpected result count for %q: got %d, want %d", tt.query, len(results), tt.wantCount)
			}
			if tt.wantCount > 0 && results[0].DisplayName != tt.wantFirst {
				t.Fatalf("unexpected first result for %q: got %q, want %q", tt.query, results[0].DisplayName, tt.wantFirst)
			}
		})
	}
}

func TestEngine_AutocompleteRespectsLimit(t *testing.T) {
	engine := loadTestEngine(t)

	// "e" hits caffeine, dextromethorphan (alias of dxm) and nexus (alias
	// of 2c-b).
	all := engine.Autocomplete("e", 10)
	if len(all) < 2 {
		t.Fatalf("expected multiple matches, got %d", len(all))
	}
	limited := engine.Autocomplete("e", 1)
	if len(limited) != 1 {
		t.Fatalf("expected 1 result, got %d", len(limited))
	}
}

func TestEngine_LookupSubstance(t *testing.T) {
	engine := loadTestEngine(t)

	substance, found := engine.LookupSubstance("dxm")
	if !found {
		t.Fatal("expected dxm to resolve")
	}
	if substance["pretty_name"] != "DXM" {
		t.Fatalf("unexpected record: %v", substance)
	}
	props := substance["properties"].(map[string]any)
	if _, present := props["dose"]; present {
		t.Fatal("expected lookup to return cleaned record")
	}

	// Alias slug resolves to the same entity.
	viaAlias, found := engine.LookupSubstance("robo")
	if !found || viaAlias["pretty_name"] != "DXM" {
		t.Fatalf("expected alias lookup to resolve dxm, got %v, found=%v", viaAlias, found)
	}

	if _, found := engine.LookupSubstance("does-not-exist"); found {
		t.Fatal("expected miss for unknown slug")
	}
}

func TestEngine_LookupCategory(t *testing.T) {
	engine := loadTestEngine(t)

	label, substances, found := engine.LookupCategory("dissociative")
	if !found {
		t.Fatal("expected dissociative category")
	}
	if label != "Dissociative" {
		t.Fatalf("unexpected label: %q", label)
	}
	if len(substances) != 1 {
		t.Fatalf("unexpected members: %v", substances)
	}
	if substances["dxm"]["pretty_name"] != "DXM" {
		t.Fatalf("unexpected member record: %v", substances["dxm"])
	}

	if _, _, found := engine.LookupCategory("unknown-tag"); found {
		t.Fatal("expected miss for unknown category")
	}
}

func TestEngine_LookupCategoryHiddenTagStillFilters(t *testing.T) {
	engine := loadTestEngine(t)

	// "common" is excluded from the public label catalog but remains a
	// valid membership predicate.
	label, substances, found := engine.LookupCategory("common")
	if !found || label != "Common" {
		t.Fatalf("expected common category to resolve, got %q, found=%v", label, found)
	}
	if len(substances) != 2 {
		t.Fatalf("expected 2 members, got %v", substances)
	}
}

func TestEngine_LookupCategoryZeroMembersIsNotFound(t *testing.T) {
	// A tag can be known to the label index while having no members left;
	// both that case and an unknown tag surface identically.
	dataset := `{
		"only": {"pretty_name": "Only", "aliases": [], "categories": ["solo"]}
	}`
	c, err := Load(strings.NewReader(dataset))
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	engine := NewEngine(c)

	if _, _, found := engine.LookupCategory("other"); found {
		t.Fatal("expected miss for unknown tag")
	}
	if _, _, found := engine.LookupCategory("solo"); !found {
		t.Fatal("expected solo tag to resolve with members")
	}
}

func TestEngine_CategoryColors(t *testing.T) {
	engine := loadTestEngine(t)

	colors := engine.CategoryColors()
	if colors["psychedelic"] != "#FFB6C1" {
		t.Fatalf("unexpected color map: %v", colors)
	}

	// Mutating the returned map must not leak into the engine.
	colors["psychedelic"] = "#000000"
	if engine.CategoryColors()["psychedelic"] != "#FFB6C1" {
		t.Fatal("CategoryColors returned a shared reference")
	}
}
