package catalog

import (
	"strings"
	"testing"
)

func TestIdentityIndex_ResolvesCanonicalAndAlias(t *testing.T) {
	c := loadTestCatalog(t)
	idx := buildIdentityIndex(c)

	for _, name := range c.Names() {
		got, ok := idx.Resolve(Slugify(name))
		if !ok || got != name {
			t.Fatalf("failed to resolve canonical slug for %q: got %q, ok=%v", name, got, ok)
		}
	}

	got, ok := idx.Resolve("nexus")
	if !ok || got != "2c-b" {
		t.Fatalf("failed to resolve alias slug: got %q, ok=%v", got, ok)
	}
}

func TestIdentityIndex_CaseInsensitiveInput(t *testing.T) {
	c := loadTestCatalog(t)
	idx := buildIdentityIndex(c)

	got, ok := idx.Resolve("DXM")
	if !ok || got != "dxm" {
		t.Fatalf("expected case-insensitive resolve, got %q, ok=%v", got, ok)
	}
}

func TestIdentityIndex_UnknownSlug(t *testing.T) {
	c := loadTestCatalog(t)
	idx := buildIdentityIndex(c)

	if _, ok := idx.Resolve("does-not-exist"); ok {
		t.Fatal("expected miss for unknown slug")
	}
}

func TestIdentityIndex_AliasDoesNotShadowCanonical(t *testing.T) {
	dataset := `{
		"alpha": {"pretty_name": "Alpha", "aliases": [], "categories": []},
		"beta": {"pretty_name": "Beta", "aliases": ["alpha"], "categories": []}
	}`
	c, err := Load(strings.NewReader(dataset))
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	idx := buildIdentityIndex(c)

	// beta's alias slugifies to "alpha", but the canonical-name entry was
	// written first and alias writes are first-write-wins.
	got, ok := idx.Resolve("alpha")
	if !ok || got != "alpha" {
		t.Fatalf("canonical slug shadowed by alias: got %q, ok=%v", got, ok)
	}
}

func TestIdentityIndex_AliasCollisionFirstWriteWins(t *testing.T) {
	dataset := `{
		"first": {"pretty_name": "First", "aliases": ["shared name"], "categories": []},
		"second": {"pretty_name": "Second", "aliases": ["Shared Name"], "categories": []}
	}`
	c, err := Load(strings.NewReader(dataset))
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	idx := buildIdentityIndex(c)

	got, ok := idx.Resolve("shared-name")
	if !ok || got != "first" {
		t.Fatalf("expected first-write-wins on alias collision: got %q, ok=%v", got, ok)
	}
}

func TestClassificationIndex_ResolveTagSlug(t *testing.T) {
	c := loadTestCatalog(t)
	idx := buildClassificationIndex(c)

	tests := []struct {
		slug      string
		wantLabel string
		wantOK    bool
	}{
		{slug: "dissociative", wantLabel: "Dissociative", wantOK: true},
		{slug: "research-chemical", wantLabel: "Research-chemical", wantOK: true},
		// Deny-listed tags stay addressable; the deny-list only hides
		// them from the public label catalog.
		{slug: "common", wantLabel: "Common", wantOK: true},
		{slug: "unknown-tag", wantOK: false},
	}

	for _, tt := range tests {
		label, ok := idx.ResolveTagSlug(tt.slug)
		if ok != tt.wantOK || label != tt.wantLabel {
			t.Fatalf("ResolveTagSlug(%q): got (%q, %v), want (%q, %v)",
				tt.slug, label, ok, tt.wantLabel, tt.wantOK)
		}
	}
}

func TestClassificationIndex_LabelLastWriteWins(t *testing.T) {
	dataset := `{
		"first": {"pretty_name": "First", "aliases": [], "categories": ["STIMULANT"]},
		"second": {"pretty_name": "Second", "aliases": [], "categories": ["stimulant"]}
	}`
	c, err := Load(strings.NewReader(dataset))
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	idx := buildClassificationIndex(c)

	label, ok := idx.ResolveTagSlug("stimulant")
	if !ok || label != "Stimulant" {
		t.Fatalf("unexpected label: got %q, ok=%v", label, ok)
	}
}

func TestClassificationIndex_MembersOf(t *testing.T) {
	c := loadTestCatalog(t)
	idx := buildClassificationIndex(c)

	members := idx.MembersOf("common")
	if len(members) != 2 {
		t.Fatalf("expected 2 members of common, got %v", members)
	}
	if _, ok := members["dxm"]; !ok {
		t.Fatal("expected dxm in common members")
	}
	if _, ok := members["caffeine"]; !ok {
		t.Fatal("expected caffeine in common members")
	}

	// Unknown tag and known-but-empty tag both come back empty.
	if got := idx.MembersOf("unknown-tag"); len(got) != 0 {
		t.Fatalf("expected no members for unknown tag, got %v", got)
	}
}
