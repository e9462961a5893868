package preset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookupRoundTrip(t *testing.T) {
	for _, c := range []*Catalog{Taiwan(), StreetExperiments()} {
		t.Run(c.Name(), func(t *testing.T) {
			require.NotZero(t, c.Len())
			for _, p := range c.Presets() {
				got, ok := c.Lookup(p.Key)
				require.True(t, ok, "key %q", p.Key)
				assert.Equal(t, p, got)
			}
		})
	}
}

func TestCatalogLookupExactOnly(t *testing.T) {
	c := StreetExperiments()
	key := "路邊休憩座 (Parklet)"
	_, ok := c.Lookup(key)
	require.True(t, ok)

	for _, miss := range []string{
		"",
		"Parklet",
		"路邊休憩座 (parklet)",
		" " + key,
		key + " ",
		"add a parklet please",
	} {
		_, ok := c.Lookup(miss)
		assert.False(t, ok, "unexpected match for %q", miss)
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog("dup", []Preset{{Key: "A"}, {Key: "A"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateKey))

	_, err = NewCatalog("empty", []Preset{{Key: "  "}})
	assert.True(t, errors.Is(err, ErrEmptyKey))
}

func TestCatalogIsImmutableThroughCopies(t *testing.T) {
	c, err := NewCatalog("local", []Preset{{Key: "Parklet", Keywords: "wooden parklet"}})
	require.NoError(t, err)

	listed := c.Presets()
	listed[0].Keywords = "changed"
	got, _ := c.Lookup("Parklet")
	got.Description = "changed"

	again, _ := c.Lookup("Parklet")
	assert.Equal(t, "wooden parklet", again.Keywords)
	assert.Empty(t, again.Description)
}

func TestCompositePrecedence(t *testing.T) {
	locale, err := NewCatalog("locale", []Preset{{Key: "School", EnglishName: "School Zone Traffic Calming"}})
	require.NoError(t, err)
	generic, err := NewCatalog("generic", []Preset{
		{Key: "School", EnglishName: "School Street"},
		{Key: "Parklet", EnglishName: "Parklet Installation"},
	})
	require.NoError(t, err)

	comp := NewComposite(locale, nil, generic)

	p, src, ok := comp.Resolve("School")
	require.True(t, ok)
	assert.Equal(t, "locale", src)
	assert.Equal(t, "School Zone Traffic Calming", p.EnglishName)

	p, src, ok = comp.Resolve("Parklet")
	require.True(t, ok)
	assert.Equal(t, "generic", src)
	assert.Equal(t, "Parklet Installation", p.EnglishName)

	_, ok = comp.Lookup("Plaza")
	assert.False(t, ok)

	listings := comp.Listings()
	require.Len(t, listings, 2)
	assert.Equal(t, "locale", listings[0].Catalog)
	assert.Equal(t, "Parklet", listings[1].Key)
	assert.Equal(t, "locale+generic", comp.Name())
}

func TestDefaultCompositeCoversBothCatalogs(t *testing.T) {
	comp := Default()
	assert.Len(t, comp.Presets(), Taiwan().Len()+StreetExperiments().Len())

	for _, c := range []*Catalog{Taiwan(), StreetExperiments()} {
		for _, p := range c.Presets() {
			got, ok := comp.Lookup(p.Key)
			require.True(t, ok)
			assert.Equal(t, p, got)
		}
	}
}
