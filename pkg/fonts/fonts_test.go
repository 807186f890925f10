package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	for _, family := range []string{"", "Lato", "Open Sans", "Unknown Family"} {
		assert.Equal(t, family, Format(family, Regular))
	}

	assert.Equal(t, "Lato Bold", Format("Lato", Bold))
	assert.Equal(t, "Open Sans Bold", Format("Open Sans", Bold))
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		family  string
		variant Variant
		want    bool
	}{
		{"Lato", Bold, false},
		{"Lato", Regular, true},
		{"Roboto", Bold, true},
		{"Roboto", Regular, true},
		{"Unknown", Regular, false},
		{"roboto", Regular, false},
		{"Roboto", Variant("Italic"), false},
	}

	for _, tt := range tests {
		t.Run(tt.family+"/"+string(tt.variant), func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailable(tt.family, tt.variant))
		})
	}
}

func TestTableIsValid(t *testing.T) {
	require.NoError(t, Validate(All()))
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate([]Font{{ID: "a", Variants: nil}}))
	assert.Error(t, Validate([]Font{{ID: "a", Variants: []Variant{"Light"}}}))
	assert.Error(t, Validate([]Font{
		{ID: "a", Variants: []Variant{Regular}},
		{ID: "a", Variants: []Variant{Bold}},
	}))
}

func TestAllReturnsCopy(t *testing.T) {
	fonts := All()
	fonts[0].Variants[0] = "Mutated"
	fonts[0].Family = "Mutated"

	f, ok := Lookup(fonts[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "Mutated", f.Family)
	assert.NotContains(t, f.Variants, Variant("Mutated"))
}

func TestLookup(t *testing.T) {
	f, ok := Lookup("lato")
	require.True(t, ok)
	assert.Equal(t, "Lato", f.Family)
	assert.Equal(t, []Variant{Regular}, f.Variants)

	_, ok = Lookup("comic-sans")
	assert.False(t, ok)
}

func TestVariantsReturnsCopy(t *testing.T) {
	v := Variants()
	v[0] = "Mutated"
	assert.Equal(t, []Variant{Regular, Bold}, Variants())
}
