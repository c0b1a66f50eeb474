package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchStyle(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Shoes", "shoes"},
		{"Health & Beauty", "health-beauty"},
		{"Women's Shoes", "women-s-shoes"},
		{"Décor", "decor"},
		{"Café & Bar", "cafe-bar"},
		{"  TV / Audio  ", "tv-audio"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SearchStyle(tt.raw), "raw: %q", tt.raw)
	}
}

func TestGenericStyle(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Shoes", "shoes"},
		{"Health & Beauty", "health-beauty"},
		{"Women's Shoes", "womens-shoes"},
		{"Décor", "dcor"},
		{"baby_and_toddler", "baby-and-toddler"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenericStyle(tt.raw), "raw: %q", tt.raw)
	}
}

// The two styles disagree on accents and apostrophes. That divergence is the
// reason matching tries both.
func TestStylesDiverge(t *testing.T) {
	assert.NotEqual(t, SearchStyle("Décor"), GenericStyle("Décor"))
	assert.NotEqual(t, SearchStyle("Women's Shoes"), GenericStyle("Women's Shoes"))
}

func TestCandidates(t *testing.T) {
	// Both styles agree: one candidate.
	assert.Equal(t, []string{"shoes"}, Candidates("Shoes"))
	assert.Equal(t, []string{"health-beauty"}, Candidates("Health & Beauty"))

	// Styles disagree: both candidates, search-style first.
	assert.Equal(t, []string{"decor", "dcor"}, Candidates("Décor"))

	// Nothing usable: no candidates.
	assert.Empty(t, Candidates("###"))
}
