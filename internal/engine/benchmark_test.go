package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIndustry(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "social media host", url: "https://www.facebook.com/legal/terms", want: "social_media"},
		{name: "ecommerce host", url: "https://amazon.co.uk/gp/help/customer", want: "ecommerce"},
		{name: "financial host", url: "https://www.paypal.com/us/legalhub", want: "financial"},
		{name: "bank substring", url: "https://securebank.example.com/terms", want: "financial"},
		{name: "unknown host defaults to technology", url: "https://example.org/terms", want: "technology"},
		{name: "empty url defaults to technology", url: "", want: "technology"},
		{name: "schemeless input still classifies", url: "tiktok.com/legal", want: "social_media"},
		{name: "malformed url degrades to technology", url: "http://%zz^bad", want: "technology"},
		{name: "fragment in path does not classify", url: "https://example.com/facebook-review", want: "technology"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analyzer.classifyIndustry(tt.url).Key)
		})
	}
}

func TestCompareBenchmark(t *testing.T) {
	analyzer, err := New()
	require.NoError(t, err)

	t.Run("riskier than average", func(t *testing.T) {
		b := analyzer.compareBenchmark("https://shop.amazon.com/terms", 75)
		assert.Equal(t, "ecommerce", b.Industry)
		assert.InDelta(t, 58.0, b.AverageScore, 1e-9)
		// (75-58)/58 rounds to 29%.
		assert.Equal(t, 29, b.Percentage)
		assert.Equal(t, "29% riskier than the E-Commerce average", b.Comparison)
	})

	t.Run("safer than average", func(t *testing.T) {
		b := analyzer.compareBenchmark("https://twitter.com/tos", 36)
		assert.Equal(t, "social_media", b.Industry)
		// (36-72)/72 = -50%.
		assert.Equal(t, -50, b.Percentage)
		assert.Equal(t, "50% safer than the Social Media average", b.Comparison)
	})

	t.Run("on par with average", func(t *testing.T) {
		b := analyzer.compareBenchmark("", 55)
		assert.Equal(t, "technology", b.Industry)
		assert.Equal(t, 0, b.Percentage)
		assert.Equal(t, "on par with the Technology average", b.Comparison)
	})
}

func TestDefaultBenchmarksShape(t *testing.T) {
	buckets := defaultBenchmarks()
	require.Len(t, buckets, 4)

	// The last bucket is the default and must not carry fragments, or the
	// fallback would become reachable only for empty hostnames.
	assert.Equal(t, "technology", buckets[len(buckets)-1].Key)
	assert.Empty(t, buckets[len(buckets)-1].Fragments)
}
