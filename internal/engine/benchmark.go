package engine

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/fineprint-dev/fineprint/internal/model"
)

// benchmarkBucket is one industry peer group with a known average score and
// the hostname fragments that classify a page into it.
type benchmarkBucket struct {
	Key          string
	Name         string
	AverageScore float64
	Fragments    []string
	Examples     []string
}

// defaultBenchmarks returns the four fixed industry buckets. Technology is
// the default bucket when no fragment matches or no URL is supplied.
func defaultBenchmarks() []benchmarkBucket {
	return []benchmarkBucket{
		{
			Key:          "social_media",
			Name:         "Social Media",
			AverageScore: 72,
			Fragments:    []string{"facebook", "instagram", "twitter", "tiktok", "snapchat", "reddit", "linkedin", "pinterest"},
			Examples:     []string{"Facebook", "Instagram", "TikTok"},
		},
		{
			Key:          "ecommerce",
			Name:         "E-Commerce",
			AverageScore: 58,
			Fragments:    []string{"amazon", "ebay", "etsy", "shopify", "walmart", "aliexpress", "target"},
			Examples:     []string{"Amazon", "eBay", "Etsy"},
		},
		{
			Key:          "financial",
			Name:         "Financial Services",
			AverageScore: 64,
			Fragments:    []string{"paypal", "stripe", "chase", "bank", "visa", "mastercard", "coinbase", "fidelity"},
			Examples:     []string{"PayPal", "Chase", "Coinbase"},
		},
		{
			Key:          "technology",
			Name:         "Technology",
			AverageScore: 55,
			Fragments:    nil, // default bucket
			Examples:     []string{"Google", "Microsoft", "GitHub"},
		},
	}
}

// classifyIndustry maps a page URL onto a bucket by case-insensitive
// substring match on the hostname. A missing, relative, or malformed URL
// degrades to the technology bucket instead of erroring.
func (a *Analyzer) classifyIndustry(rawURL string) benchmarkBucket {
	fallback := a.benchmarks[len(a.benchmarks)-1]

	if strings.TrimSpace(rawURL) == "" {
		return fallback
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		// Relative or schemeless input; treat the raw string as a best-effort
		// hostname rather than failing the analysis.
		host = strings.ToLower(rawURL)
	}

	for _, bucket := range a.benchmarks {
		for _, frag := range bucket.Fragments {
			if strings.Contains(host, frag) {
				return bucket
			}
		}
	}
	return fallback
}

// compareBenchmark classifies the URL and compares the score against the
// bucket average. Positive percentages mean riskier than the peer group.
func (a *Analyzer) compareBenchmark(rawURL string, score float64) *model.Benchmark {
	bucket := a.classifyIndustry(rawURL)

	percentage := int(math.Round((score - bucket.AverageScore) / bucket.AverageScore * 100))

	comparison := fmt.Sprintf("%d%% riskier than the %s average", percentage, bucket.Name)
	switch {
	case percentage < 0:
		comparison = fmt.Sprintf("%d%% safer than the %s average", -percentage, bucket.Name)
	case percentage == 0:
		comparison = fmt.Sprintf("on par with the %s average", bucket.Name)
	}

	return &model.Benchmark{
		Industry:     bucket.Key,
		IndustryName: bucket.Name,
		AverageScore: bucket.AverageScore,
		Score:        score,
		Percentage:   percentage,
		Comparison:   comparison,
	}
}
