package engine

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/fineprint-dev/fineprint/internal/model"
)

// categoryEntry is one row of the risk catalog: the public CategoryInfo plus
// the matching and explanation material backing it.
type categoryEntry struct {
	Info        model.CategoryInfo
	Dimension   model.Dimension
	Severity    float64
	Keywords    []string
	Indicators  []string
	Explanation string
	Implication string
}

// compiledCategory pairs a catalog entry with its pre-compiled keyword
// matchers. Compilation happens once at engine construction, never per
// clause.
type compiledCategory struct {
	entry    categoryEntry
	patterns []*regexp.Regexp
}

// defaultCatalog returns the fixed eight-category catalog. Weights are
// required to sum to 1.0; New verifies this.
func defaultCatalog() []categoryEntry {
	return []categoryEntry{
		{
			Info: model.CategoryInfo{
				Key:          model.CategoryForcedArbitration,
				Name:         "Forced Arbitration",
				Description:  "Disputes must go to private arbitration instead of court.",
				Weight:       0.15,
				Irreversible: true,
			},
			Dimension: model.DimensionLegalRights,
			Severity:  0.9,
			Keywords: []string{
				"binding arbitration",
				"mandatory arbitration",
				"agree to arbitrate",
				"arbitration agreement",
				"waive right to jury trial",
				"waive your right to a jury",
				"resolved through arbitration",
				"arbitration on an individual basis",
				"american arbitration association",
			},
			Indicators:  []string{"arbitration clause", "jury trial waiver"},
			Explanation: "This service requires you to resolve disputes through private arbitration rather than in court.",
			Implication: "You give up your right to sue in court or appeal an unfavorable decision.",
		},
		{
			Info: model.CategoryInfo{
				Key:          model.CategoryClassActionWaiver,
				Name:         "Class Action Waiver",
				Description:  "You may not join other users in a collective lawsuit.",
				Weight:       0.14,
				Irreversible: true,
			},
			Dimension: model.DimensionLegalRights,
			Severity:  0.85,
			Keywords: []string{
				"class action waiver",
				"waive right to class action",
				"no class actions",
				"class or representative action",
				"only in your individual capacity",
				"collective action waiver",
				"representative proceeding",
			},
			Indicators:  []string{"class action ban", "individual claims only"},
			Explanation: "This service bars you from joining class or collective lawsuits against it.",
			Implication: "Small individual harms become impractical to litigate because you must act alone.",
		},
		{
			Info: model.CategoryInfo{
				Key:          model.CategoryDataSharingResale,
				Name:         "Data Sharing & Resale",
				Description:  "Your personal data may be shared with or sold to third parties.",
				Weight:       0.15,
				Irreversible: false,
			},
			Dimension: model.DimensionPrivacy,
			Severity:  0.8,
			Keywords: []string{
				"share your data",
				"share your personal information",
				"sell your personal information",
				"third-party advertisers",
				"third-party partners",
				"share information with third parties",
				"disclose your information",
				"marketing partners",
				"data brokers",
			},
			Indicators:  []string{"third-party sharing", "data sale"},
			Explanation: "This service may share or sell your personal information to third parties such as advertisers.",
			Implication: "Once shared, you have little control over how other companies use your data.",
		},
		{
			Info: model.CategoryInfo{
				Key:          model.CategoryPerpetualContentLicense,
				Name:         "Perpetual Content License",
				Description:  "The service keeps broad rights to content you upload, often forever.",
				Weight:       0.12,
				Irreversible: true,
			},
			Dimension: model.DimensionLegalRights,
			Severity:  0.75,
			Keywords: []string{
				"perpetual license",
				"irrevocable license",
				"royalty-free license",
				"worldwide license",
				"sublicensable",
				"transferable license",
				"license to use your content",
				"reproduce and distribute your content",
				"derivative works of your content",
			},
			Indicators:  []string{"perpetual rights", "content license grant"},
			Explanation: "This service claims a broad, often permanent license to content you create or upload.",
			Implication: "Your content can be reused, modified, or sublicensed even after you delete it or leave.",
		},
		{
			Info: model.CategoryInfo{
				Key:          model.CategoryUnilateralChanges,
				Name:         "Unilateral Changes",
				Description:  "Terms can be changed at any time without meaningful notice.",
				Weight:       0.12,
				Irreversible: false,
			},
			Dimension: model.DimensionConvenience,
			Severity:  0.7,
			Keywords: []string{
				"we may modify these terms",
				"change these terms at any time",
				"without prior notice",
				"sole discretion",
				"we reserve the right to change",
				"modify or discontinue",
				"effective immediately upon posting",
			},
			Indicators:  []string{"change without notice", "sole discretion"},
			Explanation: "This service can rewrite its terms whenever it likes, sometimes without telling you.",
			Implication: "The deal you agreed to today may quietly become a different deal tomorrow.",
		},
		{
			Info: model.CategoryInfo{
				Key:          model.CategoryAutoRenewal,
				Name:         "Automatic Renewal",
				Description:  "Subscriptions renew and bill automatically unless cancelled in time.",
				Weight:       0.10,
				Irreversible: false,
			},
			Dimension: model.DimensionConvenience,
			Severity:  0.6,
			Keywords: []string{
				"automatically renew",
				"auto-renewal",
				"renews automatically",
				"recurring billing",
				"recurring charge",
				"charged on a recurring basis",
				"cancel before the renewal date",
				"subscription will continue",
			},
			Indicators:  []string{"auto-renewal", "recurring billing"},
			Explanation: "This subscription renews and charges you automatically unless you cancel ahead of the deadline.",
			Implication: "Missing the cancellation window means paying for another full billing period.",
		},
		{
			Info: model.CategoryInfo{
				Key:          model.CategoryDataRetention,
				Name:         "Indefinite Data Retention",
				Description:  "Your data may be kept long after you stop using the service.",
				Weight:       0.11,
				Irreversible: false,
			},
			Dimension: model.DimensionPrivacy,
			Severity:  0.65,
			Keywords: []string{
				"retain your data",
				"retain your information",
				"as long as necessary",
				"even after you delete",
				"after account termination",
				"residual copies",
				"backup copies may persist",
				"retention period",
			},
			Indicators:  []string{"indefinite retention", "post-deletion copies"},
			Explanation: "This service may keep your data indefinitely, including after you delete your account.",
			Implication: "Deleting your account does not necessarily delete your data.",
		},
		{
			Info: model.CategoryInfo{
				Key:          model.CategoryLiabilityWaiver,
				Name:         "Liability Waiver",
				Description:  "The service disclaims responsibility for harm or losses.",
				Weight:       0.11,
				Irreversible: false,
			},
			Dimension: model.DimensionLegalRights,
			Severity:  0.7,
			Keywords: []string{
				"limitation of liability",
				"not liable for",
				"no liability",
				"without warranties",
				"disclaim all warranties",
				"indemnify",
				"hold harmless",
				"consequential damages",
				"to the maximum extent permitted by law",
			},
			Indicators:  []string{"liability cap", "warranty disclaimer"},
			Explanation: "This service disclaims most responsibility for damage, loss, or errors, and may require you to cover its legal costs.",
			Implication: "If something goes wrong, your options for compensation are severely limited.",
		},
	}
}

// compileCatalog validates the catalog and compiles every keyword into a
// case-insensitive matcher where hyphens and spaces are interchangeable.
func compileCatalog(entries []categoryEntry) ([]compiledCategory, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog cannot be empty")
	}

	var weightSum float64
	seen := make(map[model.Category]bool, len(entries))
	compiled := make([]compiledCategory, 0, len(entries))

	for _, entry := range entries {
		if err := entry.Info.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry: %w", err)
		}
		if seen[entry.Info.Key] {
			return nil, fmt.Errorf("duplicate catalog entry for %s", entry.Info.Key)
		}
		seen[entry.Info.Key] = true

		if entry.Severity < 0 || entry.Severity > 1 {
			return nil, fmt.Errorf("category %s: severity must be in [0,1], got %.2f", entry.Info.Key, entry.Severity)
		}
		if len(entry.Keywords) == 0 {
			return nil, fmt.Errorf("category %s: at least one keyword is required", entry.Info.Key)
		}
		weightSum += entry.Info.Weight

		patterns := make([]*regexp.Regexp, 0, len(entry.Keywords))
		for _, kw := range entry.Keywords {
			re, err := regexp.Compile(keywordPattern(kw))
			if err != nil {
				return nil, fmt.Errorf("category %s: keyword %q: %w", entry.Info.Key, kw, err)
			}
			patterns = append(patterns, re)
		}

		compiled = append(compiled, compiledCategory{entry: entry, patterns: patterns})
	}

	// The weights are documented to sum to 1.0; enforce it at construction
	// instead of tolerating silent drift.
	if math.Abs(weightSum-1.0) > 1e-9 {
		return nil, fmt.Errorf("category weights must sum to 1.0, got %.4f", weightSum)
	}

	return compiled, nil
}

// keywordPattern turns a keyword fragment into a case-insensitive regex in
// which every hyphen or space run matches either separator, so
// "third-party advertisers" also hits "third party advertisers".
func keywordPattern(keyword string) string {
	parts := regexp.MustCompile(`[\s-]+`).Split(strings.ToLower(keyword), -1)
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	return `(?i)` + strings.Join(quoted, `[ -]+`)
}
