// Package model defines the core data structures for the fineprint analyzer.
package model

import "fmt"

// Category identifies one of the fixed risk classifications the engine
// matches clauses against. It is a closed set: adding or removing a category
// means touching this file and the engine catalog, nothing else.
type Category string

// The eight risk categories.
const (
	CategoryForcedArbitration       Category = "FORCED_ARBITRATION"
	CategoryClassActionWaiver       Category = "CLASS_ACTION_WAIVER"
	CategoryDataSharingResale       Category = "DATA_SHARING_RESALE"
	CategoryPerpetualContentLicense Category = "PERPETUAL_CONTENT_LICENSE"
	CategoryUnilateralChanges       Category = "UNILATERAL_CHANGES"
	CategoryAutoRenewal             Category = "AUTO_RENEWAL"
	CategoryDataRetention           Category = "DATA_RETENTION"
	CategoryLiabilityWaiver         Category = "LIABILITY_WAIVER"
)

// AllCategories lists every category in catalog order. The order is
// significant: it is the tie-break order used when ranking red flags.
var AllCategories = []Category{
	CategoryForcedArbitration,
	CategoryClassActionWaiver,
	CategoryDataSharingResale,
	CategoryPerpetualContentLicense,
	CategoryUnilateralChanges,
	CategoryAutoRenewal,
	CategoryDataRetention,
	CategoryLiabilityWaiver,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Dimension is the user-preference axis a category is weighted by.
type Dimension string

// Preference dimensions.
const (
	DimensionPrivacy     Dimension = "privacy"
	DimensionLegalRights Dimension = "legal_rights"
	DimensionConvenience Dimension = "convenience"
)

// CategoryInfo describes one catalog entry as surfaced to callers via the
// categories endpoint and CLI command.
type CategoryInfo struct {
	Key          Category `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Weight       float64  `json:"weight"`
	Irreversible bool     `json:"irreversible"`
}

// Validate ensures the catalog entry has valid data.
func (c *CategoryInfo) Validate() error {
	if !c.Key.Valid() {
		return fmt.Errorf("unknown category key %q", c.Key)
	}
	if c.Name == "" {
		return fmt.Errorf("category %s: name is required", c.Key)
	}
	if c.Weight <= 0 || c.Weight > 1 {
		return fmt.Errorf("category %s: weight must be in (0,1], got %.2f", c.Key, c.Weight)
	}
	return nil
}
