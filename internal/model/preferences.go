package model

import "fmt"

// UserPreferences weights the three risk dimensions against each other.
// RiskThreshold and EnableNotifications are caller-level settings the engine
// does not consume directly.
type UserPreferences struct {
	PrivacyWeight       float64 `json:"privacy_weight"`
	LegalRightsWeight   float64 `json:"legal_rights_weight"`
	ConvenienceWeight   float64 `json:"convenience_weight"`
	RiskThreshold       int     `json:"risk_threshold"`
	EnableNotifications bool    `json:"enable_notifications"`
}

// DefaultPreferences returns the stored preference defaults.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		PrivacyWeight:       0.4,
		LegalRightsWeight:   0.4,
		ConvenienceWeight:   0.2,
		RiskThreshold:       50,
		EnableNotifications: true,
	}
}

// Weight returns the preference weight for the given dimension.
func (p UserPreferences) Weight(d Dimension) float64 {
	switch d {
	case DimensionPrivacy:
		return p.PrivacyWeight
	case DimensionLegalRights:
		return p.LegalRightsWeight
	case DimensionConvenience:
		return p.ConvenienceWeight
	}
	// Unmapped dimensions carry full weight.
	return 1.0
}

// Validate ensures all preference weights are in range.
func (p *UserPreferences) Validate() error {
	weights := map[string]float64{
		"privacy_weight":      p.PrivacyWeight,
		"legal_rights_weight": p.LegalRightsWeight,
		"convenience_weight":  p.ConvenienceWeight,
	}
	for name, w := range weights {
		if w < 0 || w > 1 {
			return fmt.Errorf("%s must be between 0.0 and 1.0, got %.2f", name, w)
		}
	}
	if p.RiskThreshold < 0 || p.RiskThreshold > 100 {
		return fmt.Errorf("risk_threshold must be between 0 and 100, got %d", p.RiskThreshold)
	}
	return nil
}
