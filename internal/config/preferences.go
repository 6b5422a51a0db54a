package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/fineprint-dev/fineprint/internal/model"
)

// SetPreferenceDefaults registers the stored preference defaults with viper
// so config files and environment variables can override them.
func SetPreferenceDefaults(v *viper.Viper) {
	defaults := model.DefaultPreferences()
	v.SetDefault("preferences.privacy_weight", defaults.PrivacyWeight)
	v.SetDefault("preferences.legal_rights_weight", defaults.LegalRightsWeight)
	v.SetDefault("preferences.convenience_weight", defaults.ConvenienceWeight)
	v.SetDefault("preferences.risk_threshold", defaults.RiskThreshold)
	v.SetDefault("preferences.enable_notifications", defaults.EnableNotifications)
}

// LoadPreferences reads user preference weights from viper and validates
// them.
func LoadPreferences(v *viper.Viper) (model.UserPreferences, error) {
	prefs := model.UserPreferences{
		PrivacyWeight:       v.GetFloat64("preferences.privacy_weight"),
		LegalRightsWeight:   v.GetFloat64("preferences.legal_rights_weight"),
		ConvenienceWeight:   v.GetFloat64("preferences.convenience_weight"),
		RiskThreshold:       v.GetInt("preferences.risk_threshold"),
		EnableNotifications: v.GetBool("preferences.enable_notifications"),
	}
	if err := prefs.Validate(); err != nil {
		return model.UserPreferences{}, fmt.Errorf("invalid preferences in config: %w", err)
	}
	return prefs, nil
}
