package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fineprint-dev/fineprint/internal/model"
)

func TestLoadPreferencesDefaults(t *testing.T) {
	v := viper.New()
	SetPreferenceDefaults(v)

	prefs, err := LoadPreferences(v)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPreferences(), prefs)
}

func TestLoadPreferencesOverrides(t *testing.T) {
	v := viper.New()
	SetPreferenceDefaults(v)
	v.Set("preferences.privacy_weight", 0.7)
	v.Set("preferences.risk_threshold", 65)
	v.Set("preferences.enable_notifications", false)

	prefs, err := LoadPreferences(v)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, prefs.PrivacyWeight, 1e-9)
	assert.Equal(t, 65, prefs.RiskThreshold)
	assert.False(t, prefs.EnableNotifications)

	// Untouched keys keep their defaults.
	assert.InDelta(t, 0.4, prefs.LegalRightsWeight, 1e-9)
}

func TestLoadPreferencesRejectsInvalid(t *testing.T) {
	v := viper.New()
	SetPreferenceDefaults(v)
	v.Set("preferences.privacy_weight", 3.0)

	_, err := LoadPreferences(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preferences")
}
