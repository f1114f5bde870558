// ABOUTME: UserProfile represents user context, diet preferences, and macro targets
// ABOUTME: Stored as JSON in the data directory for easy loading and saving
package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// UserProfile holds persisted user context for planning and feedback
type UserProfile struct {
	Name        string    `json:"name"`
	HeightCm    float64   `json:"height_cm,omitempty"`
	WeightKg    float64   `json:"weight_kg,omitempty"`
	Goal        string    `json:"goal,omitempty"`
	DietTags    []string  `json:"diet_tags,omitempty"`
	Exclusions  []string  `json:"exclusions,omitempty"`
	MealsPerDay int       `json:"meals_per_day"`
	Targets     Macros    `json:"targets"`
	LastUpdated time.Time `json:"last_updated"`
}

// MacroTargets converts the profile into planning targets
func (up *UserProfile) MacroTargets() MacroTargets {
	return MacroTargets{
		Calories:    up.Targets.Calories,
		ProteinG:    up.Targets.ProteinG,
		CarbG:       up.Targets.CarbG,
		FatG:        up.Targets.FatG,
		DietTags:    up.DietTags,
		Exclusions:  up.Exclusions,
		MealsPerDay: up.MealsPerDay,
	}
}

// LoadUserProfile loads the profile from dataDir/user_profile.json.
// Returns nil without error when no profile exists yet.
func LoadUserProfile(dataDir string) (*UserProfile, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "user_profile.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var profile UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Save writes the profile to dataDir/user_profile.json
func (up *UserProfile) Save(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	up.LastUpdated = time.Now()

	data, err := json.MarshalIndent(up, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dataDir, "user_profile.json"), data, 0644)
}
