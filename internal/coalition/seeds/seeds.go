package seeds

import (
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/coalition"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
	"gorm.io/gorm"
)

type profileSeed struct {
	Name                string             `yaml:"name"`
	Description         string             `yaml:"description"`
	DefenseApproach     coalition.Approach `yaml:"defense_approach"`
	EntitlementApproach coalition.Approach `yaml:"entitlement_approach"`
	TaxApproach         coalition.Approach `yaml:"tax_approach"`
	Priorities          []string           `yaml:"priorities"`
	SortOrder           int                `yaml:"sort_order"`
}

// SeedProfiles loads the coalition profile fixtures. Existing profiles
// (matched by name) are left alone so re-running the seeder never resets
// member counts.
func SeedProfiles() error {
	file, err := os.ReadFile("internal/coalition/data/profiles.yaml")
	if err != nil {
		return fmt.Errorf("could not read profiles.yaml: %w", err)
	}

	var seeds []profileSeed
	if err := yaml.Unmarshal(file, &seeds); err != nil {
		return fmt.Errorf("failed to parse profiles.yaml: %w", err)
	}

	seen := map[[3]coalition.Approach]string{}
	for _, seed := range seeds {
		triple := [3]coalition.Approach{seed.DefenseApproach, seed.EntitlementApproach, seed.TaxApproach}
		if other, dup := seen[triple]; dup {
			log.Printf("⚠️ Profiles %q and %q share a stance triple; first in sort order wins matches", other, seed.Name)
		}
		seen[triple] = seed.Name

		var existing coalition.Profile
		err := db.DB.First(&existing, "name = ?", seed.Name).Error
		if err == nil {
			log.Printf("⚠️ Profile exists, skipping: %s", seed.Name)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("DB error on profile %s: %w", seed.Name, err)
		}

		profile := coalition.Profile{
			ID:                  uuid.New(),
			Name:                seed.Name,
			Description:         seed.Description,
			DefenseApproach:     seed.DefenseApproach,
			EntitlementApproach: seed.EntitlementApproach,
			TaxApproach:         seed.TaxApproach,
			Priorities:          pq.StringArray(seed.Priorities),
			SortOrder:           seed.SortOrder,
		}
		if err := db.DB.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to create profile %s: %w", seed.Name, err)
		}
		log.Printf("✅ Seeded profile: %s", seed.Name)
	}

	return nil
}
