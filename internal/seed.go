package internal

import (
	"context"
	"fmt"
	"mytwitter/domain"
)

type profileCreator interface {
	CreateProfile(ctx context.Context, profile *domain.Profile) error
}

// DefaultProfiles returns fresh instances on every call since profiles are
// mutated once registered.
func DefaultProfiles() []*domain.Profile {
	return []*domain.Profile{
		domain.NewIndividual("Rodrigo", "457.602.897-34"),
		domain.NewIndividual("Clara", "684.641.648-73"),
		domain.NewIndividual("Ryan", "187.179.932-82"),
		domain.NewIndividual("Arthur", "309.855.127-96"),
		domain.NewIndividual("Jolyne", "587.157.833-65"),
		domain.NewIndividual("Rakon", "486.564.425-41"),
		domain.NewIndividual("Marshal", "481.878.918-35"),
		domain.NewIndividual("Francisca", "740.515.397-12"),
		domain.NewIndividual("Nana", "656.984.171-45"),
		domain.NewIndividual("Jade", "710.361.119-58"),

		domain.NewOrganization("Xuiter_Oficial", "123.231.4444.69"),
		domain.NewOrganization("Tech_Master", "987.654.3210.12"),
		domain.NewOrganization("Mega_Stores", "456.789.1234.56"),
		domain.NewOrganization("Fast_Solutions", "321.654.9876.34"),
		domain.NewOrganization("Alpha_Systems", "159.753.4862.90"),
	}
}

// Seed registers the default profiles and stops at the first failure.
func Seed(ctx context.Context, creator profileCreator) error {
	for _, profile := range DefaultProfiles() {
		if err := creator.CreateProfile(ctx, profile); err != nil {
			return fmt.Errorf("seed %q: %w", profile.Username(), err)
		}
	}
	return nil
}
