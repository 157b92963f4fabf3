package registry

import (
	"github.com/de-tools/conn-audit/pkg/models/domain"
)

// ProfileRegistry resolves named profiles from the user's registry file to
// connector config file locations.
type ProfileRegistry interface {
	GetProfiles() ([]domain.ConfigProfile, error)
	GetProfile(name string) (domain.ConfigProfile, error)
}
