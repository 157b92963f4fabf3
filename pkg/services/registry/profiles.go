package registry

import (
	"fmt"

	"github.com/de-tools/conn-audit/pkg/models/domain"
	"gopkg.in/ini.v1"
)

type profileRegistry struct {
	cfg *ini.File
}

// NewProfileRegistry loads an ini registry file (~/.connaudit by default)
// where each section names a profile and its "config" key points at the
// connector config file.
func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &profileRegistry{cfg: cfg}, nil
}

func (pr *profileRegistry) GetProfiles() ([]domain.ConfigProfile, error) {
	var profiles []domain.ConfigProfile
	for _, section := range pr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, domain.ConfigProfile{
			Name: section.Name(),
			Path: section.Key("config").String(),
		})
	}
	return profiles, nil
}

func (pr *profileRegistry) GetProfile(name string) (domain.ConfigProfile, error) {
	if !pr.cfg.HasSection(name) {
		return domain.ConfigProfile{}, fmt.Errorf("profile %s not found", name)
	}
	section := pr.cfg.Section(name)

	path := section.Key("config").String()
	if path == "" {
		return domain.ConfigProfile{}, fmt.Errorf("profile %s has no config path", name)
	}

	return domain.ConfigProfile{Name: name, Path: path}, nil
}
