package config

import (
	"context"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/domain/entity"
)

// SettingsProvider adapts the palette section of the configuration to
// port.SettingsProvider. Entries are copied over one to one; whatever the
// config file says is what the picker gets.
type SettingsProvider struct {
	manager *Manager
}

var _ port.SettingsProvider = (*SettingsProvider)(nil)

// NewSettingsProvider creates a SettingsProvider backed by the given manager.
func NewSettingsProvider(manager *Manager) *SettingsProvider {
	return &SettingsProvider{manager: manager}
}

// ColorSettings returns the palette from the current configuration.
func (p *SettingsProvider) ColorSettings(_ context.Context) (entity.ColorSettings, error) {
	cfg := p.manager.Get()

	settings := entity.ColorSettings{
		Colors:          make([]entity.ColorOption, 0, len(cfg.Palette.Colors)),
		Gradients:       make([]entity.GradientOption, 0, len(cfg.Palette.Gradients)),
		CustomColors:    cfg.Palette.CustomColors,
		CustomGradients: cfg.Palette.CustomGradients,
	}
	for _, c := range cfg.Palette.Colors {
		settings.Colors = append(settings.Colors, entity.ColorOption{
			Name:  c.Name,
			Slug:  c.Slug,
			Color: c.Color,
		})
	}
	for _, g := range cfg.Palette.Gradients {
		settings.Gradients = append(settings.Gradients, entity.GradientOption{
			Name:     g.Name,
			Slug:     g.Slug,
			Gradient: g.Gradient,
		})
	}
	return settings, nil
}
