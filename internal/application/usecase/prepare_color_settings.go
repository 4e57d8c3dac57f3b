package usecase

import (
	"context"
	"fmt"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/logging"
)

// PrepareColorSettingsUseCase hands the host's palette and capability
// switches to the presentation layer. It is a pure pass-through: whatever
// the provider reports is what pickers get.
type PrepareColorSettingsUseCase struct {
	settings port.SettingsProvider
}

// NewPrepareColorSettingsUseCase creates a new settings use case.
func NewPrepareColorSettingsUseCase(settings port.SettingsProvider) *PrepareColorSettingsUseCase {
	return &PrepareColorSettingsUseCase{settings: settings}
}

// PrepareColorSettingsOutput contains the settings as provided.
type PrepareColorSettingsOutput struct {
	Settings entity.ColorSettings
}

// Execute fetches the current color settings. A missing provider yields
// empty settings rather than an error, so pickers degrade to custom-only.
func (uc *PrepareColorSettingsUseCase) Execute(ctx context.Context) (*PrepareColorSettingsOutput, error) {
	log := logging.FromContext(ctx)

	if uc.settings == nil {
		log.Warn().Msg("no settings provider wired, returning empty color settings")
		return &PrepareColorSettingsOutput{}, nil
	}

	settings, err := uc.settings.ColorSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load color settings: %w", err)
	}

	log.Debug().
		Int("colors", len(settings.Colors)).
		Int("gradients", len(settings.Gradients)).
		Bool("custom_colors", settings.CustomColors).
		Msg("color settings prepared")

	return &PrepareColorSettingsOutput{Settings: settings}, nil
}
