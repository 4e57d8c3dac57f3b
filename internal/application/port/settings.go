package port

import (
	"context"

	"github.com/legible-dev/legible/internal/domain/entity"
)

// SettingsProvider supplies the palette and capability switches the host
// offers its color pickers.
type SettingsProvider interface {
	// ColorSettings returns the current settings. Implementations must
	// hand them over verbatim; filtering or reordering the palette is the
	// picker's business, not the provider's.
	ColorSettings(ctx context.Context) (entity.ColorSettings, error)
}
