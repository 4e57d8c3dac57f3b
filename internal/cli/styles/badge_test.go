package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/legible-dev/legible/internal/cli/styles"
	"github.com/legible-dev/legible/internal/domain/entity"
)

func TestVerdictBadge(t *testing.T) {
	theme := styles.NewTheme()

	require.Contains(t, theme.VerdictBadge(entity.VerdictPass), "PASS")
	require.Contains(t, theme.VerdictBadge(entity.VerdictFail), "FAIL")
	require.Contains(t, theme.VerdictBadge(entity.VerdictIndeterminate), "INDETERMINATE")
}

func TestRatioBadge(t *testing.T) {
	theme := styles.NewTheme()

	failing := theme.RatioBadge(2.32, 4.5)
	require.Contains(t, failing, "2.32:1")
	require.Contains(t, failing, "needs 4.5:1")

	passing := theme.RatioBadge(21, 7)
	require.Contains(t, passing, "21.00:1")
	require.Contains(t, passing, "needs 7.0:1")
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		tm   time.Time
		want string
	}{
		{"just now", now.Add(-10 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"one hour", now.Add(-90 * time.Minute), "1h ago"},
		{"hours", now.Add(-10 * time.Hour), "10h ago"},
		{"days", now.Add(-49 * time.Hour), "2d ago"},
		{"weeks", now.Add(-15 * 24 * time.Hour), "2w ago"},
		{"months", now.Add(-100 * 24 * time.Hour), "3mo ago"},
		{"years", now.Add(-800 * 24 * time.Hour), "2y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, styles.RelativeTime(tt.tm))
		})
	}
}
