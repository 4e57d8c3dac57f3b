package contrast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legible-dev/legible/internal/domain/contrast"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/pkg/csscolor"
)

func mustParse(t *testing.T, s string) csscolor.Color {
	t.Helper()
	c, err := csscolor.Parse(s)
	require.NoError(t, err)
	return c
}

func TestRatioKnownPairs(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"black on white", "#000", "#fff", 21},
		{"white on white", "#fff", "#fff", 1},
		{"mid gray on white", "#777777", "#ffffff", 4.48},
		{"red on white", "#ff0000", "#ffffff", 4.00},
		{"aa boundary gray on white", "#767676", "#ffffff", 4.54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contrast.Ratio(mustParse(t, tt.a), mustParse(t, tt.b))
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 0.0, contrast.Luminance(mustParse(t, "#000")), 0.0001)
	assert.InDelta(t, 1.0, contrast.Luminance(mustParse(t, "#fff")), 0.0001)
	assert.InDelta(t, 0.2126, contrast.Luminance(mustParse(t, "#f00")), 0.0001)
}

func TestTextStyleLarge(t *testing.T) {
	tests := []struct {
		name  string
		style contrast.TextStyle
		want  bool
	}{
		{"24px normal", contrast.TextStyle{SizePx: 24}, true},
		{"just under 24px normal", contrast.TextStyle{SizePx: 23.9}, false},
		{"18.66px bold", contrast.TextStyle{SizePx: 18.66, Bold: true}, true},
		{"18.66px normal", contrast.TextStyle{SizePx: 18.66}, false},
		{"14px bold", contrast.TextStyle{SizePx: 14, Bold: true}, false},
		{"zero value", contrast.TextStyle{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.Large())
		})
	}
}

func TestMinimumRatio(t *testing.T) {
	assert.Equal(t, 4.5, contrast.MinimumRatio(contrast.LevelAA, false))
	assert.Equal(t, 3.0, contrast.MinimumRatio(contrast.LevelAA, true))
	assert.Equal(t, 7.0, contrast.MinimumRatio(contrast.LevelAAA, false))
	assert.Equal(t, 4.5, contrast.MinimumRatio(contrast.LevelAAA, true))
}

func TestParseLevel(t *testing.T) {
	lvl, err := contrast.ParseLevel("aa")
	require.NoError(t, err)
	assert.Equal(t, contrast.LevelAA, lvl)

	lvl, err = contrast.ParseLevel("aaa")
	require.NoError(t, err)
	assert.Equal(t, contrast.LevelAAA, lvl)

	lvl, err = contrast.ParseLevel(" AA ")
	require.NoError(t, err)
	assert.Equal(t, contrast.LevelAA, lvl)

	_, err = contrast.ParseLevel("aaaa")
	assert.Error(t, err)
}

func TestParseTransparentPolicy(t *testing.T) {
	p, err := contrast.ParseTransparentPolicy("")
	require.NoError(t, err)
	assert.False(t, p.Assume)

	p, err = contrast.ParseTransparentPolicy("skip")
	require.NoError(t, err)
	assert.False(t, p.Assume)

	p, err = contrast.ParseTransparentPolicy("assume:white")
	require.NoError(t, err)
	assert.True(t, p.Assume)
	assert.Equal(t, csscolor.Color{R: 255, G: 255, B: 255, A: 1}, p.Backdrop)

	p, err = contrast.ParseTransparentPolicy("assume:#336699")
	require.NoError(t, err)
	assert.True(t, p.Assume)
	assert.Equal(t, csscolor.Color{R: 51, G: 102, B: 153, A: 1}, p.Backdrop)

	_, err = contrast.ParseTransparentPolicy("assume:rgba(0, 0, 0, 0.5)")
	assert.Error(t, err, "assumed backdrop must be opaque")

	_, err = contrast.ParseTransparentPolicy("whatever")
	assert.Error(t, err)
}

func TestCheckerEvaluate(t *testing.T) {
	aa := contrast.Checker{Level: contrast.LevelAA}

	t.Run("pass", func(t *testing.T) {
		ev, err := aa.Evaluate(entity.DetectionResult{
			TextColor:       "rgb(0, 0, 0)",
			BackgroundColor: "rgb(255, 255, 255)",
		}, contrast.TextStyle{SizePx: 16})
		require.NoError(t, err)
		assert.Equal(t, entity.VerdictPass, ev.Verdict)
		assert.InDelta(t, 21, ev.Ratio, 0.01)
		assert.Equal(t, 4.5, ev.Required)
	})

	t.Run("fail just below threshold", func(t *testing.T) {
		ev, err := aa.Evaluate(entity.DetectionResult{
			TextColor:       "rgb(119, 119, 119)",
			BackgroundColor: "rgb(255, 255, 255)",
		}, contrast.TextStyle{SizePx: 16})
		require.NoError(t, err)
		assert.Equal(t, entity.VerdictFail, ev.Verdict)
		assert.InDelta(t, 4.48, ev.Ratio, 0.01)
	})

	t.Run("large text lowers the bar", func(t *testing.T) {
		ev, err := aa.Evaluate(entity.DetectionResult{
			TextColor:       "rgb(119, 119, 119)",
			BackgroundColor: "rgb(255, 255, 255)",
		}, contrast.TextStyle{SizePx: 24})
		require.NoError(t, err)
		assert.Equal(t, entity.VerdictPass, ev.Verdict)
		assert.Equal(t, 3.0, ev.Required)
	})

	t.Run("transparent background skipped", func(t *testing.T) {
		ev, err := aa.Evaluate(entity.DetectionResult{
			TextColor:       "rgb(0, 0, 0)",
			BackgroundColor: entity.Transparent,
		}, contrast.TextStyle{SizePx: 16})
		require.NoError(t, err)
		assert.Equal(t, entity.VerdictIndeterminate, ev.Verdict)
		assert.Zero(t, ev.Ratio)
	})

	t.Run("transparent background with assumed backdrop", func(t *testing.T) {
		checker := contrast.Checker{
			Level:  contrast.LevelAA,
			Policy: contrast.TransparentPolicy{Assume: true, Backdrop: mustParse(t, "white")},
		}
		ev, err := checker.Evaluate(entity.DetectionResult{
			TextColor:       "rgb(0, 0, 0)",
			BackgroundColor: entity.Transparent,
		}, contrast.TextStyle{SizePx: 16})
		require.NoError(t, err)
		assert.Equal(t, entity.VerdictPass, ev.Verdict)
		assert.True(t, ev.Assumed)
		assert.Equal(t, mustParse(t, "white"), ev.Background)
	})

	t.Run("semi transparent background skipped", func(t *testing.T) {
		ev, err := aa.Evaluate(entity.DetectionResult{
			TextColor:       "rgb(0, 0, 0)",
			BackgroundColor: "rgba(0, 0, 0, 0.5)",
		}, contrast.TextStyle{SizePx: 16})
		require.NoError(t, err)
		assert.Equal(t, entity.VerdictIndeterminate, ev.Verdict)
	})

	t.Run("text alpha composites onto background", func(t *testing.T) {
		ev, err := aa.Evaluate(entity.DetectionResult{
			TextColor:       "rgba(0, 0, 0, 0.5)",
			BackgroundColor: "rgb(255, 255, 255)",
		}, contrast.TextStyle{SizePx: 16})
		require.NoError(t, err)
		assert.Equal(t, entity.VerdictFail, ev.Verdict)
		assert.InDelta(t, 3.95, ev.Ratio, 0.01)
	})

	t.Run("unparseable text color", func(t *testing.T) {
		_, err := aa.Evaluate(entity.DetectionResult{
			TextColor:       "bogus",
			BackgroundColor: "rgb(255, 255, 255)",
		}, contrast.TextStyle{SizePx: 16})
		assert.Error(t, err)
	})

	t.Run("custom large text cutoff", func(t *testing.T) {
		checker := contrast.Checker{Level: contrast.LevelAA, LargeTextPx: 20}
		ev, err := checker.Evaluate(entity.DetectionResult{
			TextColor:       "rgb(119, 119, 119)",
			BackgroundColor: "rgb(255, 255, 255)",
		}, contrast.TextStyle{SizePx: 20})
		require.NoError(t, err)
		assert.Equal(t, 3.0, ev.Required)
		assert.Equal(t, entity.VerdictPass, ev.Verdict)
	})
}

func TestSuggest(t *testing.T) {
	white := mustParse(t, "white")

	t.Run("passing color returned unchanged", func(t *testing.T) {
		black := mustParse(t, "black")
		got, ok := contrast.Suggest(black, white, 4.5)
		assert.True(t, ok)
		assert.Equal(t, black, got)
	})

	t.Run("failing gray darkened until it passes", func(t *testing.T) {
		gray := mustParse(t, "#777777")
		got, ok := contrast.Suggest(gray, white, 4.5)
		require.True(t, ok)
		assert.GreaterOrEqual(t, contrast.Ratio(got, white), 4.5)
	})

	t.Run("white on white falls back to black", func(t *testing.T) {
		got, ok := contrast.Suggest(white, white, 7)
		require.True(t, ok)
		assert.GreaterOrEqual(t, contrast.Ratio(got, white), 7.0)
	})

	t.Run("impossible requirement", func(t *testing.T) {
		_, ok := contrast.Suggest(mustParse(t, "#777777"), white, 22)
		assert.False(t, ok)
	})
}
