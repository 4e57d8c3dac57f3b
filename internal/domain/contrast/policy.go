package contrast

import (
	"fmt"
	"strings"

	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/pkg/csscolor"
)

// TransparentPolicy decides what happens when the ancestor walk ended on a
// transparent background: either the evaluation is skipped, or an assumed
// backdrop is composited underneath.
type TransparentPolicy struct {
	Assume   bool
	Backdrop csscolor.Color
}

// ParseTransparentPolicy parses the config form: "skip" (the default) or
// "assume:<color>" where <color> is any opaque CSS color.
func ParseTransparentPolicy(s string) (TransparentPolicy, error) {
	v := strings.TrimSpace(strings.ToLower(s))
	if v == "" || v == "skip" {
		return TransparentPolicy{}, nil
	}

	rest, ok := strings.CutPrefix(v, "assume:")
	if !ok {
		return TransparentPolicy{}, fmt.Errorf("contrast: invalid transparent policy %q (want skip or assume:<color>)", s)
	}

	backdrop, err := csscolor.Parse(rest)
	if err != nil {
		return TransparentPolicy{}, fmt.Errorf("contrast: invalid assumed backdrop: %w", err)
	}
	if !backdrop.Opaque() {
		return TransparentPolicy{}, fmt.Errorf("contrast: assumed backdrop %q must be opaque", rest)
	}

	return TransparentPolicy{Assume: true, Backdrop: backdrop}, nil
}

// Evaluation is the measured outcome for one detection result.
type Evaluation struct {
	Text       csscolor.Color
	Background csscolor.Color
	Ratio      float64
	Required   float64
	Verdict    entity.Verdict
	Assumed    bool
}

// Checker evaluates detection results against a conformance level.
// LargeTextPx and LargeTextBoldPx override the WCAG large-text cutoffs
// when positive; zero keeps the defaults.
type Checker struct {
	Level           Level
	Policy          TransparentPolicy
	LargeTextPx     float64
	LargeTextBoldPx float64
}

func (c Checker) isLarge(t TextStyle) bool {
	cutoff, boldCutoff := c.LargeTextPx, c.LargeTextBoldPx
	if cutoff <= 0 {
		cutoff = largeTextPx
	}
	if boldCutoff <= 0 {
		boldCutoff = largeTextBoldPx
	}
	if t.SizePx >= cutoff {
		return true
	}
	return t.Bold && t.SizePx >= boldCutoff
}

// Evaluate measures the contrast of a detection result. A background that
// stayed transparent, or kept partial alpha, yields an indeterminate verdict
// unless the policy assumes a backdrop to composite onto. Colors the host
// reported in a form that cannot be parsed are returned as errors.
func (c Checker) Evaluate(det entity.DetectionResult, text TextStyle) (Evaluation, error) {
	ev := Evaluation{Required: MinimumRatio(c.Level, c.isLarge(text))}

	txt, err := csscolor.Parse(det.TextColor.String())
	if err != nil {
		return Evaluation{}, fmt.Errorf("text color: %w", err)
	}
	ev.Text = txt

	bg, err := csscolor.Parse(det.BackgroundColor.String())
	if err != nil {
		return Evaluation{}, fmt.Errorf("background color: %w", err)
	}

	if !bg.Opaque() {
		if !c.Policy.Assume {
			ev.Background = bg
			ev.Verdict = entity.VerdictIndeterminate
			return ev, nil
		}
		bg = bg.Over(c.Policy.Backdrop)
		ev.Assumed = true
	}

	// text with partial alpha renders composited onto the background
	if !txt.Opaque() {
		txt = txt.Over(bg)
		ev.Text = txt
	}

	ev.Background = bg
	ev.Ratio = Ratio(txt, bg)
	if ev.Ratio >= ev.Required {
		ev.Verdict = entity.VerdictPass
	} else {
		ev.Verdict = entity.VerdictFail
	}
	return ev, nil
}
