package contrast

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/legible-dev/legible/pkg/csscolor"
)

const suggestStep = 0.025

// Suggest returns a replacement text color that meets the required ratio
// against the background, keeping the original hue and saturation where
// possible by walking HSL lightness away from the background. The boolean
// is false when even pure black or white cannot reach the ratio.
func Suggest(text, background csscolor.Color, required float64) (csscolor.Color, bool) {
	if Ratio(text, background) >= required {
		return text, true
	}

	h, s, l := text.Colorful().Hsl()
	darken := Luminance(background) > 0.5

	for i := 0; i < 40; i++ {
		if darken {
			l -= suggestStep
		} else {
			l += suggestStep
		}
		if l < 0 || l > 1 {
			break
		}
		candidate := csscolor.FromColorful(colorful.Hsl(h, s, l))
		if Ratio(candidate, background) >= required {
			return candidate, true
		}
	}

	// hue cannot be kept, fall back to whichever extreme contrasts harder
	black := csscolor.Color{A: 1}
	white := csscolor.Color{R: 255, G: 255, B: 255, A: 1}
	best := black
	if Ratio(white, background) > Ratio(black, background) {
		best = white
	}
	return best, Ratio(best, background) >= required
}
