package contrast_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/legible-dev/legible/internal/domain/contrast"
	"github.com/legible-dev/legible/pkg/csscolor"
)

func TestContrastProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("luminance stays within [0, 1]", prop.ForAll(
		func(r, g, b uint8) bool {
			l := contrast.Luminance(csscolor.Color{R: r, G: g, B: b, A: 1})
			return l >= 0 && l <= 1
		},
		gen.UInt8Range(0, 255), gen.UInt8Range(0, 255), gen.UInt8Range(0, 255),
	))

	properties.Property("ratio stays within [1, 21]", prop.ForAll(
		func(r1, g1, b1, r2, g2, b2 uint8) bool {
			ratio := contrast.Ratio(
				csscolor.Color{R: r1, G: g1, B: b1, A: 1},
				csscolor.Color{R: r2, G: g2, B: b2, A: 1},
			)
			return ratio >= 1 && ratio <= 21.0001
		},
		gen.UInt8Range(0, 255), gen.UInt8Range(0, 255), gen.UInt8Range(0, 255),
		gen.UInt8Range(0, 255), gen.UInt8Range(0, 255), gen.UInt8Range(0, 255),
	))

	properties.Property("ratio is symmetric", prop.ForAll(
		func(r1, g1, b1, r2, g2, b2 uint8) bool {
			a := csscolor.Color{R: r1, G: g1, B: b1, A: 1}
			b := csscolor.Color{R: r2, G: g2, B: b2, A: 1}
			return contrast.Ratio(a, b) == contrast.Ratio(b, a)
		},
		gen.UInt8Range(0, 255), gen.UInt8Range(0, 255), gen.UInt8Range(0, 255),
		gen.UInt8Range(0, 255), gen.UInt8Range(0, 255), gen.UInt8Range(0, 255),
	))

	properties.Property("a color contrasts 1:1 with itself", prop.ForAll(
		func(r, g, b uint8) bool {
			c := csscolor.Color{R: r, G: g, B: b, A: 1}
			return contrast.Ratio(c, c) == 1
		},
		gen.UInt8Range(0, 255), gen.UInt8Range(0, 255), gen.UInt8Range(0, 255),
	))

	properties.TestingRun(t)
}

func TestSuggestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// black or white always reaches 4.5:1, so an AA suggestion must exist
	// for any background
	properties.Property("an AA suggestion exists for every background", prop.ForAll(
		func(tr, tg, tb, br, bg, bb uint8) bool {
			text := csscolor.Color{R: tr, G: tg, B: tb, A: 1}
			backdrop := csscolor.Color{R: br, G: bg, B: bb, A: 1}
			suggested, ok := contrast.Suggest(text, backdrop, 4.5)
			return ok && contrast.Ratio(suggested, backdrop) >= 4.5
		},
		gen.UInt8Range(0, 255), gen.UInt8Range(0, 255), gen.UInt8Range(0, 255),
		gen.UInt8Range(0, 255), gen.UInt8Range(0, 255), gen.UInt8Range(0, 255),
	))

	properties.TestingRun(t)
}
