package entity

// ColorOption is a named palette entry offered to the host's color pickers.
type ColorOption struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// GradientOption is a named gradient preset.
type GradientOption struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Gradient string `json:"gradient"`
}

// ColorSettings groups the palette and capability switches handed to color
// pickers. They are passed through verbatim: never filtered, reordered or
// rewritten on the way to the presentation layer.
type ColorSettings struct {
	Colors          []ColorOption    `json:"colors"`
	Gradients       []GradientOption `json:"gradients"`
	CustomColors    bool             `json:"custom_colors"`
	CustomGradients bool             `json:"custom_gradients"`
}
