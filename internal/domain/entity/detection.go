package entity

// NodeID identifies a rendered node to the host. The value is opaque to the
// detector; only the host's node resolver can interpret it.
type NodeID string

// DetectionResult carries the pair of effective colors resolved for a node:
// the text color computed on the node itself and the background color found
// by walking ancestors until one paints a non-transparent background.
type DetectionResult struct {
	TextColor       ResolvedColor `json:"text_color"`
	BackgroundColor ResolvedColor `json:"background_color"`
}

// BackgroundResolved reports whether the ancestor walk found an actual
// background. False means every ancestor up to the root was fully
// transparent, which is a valid outcome, not an error.
func (r DetectionResult) BackgroundResolved() bool {
	return !r.BackgroundColor.IsTransparent()
}
