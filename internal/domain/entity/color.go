package entity

// ResolvedColor is a computed color value exactly as reported by the host
// rendering engine, e.g. "rgb(255, 255, 255)". The detector treats it as
// opaque: the only operation it performs is an equality check against
// Transparent. Parsing happens later, in the contrast evaluation layer.
type ResolvedColor string

// Transparent is the fully transparent background value hosts report for
// elements that paint no background of their own.
const Transparent ResolvedColor = "rgba(0, 0, 0, 0)"

// IsTransparent reports whether the color is exactly the fully transparent
// value. Variant spellings ("transparent", "rgba(0,0,0,0)") do not match;
// hosts are expected to normalize before reporting.
func (c ResolvedColor) IsTransparent() bool {
	return c == Transparent
}

// String returns the raw color value.
func (c ResolvedColor) String() string {
	return string(c)
}
