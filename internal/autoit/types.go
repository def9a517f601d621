package autoit

import "fmt"

// IntDefault tells AutoIt to use the parameter's default, e.g. the current
// mouse position for coordinates.
const IntDefault = -2147483647

// Point is a screen coordinate
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a screen rectangle given by its edges
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Colour is a 0xRRGGBB value as returned by PixelGetColor
type Colour int

// RGB builds a Colour from its components
func RGB(r, g, b uint8) Colour {
	return Colour(int(r)<<16 | int(g)<<8 | int(b))
}

// Hex formats the colour as 0xRRGGBB
func (c Colour) Hex() string {
	return fmt.Sprintf("0x%06X", int(c)&0xFFFFFF)
}

// RGB splits the colour into its components
func (c Colour) RGB() (r, g, b uint8) {
	v := int(c)
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

func (c Colour) String() string {
	return c.Hex()
}
