package autoit

import (
	"log/slog"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// Pixel is a colour snapshot of one screen point
type Pixel struct {
	backend interfaces.PixelBackend
	log     logger.LoggerInterface
	at      Point
	colour  Colour
}

// NewPixel reads the colour at (x, y) and keeps it as the snapshot
func NewPixel(backend interfaces.PixelBackend, x, y int, log logger.LoggerInterface) (*Pixel, error) {
	p := &Pixel{backend: backend, log: orNoOp(log), at: Point{X: x, Y: y}}
	if err := p.Refresh(); err != nil {
		return nil, err
	}

	return p, nil
}

// Point returns the pixel's coordinates
func (p *Pixel) Point() Point {
	return p.at
}

// Colour returns the snapshot colour
func (p *Pixel) Colour() Colour {
	return p.colour
}

// Refresh replaces the snapshot with a fresh read
func (p *Pixel) Refresh() error {
	c, err := p.read()
	if err != nil {
		return err
	}

	p.colour = c
	return nil
}

// Changed reports whether the colour at the stored point differs from the
// snapshot. The snapshot is left as it was.
func (p *Pixel) Changed() (bool, error) {
	c, err := p.read()
	if err != nil {
		return false, err
	}

	return c != p.colour, nil
}

func (p *Pixel) read() (Colour, error) {
	p.log.Trace("PixelGetColor", slog.Int("x", p.at.X), slog.Int("y", p.at.Y))

	v, err := p.backend.PixelGetColor(p.at.X, p.at.Y)
	if err != nil {
		return 0, transportError("PixelGetColor", err)
	}

	if err := checkLastError(p.log, p.backend, "PixelGetColor"); err != nil {
		return 0, err
	}

	return Colour(v), nil
}

// SearchOptions tunes PixelArea.Search
type SearchOptions struct {
	// ShadeVariation is how far each colour channel may differ, 0-255 (default 0, exact match)
	ShadeVariation int
	// Step skips pixels between checks (default 1, every pixel)
	Step int
}

// PixelArea is a checksum snapshot of a screen rectangle
type PixelArea struct {
	backend  interfaces.PixelBackend
	log      logger.LoggerInterface
	rect     Rect
	step     int
	checksum int64
}

// NewPixelArea checksums rect and keeps it as the snapshot. A step below 1 means 1.
func NewPixelArea(backend interfaces.PixelBackend, rect Rect, step int, log logger.LoggerInterface) (*PixelArea, error) {
	if step < 1 {
		step = 1
	}

	a := &PixelArea{backend: backend, log: orNoOp(log), rect: rect, step: step}
	if err := a.Refresh(); err != nil {
		return nil, err
	}

	return a, nil
}

// Rect returns the area's rectangle
func (a *PixelArea) Rect() Rect {
	return a.rect
}

// Checksum returns the snapshot checksum
func (a *PixelArea) Checksum() int64 {
	return a.checksum
}

// Refresh replaces the snapshot with a fresh checksum
func (a *PixelArea) Refresh() error {
	sum, err := a.read()
	if err != nil {
		return err
	}

	a.checksum = sum
	return nil
}

// Changed reports whether the area's checksum differs from the snapshot
func (a *PixelArea) Changed() (bool, error) {
	sum, err := a.read()
	if err != nil {
		return false, err
	}

	return sum != a.checksum, nil
}

// Search looks for colour inside the area and returns the first match.
// A miss returns ErrNotFound.
func (a *PixelArea) Search(colour Colour, opts SearchOptions) (Point, error) {
	if opts.Step < 1 {
		opts.Step = 1
	}

	a.log.Trace("PixelSearch",
		slog.String("colour", colour.Hex()),
		slog.Int("shade", opts.ShadeVariation),
		slog.Int("step", opts.Step),
	)

	r := a.rect
	x, y, err := a.backend.PixelSearch(r.Left, r.Top, r.Right, r.Bottom, int(colour), opts.ShadeVariation, opts.Step)
	if err != nil {
		return Point{}, transportError("PixelSearch", err)
	}

	if err := checkLastError(a.log, a.backend, "PixelSearch", 1); err != nil {
		return Point{}, err
	}

	return Point{X: x, Y: y}, nil
}

func (a *PixelArea) read() (int64, error) {
	r := a.rect
	a.log.Trace("PixelChecksum",
		slog.Int("left", r.Left), slog.Int("top", r.Top),
		slog.Int("right", r.Right), slog.Int("bottom", r.Bottom),
	)

	sum, err := a.backend.PixelChecksum(r.Left, r.Top, r.Right, r.Bottom, a.step)
	if err != nil {
		return 0, transportError("PixelChecksum", err)
	}

	return sum, nil
}
