package plots

import "github.com/cparo/plotcore/internal/theme"

// ViolinConfig configures a mirrored-KDE violin at a categorical position.
type ViolinConfig struct {
	Position float64
	Width    float64 // max half-width of the violin body
	Bandwidth KDEConfig
	Color     theme.Color
}

// ComputeViolin evaluates a KDE on data, then mirrors the density curve
// across Position to build a closed polygon (the classic violin shape).
// The density axis is rescaled so its peak maps to Width.
func ComputeViolin(data []float64, cfg ViolinConfig) (Batch, error) {
	if cfg.Width <= 0 {
		return Batch{}, invalidParameter("violin width must be positive")
	}
	kde, err := ComputeKDE(data, cfg.Bandwidth)
	if err != nil {
		return Batch{}, err
	}
	curve := kde.Polylines[0].Points

	peak := 0.0
	for _, p := range curve {
		if p.Y > peak {
			peak = p.Y
		}
	}
	if peak <= 0 {
		return Batch{}, invalidParameter("violin density collapsed to zero")
	}
	scale := cfg.Width / peak

	poly := make([]Point, 0, 2*len(curve))
	for _, p := range curve {
		poly = append(poly, Point{X: cfg.Position + p.Y*scale, Y: p.X})
	}
	for i := len(curve) - 1; i >= 0; i-- {
		poly = append(poly, Point{X: cfg.Position - curve[i].Y*scale, Y: curve[i].X})
	}
	return Batch{Polygons: []Polygon{{Points: poly, Color: cfg.Color, Fill: true}}}, nil
}
