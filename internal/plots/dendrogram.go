package plots

import "github.com/cparo/plotcore/internal/theme"

// DendrogramOrientation selects which side the leaves sit on, and hence
// which axis carries merge height.
type DendrogramOrientation int

const (
	OrientTop DendrogramOrientation = iota
	OrientBottom
	OrientLeft
	OrientRight
)

// LinkageRow is one merge in a hierarchical-clustering linkage matrix:
// Left and Right reference earlier clusters by index (leaves are
// indices [0, n), merges are indices [n, 2n-1)), Distance is the merge
// height, and Size is the resulting cluster's leaf count.
type LinkageRow struct {
	Left, Right int
	Distance    float64
	Size        int
}

// DendrogramConfig configures rendering of a linkage matrix.
type DendrogramConfig struct {
	LeafOrder   []int // leaf index -> x-slot position, e.g. from a prior leaf-ordering step
	Orientation DendrogramOrientation
	Color       theme.Color
}

// ComputeDendrogram walks a linkage matrix bottom-up, assigning each
// cluster an x-position (the midpoint of its two children) and a
// join-height (its merge distance), then emits three line segments per
// merge: two verticals from each child up to the merge height, and one
// horizontal connecting them, oriented per Orientation.
func ComputeDendrogram(linkage []LinkageRow, cfg DendrogramConfig) (Batch, error) {
	if len(linkage) == 0 {
		return Batch{}, emptyDataSet("dendrogram has no merges")
	}
	nLeaves := len(linkage) + 1
	if len(cfg.LeafOrder) != nLeaves {
		return Batch{}, invalidParameter("dendrogram leaf order must have n leaves entries")
	}

	x := make([]float64, nLeaves+len(linkage))
	y := make([]float64, nLeaves+len(linkage))
	for leaf, slot := range cfg.LeafOrder {
		x[leaf] = float64(slot)
		y[leaf] = 0
	}

	var lines []Line
	for i, row := range linkage {
		clusterIdx := nLeaves + i
		if row.Left < 0 || row.Left >= clusterIdx || row.Right < 0 || row.Right >= clusterIdx {
			return Batch{}, invalidParameter("dendrogram linkage must reference only earlier clusters")
		}
		cx := (x[row.Left] + x[row.Right]) / 2
		x[clusterIdx] = cx
		y[clusterIdx] = row.Distance

		lines = append(lines,
			orientedLine(x[row.Left], y[row.Left], x[row.Left], row.Distance, cfg.Orientation, cfg.Color),
			orientedLine(x[row.Right], y[row.Right], x[row.Right], row.Distance, cfg.Orientation, cfg.Color),
			orientedLine(x[row.Left], row.Distance, x[row.Right], row.Distance, cfg.Orientation, cfg.Color),
		)
	}
	return Batch{Lines: lines}, nil
}

// orientedLine maps a segment defined in the canonical top-orientation
// (x horizontal, height growing upward) into the coordinate system
// implied by orientation.
func orientedLine(x1, y1, x2, y2 float64, orientation DendrogramOrientation, col theme.Color) Line {
	switch orientation {
	case OrientBottom:
		return Line{X1: x1, Y1: -y1, X2: x2, Y2: -y2, Color: col, Width: 1}
	case OrientLeft:
		return Line{X1: y1, Y1: x1, X2: y2, Y2: x2, Color: col, Width: 1}
	case OrientRight:
		return Line{X1: -y1, Y1: x1, X2: -y2, Y2: x2, Color: col, Width: 1}
	default: // OrientTop
		return Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: col, Width: 1}
	}
}
