package plots

import (
	"math"
	"testing"

	"github.com/cparo/plotcore/internal/theme"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestComputeLineRejectsMismatchedLengths(t *testing.T) {
	_, err := ComputeLine([]float64{1, 2}, []float64{1}, LineConfig{})
	if err == nil {
		t.Fatal("expected an error for mismatched series lengths")
	}
}

func TestComputeLineEmitsOnePolylineWithAllPoints(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 4}
	b, err := ComputeLine(x, y, LineConfig{Color: theme.Color{A: 255}, Width: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Polylines) != 1 || len(b.Polylines[0].Points) != 3 {
		t.Fatalf("expected one polyline with 3 points, got %+v", b.Polylines)
	}
}

func TestComputeScatterEmitsOneMarkerPerPoint(t *testing.T) {
	b, err := ComputeScatter([]float64{1, 2, 3}, []float64{4, 5, 6}, ScatterConfig{Shape: MarkerCircle, Size: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Markers) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(b.Markers))
	}
}

func TestHistogramConservesCountWithoutRangeClamp(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b, err := ComputeHistogram(data, HistogramConfig{Bins: 5, Method: BinUniform})
	if err != nil {
		t.Fatal(err)
	}
	total := 0.0
	for _, r := range b.Rects {
		total += r.H
	}
	if total != float64(len(data)) {
		t.Fatalf("expected total count %d, got %v", len(data), total)
	}
}

func TestHistogramDensityIntegratesToOne(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b, err := ComputeHistogram(data, HistogramConfig{Bins: 5, Method: BinUniform, Density: true})
	if err != nil {
		t.Fatal(err)
	}
	total := 0.0
	for _, r := range b.Rects {
		total += r.H * r.W
	}
	if !almostEqual(total, 1, 1e-10) {
		t.Fatalf("expected density to integrate to 1, got %v", total)
	}
}

func TestHistogramWithOutlierKeepsInRangeCount(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}
	rng := [2]float64{0, 10}
	b, err := ComputeHistogram(data, HistogramConfig{Bins: 5, Method: BinUniform, Range: &rng})
	if err != nil {
		t.Fatal(err)
	}
	total := 0.0
	for _, r := range b.Rects {
		total += r.H
	}
	if total != 9 {
		t.Fatalf("expected in-range count 9, got %v", total)
	}
	last := b.Rects[len(b.Rects)-1]
	if !almostEqual(last.X+last.W, 10, 1e-9) {
		t.Fatalf("expected last bin right edge 10, got %v", last.X+last.W)
	}
}

func TestHistogramRejectsEmptyData(t *testing.T) {
	_, err := ComputeHistogram(nil, HistogramConfig{Bins: 5})
	if err == nil {
		t.Fatal("expected EmptyDataSet error")
	}
}

func TestBoxPlotQuartilesOnOneToNine(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	_, stats, err := ComputeBoxPlot(data, BoxPlotConfig{Position: 0, Width: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(stats.Median, 5, 1e-9) {
		t.Fatalf("expected median 5, got %v", stats.Median)
	}
	if !almostEqual(stats.Q1, 3, 1e-9) {
		t.Fatalf("expected Q1 3, got %v", stats.Q1)
	}
	if !almostEqual(stats.Q3, 7, 1e-9) {
		t.Fatalf("expected Q3 7, got %v", stats.Q3)
	}
}

func TestBoxPlotIQROutliersOnTenPointsWithOutlier(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}
	_, stats, err := ComputeBoxPlot(data, BoxPlotConfig{
		Position: 0, Width: 1,
		OutlierMethod: OutlierIQR,
		WhiskerMethod: WhiskerTukey,
		ShowOutliers:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(stats.Q1, 3.25, 1e-9) {
		t.Fatalf("expected Q1 3.25, got %v", stats.Q1)
	}
	if !almostEqual(stats.Median, 5.5, 1e-9) {
		t.Fatalf("expected median 5.5, got %v", stats.Median)
	}
	if !almostEqual(stats.Q3, 7.75, 1e-9) {
		t.Fatalf("expected Q3 7.75, got %v", stats.Q3)
	}
	if !almostEqual(stats.IQR, 4.5, 1e-9) {
		t.Fatalf("expected IQR 4.5, got %v", stats.IQR)
	}
	foundOutlier := false
	for _, v := range stats.Outliers {
		if v == 100 {
			foundOutlier = true
		}
	}
	if !foundOutlier {
		t.Fatal("expected 100 to be classified as an outlier")
	}
	if stats.WhiskerHi >= 100 {
		t.Fatalf("expected whisker max below 100, got %v", stats.WhiskerHi)
	}
}

func TestBoxPlotOutlierNoneCollapsesToMinMax(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}
	_, stats, err := ComputeBoxPlot(data, BoxPlotConfig{Position: 0, Width: 1, OutlierMethod: OutlierNone})
	if err != nil {
		t.Fatal(err)
	}
	if stats.WhiskerHi != 100 || stats.WhiskerLo != 1 {
		t.Fatalf("expected whiskers to collapse to min/max, got [%v,%v]", stats.WhiskerLo, stats.WhiskerHi)
	}
}

func TestKDEGridCoversThreeBandwidthsBeyondExtremes(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}
	b, err := ComputeKDE(data, KDEConfig{Method: BandwidthScott, GridSize: 64})
	if err != nil {
		t.Fatal(err)
	}
	pts := b.Polylines[0].Points
	if pts[0].X >= 1 || pts[len(pts)-1].X <= 5 {
		t.Fatalf("expected grid to extend beyond data extremes, got [%v,%v]", pts[0].X, pts[len(pts)-1].X)
	}
}

func TestECDFOverNReachesOneAtMax(t *testing.T) {
	data := []float64{3, 1, 2}
	b, err := ComputeECDF(data, ECDFConfig{Method: ECDFRankOverN})
	if err != nil {
		t.Fatal(err)
	}
	last := b.Polylines[0].Points[len(b.Polylines[0].Points)-1]
	if !almostEqual(last.Y, 1, 1e-9) {
		t.Fatalf("expected final ECDF height 1, got %v", last.Y)
	}
}

func TestECDFOverNPlusOneStaysBelowOne(t *testing.T) {
	data := []float64{3, 1, 2}
	b, err := ComputeECDF(data, ECDFConfig{Method: ECDFRankOverNPlusOne})
	if err != nil {
		t.Fatal(err)
	}
	last := b.Polylines[0].Points[len(b.Polylines[0].Points)-1]
	if last.Y >= 1 {
		t.Fatalf("expected final height strictly below 1, got %v", last.Y)
	}
}

func TestComputeContourOnUniformGridProducesNoLines(t *testing.T) {
	grid := [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	b, err := ComputeContour(grid, ContourConfig{CellW: 1, CellH: 1, Levels: []float64{0.5}})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Lines) != 0 {
		t.Fatalf("expected no crossings on a flat grid, got %d", len(b.Lines))
	}
}

func TestComputeContourCrossesOnGradient(t *testing.T) {
	grid := [][]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}
	b, err := ComputeContour(grid, ContourConfig{CellW: 1, CellH: 1, Levels: []float64{0.5}})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Lines) == 0 {
		t.Fatal("expected contour crossings on a gradient grid")
	}
}

func TestComputeRegressionLinearFitRecoversSlope(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9} // y = 2x + 1
	b, err := ComputeRegression(x, y, RegressionConfig{Degree: 1})
	if err != nil {
		t.Fatal(err)
	}
	pts := b.Polylines[0].Points
	first, last := pts[0], pts[len(pts)-1]
	slope := (last.Y - first.Y) / (last.X - first.X)
	if !almostEqual(slope, 2, 1e-6) {
		t.Fatalf("expected recovered slope ~2, got %v", slope)
	}
}

func TestComputeDendrogramEmitsThreeSegmentsPerMerge(t *testing.T) {
	linkage := []LinkageRow{
		{Left: 0, Right: 1, Distance: 1, Size: 2},
		{Left: 2, Right: 3, Distance: 2, Size: 3},
	}
	b, err := ComputeDendrogram(linkage, DendrogramConfig{LeafOrder: []int{0, 1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Lines) != 3*len(linkage) {
		t.Fatalf("expected %d segments, got %d", 3*len(linkage), len(b.Lines))
	}
}

func TestComputeErrorBarsCapWidthScalesWithSpacing(t *testing.T) {
	x := []float64{0, 10, 20}
	y := []float64{1, 1, 1}
	yErr := []float64{0.5, 0.5, 0.5}
	b, err := ComputeErrorBars(x, y, yErr, nil, ErrorBarConfig{CapRatio: 0.2})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Lines) != 3*len(x) {
		t.Fatalf("expected 3 lines per point, got %d", len(b.Lines))
	}
}

func TestComputeRadarRejectsFewerThanThreeAxes(t *testing.T) {
	_, err := ComputeRadar([]float64{1, 2}, RadarConfig{})
	if err == nil {
		t.Fatal("expected an error for fewer than 3 axes")
	}
}
