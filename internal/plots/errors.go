package plots

import "github.com/cparo/plotcore/internal/ploterr"

// requireEqualLen fails when paired series don't share a length; every
// per-kind Compute function calls this before indexing its inputs in
// lockstep.
func requireEqualLen(a, b []float64) error {
	if len(a) != len(b) {
		return ploterr.InvalidParameter("paired series must have equal length")
	}
	return nil
}

func emptyDataSet(msg string) error {
	return ploterr.EmptyDataSet(msg)
}

func invalidParameter(msg string) error {
	return ploterr.InvalidParameter(msg)
}
