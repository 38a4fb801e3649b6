package bicluster

import "fmt"

// strategy is the algorithm used to build the merge sequence for a method.
type strategy int

const (
	strategyMST     strategy = iota // Prim's MST, single linkage
	strategyNNChain                 // nearest-neighbor chain, reducible methods
	strategyGeneric                 // closest-pair scan, centroid and median
)

// EuclideanOnly reports whether the method is only defined on Euclidean
// distances.
func EuclideanOnly(method LinkageMethod) bool {
	switch method {
	case MethodWard, MethodCentroid, MethodMedian:
		return true
	default:
		return false
	}
}

// selectStrategy picks the merge algorithm for a linkage method.
func selectStrategy(method LinkageMethod) (strategy, error) {
	switch method {
	case MethodSingle:
		return strategyMST, nil
	case MethodComplete, MethodAverage, MethodWeighted, MethodWard:
		return strategyNNChain, nil
	case MethodCentroid, MethodMedian:
		return strategyGeneric, nil
	default:
		return 0, fmt.Errorf("bicluster: invalid linkage method %q", method)
	}
}

// validateMethodMetric rejects method/metric pairs the linkage is not
// defined for.
func validateMethodMetric(method LinkageMethod, metric DistanceMetric) error {
	if _, err := selectStrategy(method); err != nil {
		return err
	}
	if metric == nil {
		return fmt.Errorf("bicluster: nil distance metric")
	}
	if EuclideanOnly(method) {
		switch m := metric.(type) {
		case EuclideanMetric:
		case MinkowskiMetric:
			if m.P != 2 {
				return fmt.Errorf("bicluster: method %q requires the Euclidean metric, got Minkowski P=%g", method, m.P)
			}
		default:
			return fmt.Errorf("bicluster: method %q requires the Euclidean metric, got %T", method, metric)
		}
	}
	return nil
}
