package numeric

import "fmt"

// FindBinInclusive locates the bin containing value over ascending edges,
// treating each bin as (low, high]; the lowest edge itself is treated as
// belonging to bin 0. Returns ErrOutOfRange if value falls outside
// [edges[0], edges[len-1]].
func FindBinInclusive(edges []float64, value float64) (int, error) {
	if len(edges) < 2 {
		return 0, fmt.Errorf("FindBinInclusive: %w", ErrTooFewEdges)
	}
	if value < edges[0] || value > edges[len(edges)-1] {
		return 0, fmt.Errorf("FindBinInclusive: %w", ErrOutOfRange)
	}
	if value == edges[0] {
		return 0, nil
	}
	for i := 1; i < len(edges); i++ {
		if value <= edges[i] {
			return i - 1, nil
		}
	}
	return len(edges) - 2, nil
}

// FindBinExclusive locates the bin containing value treating each bin as
// [low, high); the highest edge itself is treated as belonging to the
// last bin. Returns ErrOutOfRange if value falls outside
// [edges[0], edges[len-1]].
func FindBinExclusive(edges []float64, value float64) (int, error) {
	if len(edges) < 2 {
		return 0, fmt.Errorf("FindBinExclusive: %w", ErrTooFewEdges)
	}
	n := len(edges)
	if value < edges[0] || value > edges[n-1] {
		return 0, fmt.Errorf("FindBinExclusive: %w", ErrOutOfRange)
	}
	if value == edges[n-1] {
		return n - 2, nil
	}
	for i := 0; i < n-1; i++ {
		if value < edges[i+1] {
			return i, nil
		}
	}
	return n - 2, nil
}

// FindBinAverage locates the bin(s) containing value within a relative
// tolerance tol of an edge, scaling the tolerance by the LOCAL bin width
// at each edge rather than the overall edge range. This matters for
// non-uniform meshes (e.g. log-spaced MCNP energy bins), where a global
// tolerance would misclassify values near interior edges. Being within
// tol of the outermost edges uses that edge's own bin width; being within
// tol of an interior edge returns both bracketing bins, otherwise just
// the bin containing value. tol must be in [0,1].
func FindBinAverage(edges []float64, value float64, tol float64) ([]int, error) {
	n := len(edges)
	if n < 2 {
		return nil, fmt.Errorf("FindBinAverage: %w", ErrTooFewEdges)
	}
	if tol < 0 || tol > 1 {
		return nil, fmt.Errorf("FindBinAverage: %w", ErrInvalidTolerance)
	}
	lowerBound, upperBound := edges[0], edges[n-1]
	if value < lowerBound || value > upperBound {
		return nil, fmt.Errorf("FindBinAverage: %w", ErrOutOfRange)
	}

	lTol := absf(edges[1]-edges[0]) * tol
	rTol := absf(edges[n-1]-edges[n-2]) * tol

	if value < lowerBound+lTol {
		return []int{0}, nil
	}
	if value > upperBound-rTol {
		return []int{n - 2}, nil
	}

	for i := 0; i < n-1; i++ {
		low, high := edges[i], edges[i+1]
		if value > high || value < low {
			continue
		}
		tolerance := absf(tol * (high - low))
		switch {
		case value <= low+tolerance:
			idx := make([]int, 0, 2)
			if i != 0 {
				idx = append(idx, i-1)
			}
			idx = append(idx, i)
			return idx, nil
		case value >= high-tolerance:
			idx := []int{i}
			if i != n-2 {
				idx = append(idx, i+1)
			}
			return idx, nil
		default:
			return []int{i}, nil
		}
	}
	// unreachable: value is within [lowerBound, upperBound] so some bin
	// above must have matched.
	return nil, fmt.Errorf("FindBinAverage: %w", ErrOutOfRange)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
