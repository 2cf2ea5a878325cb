package services

// twoOptEpsilon is the minimum gain in km for a reversal to count.
// Smaller gains are floating-point noise and would make passes oscillate.
const twoOptEpsilon = 1e-6

// TwoOpt improves an open path in place by segment reversal and returns it.
//
// For every pair of edges (order[i-1],order[i]) and (order[k],order[k+1])
// with 1 <= i < k <= n-2 the segment order[i..k] is reversed when that
// shortens the path by more than twoOptEpsilon. Passes repeat until none
// improves, which yields a local optimum. The first and last stops keep
// their positions and no closing edge is considered.
//
// Worst case is O(n³) per convergence; intended for day-sized inputs of
// tens of points, not for large n.
func TwoOpt(order []int, m DistanceMatrix) []int {
	n := len(order)

	improved := true
	for improved {
		improved = false
		for i := 1; i < n-2; i++ {
			for k := i + 1; k < n-1; k++ {
				a, b := order[i-1], order[i]
				c, d := order[k], order[k+1]

				delta := (m[a][c] + m[b][d]) - (m[a][b] + m[c][d])
				if delta < -twoOptEpsilon {
					reverse(order[i : k+1])
					improved = true
				}
			}
		}
	}

	return order
}

func reverse(s []int) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
