package services

// NearestNeighborOrder builds a visiting order greedily from start.
//
// At each step the closest unvisited point is appended. Ties go to the
// lowest index, which keeps the result deterministic. O(n²).
func NearestNeighborOrder(m DistanceMatrix, start int) []int {
	n := len(m)
	if n == 0 {
		return []int{}
	}

	order := make([]int, 0, n)
	visited := make([]bool, n)

	current := start
	order = append(order, current)
	visited[current] = true

	for len(order) < n {
		best := -1
		bestDist := 0.0

		// Select next stop by minimum distance (greedy step).
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if best == -1 || m[current][j] < bestDist {
				best = j
				bestDist = m[current][j]
			}
		}

		order = append(order, best)
		visited[best] = true
		current = best
	}

	return order
}
