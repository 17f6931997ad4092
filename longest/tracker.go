package longest

// bestTracker holds the longest path confirmed so far in one search call.
// It is written only at backtrack points, once per strict improvement.
type bestTracker struct {
	path []int
	sink LogSink
}

func newBestTracker(n int, sink LogSink) bestTracker {
	return bestTracker{path: make([]int, 0, n), sink: sink}
}

// length returns the vertex count of the best path, 0 before any result.
func (t *bestTracker) length() int { return len(t.path) }

// record copies p over the incumbent and notifies the sink.
// The buffer has capacity N, so the copy never allocates.
func (t *bestTracker) record(p []int) {
	t.path = append(t.path[:0], p...)
	if t.sink != nil {
		t.sink.Found(t.path)
	}
}

// snapshot returns an independent copy that may escape the search call.
func (t *bestTracker) snapshot() []int {
	return append(make([]int, 0, len(t.path)), t.path...)
}
