package model

const defaultHistorySize = 5

// History stores recent universe fingerprints for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps at most size fingerprints; size <= 0 uses the default of 5
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Update adds the current state of u to history and maintains size
func (h *History) Update(u *Universe) {
	h.hashes = append(h.hashes, u.GetGridHash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether u matches one of the last three recorded states,
// i.e. it is a still life or an oscillator of period 2 or 3
func (h *History) IsStagnant(u *Universe) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := u.GetGridHash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
