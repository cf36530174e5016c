package garden

// Leaf jitter must reproduce exactly across runs, platforms, and reimplementations,
// so the hash is pinned down here instead of delegated to any runtime builtin.

// hashRange quantizes jitter values. Coarse on purpose: 1/10000 of the jitter
// band is far below visual resolution.
const hashRange = 10000

// polyHash is the base-31 polynomial string hash over raw bytes, computed in
// uint32 with wraparound.
func polyHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}

// hashUnit maps (id, salt) to a stable value in [0, 1). The salt keeps the
// radius and rotation jitter streams independent for the same id.
func hashUnit(id, salt string) float64 {
	return float64(polyHash(id+"|"+salt)%hashRange) / hashRange
}

// jitter maps (id, salt) to a stable value in [-1, 1).
func jitter(id, salt string) float64 {
	return hashUnit(id, salt)*2 - 1
}
