package mathutil

// Hash32 mixes a 32-bit input into a well distributed 32-bit output (search: hash-mix).
func Hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// Hash2 returns a stable hash for a 2D grid cell and seed (search: hash-mix).
func Hash2(seed uint32, x, z int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(z) * 0x85ebca6b
	return Hash32(h)
}

// UnitFloat maps a hash to [0,1).
func UnitFloat(h uint32) float32 {
	return float32(h>>8) / float32(1<<24)
}
