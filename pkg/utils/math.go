package utils

const (
	bitSize       = 32 << (^uint(0) >> 63)
	maxIntHeadBit = 1 << (bitSize - 2)

	// minGrowCapacity is the first capacity handed out to an unallocated buffer.
	minGrowCapacity = 8
)

// IsPowerOfTwo reports whether the given n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CeilToPowerOfTwo returns n if it is a power-of-two, otherwise the next-highest power-of-two.
func CeilToPowerOfTwo(n int) int {
	if n&maxIntHeadBit != 0 && n > maxIntHeadBit {
		panic("argument is too large")
	}

	if n <= 2 {
		return 2
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++

	return n
}

// GrowCapacity returns the power-of-two capacity a buffer of oldCap should grow
// to so that it holds at least minCap elements.
// Small buffers start at minGrowCapacity, existing ones double until they fit.
func GrowCapacity(oldCap, minCap int) int {
	if oldCap <= 0 {
		return CeilToPowerOfTwo(max(minCap, minGrowCapacity))
	}

	newCap := oldCap * 2
	if newCap < minCap {
		return CeilToPowerOfTwo(minCap)
	}
	return newCap
}
