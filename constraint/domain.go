package constraint

import "math/bits"

// Domain is a bitset of permitted symbols 1..N for one cell, a uint32
// so it can hold up to 31 bits — enough for the largest supported
// board, k=5 (N=25). Bit 0 is unused.
type Domain uint32

// FullDomain returns a Domain with bits 1..n set.
func FullDomain(n int) Domain {
	var d Domain
	for i := 1; i <= n; i++ {
		d = d.Set(i)
	}
	return d
}

// Has returns true if v is a member of the domain.
func (d Domain) Has(v int) bool {
	if v < 1 || v > 31 {
		return false
	}
	return d&(1<<uint(v)) != 0
}

// Set returns d with v added.
func (d Domain) Set(v int) Domain {
	if v < 1 || v > 31 {
		return d
	}
	return d | (1 << uint(v))
}

// Clear returns d with v removed.
func (d Domain) Clear(v int) Domain {
	if v < 1 || v > 31 {
		return d
	}
	return d &^ (1 << uint(v))
}

// Popcount returns the number of symbols still permitted.
func (d Domain) Popcount() int {
	return bits.OnesCount32(uint32(d))
}

// Only returns the single remaining symbol and true if the domain is a
// singleton, else (0, false).
func (d Domain) Only() (int, bool) {
	if d.Popcount() != 1 {
		return 0, false
	}
	return bits.TrailingZeros32(uint32(d)), true
}

// IsEmpty reports a dead-end domain (popcount == 0).
func (d Domain) IsEmpty() bool { return d == 0 }

// ToSlice returns the member symbols in ascending order.
func (d Domain) ToSlice(n int) []int {
	var out []int
	for v := 1; v <= n; v++ {
		if d.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
