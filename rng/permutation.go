package rng

// Permutation fills buf[0..len(buf)) with a uniform random permutation
// of start..start+len(buf)-1, via inclusive-bound Fisher-Yates: for
// i = len-1 down to 1, swap buf[i] with buf[UniformInclusive(i)]. Fixed
// points (buf[i] == i+start) must remain possible — that is what makes
// this Fisher-Yates rather than Sattolo's algorithm.
func Permutation(buf []int, start int) {
	for i := range buf {
		buf[i] = start + i
	}
	for i := len(buf) - 1; i > 0; i-- {
		j := UniformInclusive(i)
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// Shuffle permutes an existing slice of arbitrary ints in place, using
// the same inclusive-bound Fisher-Yates as Permutation.
func Shuffle(s []int) {
	for i := len(s) - 1; i > 0; i-- {
		j := UniformInclusive(i)
		s[i], s[j] = s[j], s[i]
	}
}
