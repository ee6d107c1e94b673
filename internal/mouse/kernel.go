package mouse

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SmoothingKernel returns the rising half of a Hamming window of length
// 2n, normalised to sum to one. Applied to a buffer ordered oldest to
// newest it weights recent samples most. n < 1 is treated as 1.
func SmoothingKernel(n int) []float64 {
	if n < 1 {
		n = 1
	}

	window := hamming(2 * n)
	kernel := window[:n]
	floats.Scale(1/floats.Sum(kernel), kernel)
	return kernel
}

// hamming returns the symmetric Hamming window of length m.
func hamming(m int) []float64 {
	w := make([]float64, m)
	if m == 1 {
		w[0] = 1
		return w
	}
	for k := range w {
		w[k] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(k)/float64(m-1))
	}
	return w
}
