package analysis

import "sort"

// PadPow2 zero-pads data to the next power-of-two length. Inputs that
// already are a power of two come back unchanged.
func PadPow2(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	if n == len(data) {
		return data
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}

// TopPeaks returns up to k local-maximum bins of a spectrum, largest
// magnitude first. The DC bin is never a peak.
func TopPeaks(ps []float64, k int) []int {
	peaks := make([]int, 0)
	for i := 1; i < len(ps)-1; i++ {
		if ps[i] > ps[i-1] && ps[i] >= ps[i+1] {
			peaks = append(peaks, i)
		}
	}
	sort.Slice(peaks, func(a, b int) bool { return ps[peaks[a]] > ps[peaks[b]] })
	if len(peaks) > k {
		peaks = peaks[:k]
	}
	return peaks
}
