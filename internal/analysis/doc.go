// Package analysis inspects the closed-form series behind the scenes.
//
// The growth curve's market texture is a fixed sum of sinusoids and two
// drawdown dips; the analyze command detrends the curve and confirms
// the harmonics:
//
//   - [FFT]: recursive radix-2 transform
//   - [PowerSpectrum]: magnitudes of the positive-frequency half
//   - [PadPow2]: zero-pad a series to a power-of-two length
//   - [TopPeaks]: dominant spectrum bins, largest first
package analysis
