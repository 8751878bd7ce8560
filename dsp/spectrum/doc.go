// Package spectrum provides the frequency-domain helpers shared by the
// analysis steps: a real-input FFT with zero padding, magnitude extraction,
// and frequency-axis construction for the non-negative half spectrum.
package spectrum
