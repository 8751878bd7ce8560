// Package sgolay implements Savitzky-Golay polynomial smoothing. A window
// of samples is fitted with a least-squares polynomial and the fitted value
// replaces the center sample, which smooths noise while preserving higher
// moments of the signal better than a plain moving average.
//
// Near the boundaries the same polynomial fit over the first and last full
// window is evaluated at the off-center positions, so polynomials up to the
// filter order pass through the filter unchanged over the whole length.
package sgolay
