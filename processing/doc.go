// Package processing provides the in-place processing steps for tr-EPR
// datasets: pretrigger offset compensation, background correction, trigger
// autodetection, Savitzky-Golay filtering, slice extraction, averaging, and
// microwave frequency correction.
//
// Steps are applied through Apply, which checks the dataset invariants,
// the step's applicability, and its configuration before the first write.
// A failing step therefore leaves data, axes, and history untouched. Each
// successful application appends exactly one history entry recording the
// step type and the exact parameters used, including values the step
// detected itself.
package processing
