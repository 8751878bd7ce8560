// Package dataset provides the in-memory data model for time-resolved EPR
// measurements: a numeric data block with labeled axes, instrument metadata,
// and an append-only history of every operation applied to the data.
//
// A Dataset owns its data exclusively. Processing steps (package processing)
// borrow it, mutate data and axes in place, and record what they did in the
// history. Analysis steps (package analysis) read it and produce derived
// results, optionally as a CalculatedDataset with freshly allocated arrays.
//
// The history is what makes any derived dataset reproducible: replaying the
// ordered (type, parameters) sequence against the raw imported data yields
// the same result.
package dataset
