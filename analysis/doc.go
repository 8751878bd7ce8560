// Package analysis provides the read-only analysis steps for tr-EPR
// datasets. In contrast to processing steps, an analysis step leaves the
// source dataset's data untouched and returns a result instead: either a
// plain characteristic (scalar, vector, index coordinates) or a new,
// independent CalculatedDataset whose arrays never alias the source.
//
// Each application still appends one history entry to the source dataset,
// recording that the analysis took place and, if named, where its result
// was bound.
package analysis
