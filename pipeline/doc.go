// Package pipeline drives ordered sequences of processing and analysis
// steps against a dataset, the way a recipe runner would: step types are
// looked up by name in a Registry, built from loosely-typed Params, and
// applied one by one. Analysis results can be stored under binding names
// and fed into later tasks.
package pipeline
