// Package pipeline runs a histsum invocation as a sequence of steps.
//
// A run moves from export documents to canonical records (written to the
// intermediate records file), then to a summary (written to the summary
// file), then to a console report. Each stage is a Step that receives the
// shared model.Run and adds to it. Commands assemble only the steps they
// need: extract stops after the records file, summarize starts by loading
// it back.
//
// When several export files are given, the extract step reads and parses
// them concurrently through a BatchProcessor bounded by errgroup.
package pipeline
