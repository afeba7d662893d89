// Package extract turns a browsing-history export of unknown shape into
// canonical records.
//
// An export is a single JSON document. Its top level is either an array of
// record-like objects, or an object whose values may be such arrays. Any
// other top-level value yields no records. Each candidate object is mapped
// onto model.Record by trying a chain of field names per canonical field:
//
//	url       <- url, link
//	title     <- title, header, activity
//	timestamp <- time, timestampMillis, time_usec
//
// The first field whose value is present and non-empty wins. A candidate
// without a non-empty string title is dropped.
//
// The package is pure: it works on bytes already in memory and performs no
// I/O of its own.
package extract
