// Package main provides the entry point for the histsum CLI.
//
// histsum reads a browsing-history export (Google Takeout and similar JSON
// dumps), normalizes its records, and summarizes which sites were visited
// and what was read there.
//
// Usage:
//
//	histsum run [history.json...]
//	histsum extract [history.json...] -o records.json
//	histsum summarize [records.json] -o summary.json
//
// See --help for all available options.
package main

func main() {
	Execute()
}
