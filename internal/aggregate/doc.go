// Package aggregate groups canonical records by domain and ranks the domains.
//
// Titles are normalized with CleanTitle, bucketed per domain (as returned by
// ExtractDomain) into sets, and domains are ranked by how many distinct
// cleaned titles they hold. The count is a popularity proxy: history exports
// rarely carry a real visit frequency.
package aggregate
