// Package report renders run results to the console.
//
// The matched-packages section has a fixed plain-text shape that downstream
// scripts parse:
//
//	--- Matched Packages ---
//	libguava-java,
//	junit4,
//	------------------------
//
// Styling is applied only when the output is a terminal and NO_COLOR is not
// set; the text itself never changes.
package report
