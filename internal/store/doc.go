// Package store implements depmap.LookupStore.
//
// The stored pair set lives in the dependencies table and is replaced wholesale
// on every load. Matching is a join against imported_artifacts, a reference
// mapping maintained outside the scan (see LoadReferenceFile and
// LookupStore.ImportReference). A missing reference table is reported as
// depmap.ErrReferenceTableMissing and is never papered over.
//
// PostgresStore is the production implementation. MemoryStore has the same
// semantics and backs runs without a database as well as unit tests.
package store
