// Package scanner reconstructs dependency identities from a Maven repository.
//
// Every project descriptor (.pom) found under the repository root contributes
// one (group, artifact) pair, recovered from the descriptor's location:
//
//	<root>/com/example/lib/1.0/lib-1.0.pom  ->  com.example:lib
//
// The path contract is depmap.CoordinateFromRepositoryPath, the inverse of the
// layout the converter writes. Descriptors whose location does not parse are
// warned about and reported as rejections; the scan carries on.
//
// The scanner is filesystem-agnostic through filesystem.FileSystemProvider,
// so tests run against an in-memory tree.
package scanner
