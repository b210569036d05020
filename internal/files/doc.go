// Package files groups the file-walking packages.
//
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - scanner: discovery of (group, artifact) pairs in a Maven repository
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/depmap/internal/files/filesystem"
//	    "github.com/vvka-141/depmap/internal/files/scanner"
//	)
//
//	s := scanner.NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
//	result, err := s.ScanRepository("/tmp/m2")
package files
