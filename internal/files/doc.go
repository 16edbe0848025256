// Package files groups glamgen's file handling into sub-packages:
//   - filesystem: provider abstraction over the OS, embedded files and memory
//   - scanner: SQL file discovery with raw and normalized checksums
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/glamgen/internal/checksum"
//	    "github.com/vvka-141/glamgen/internal/files/filesystem"
//	    "github.com/vvka-141/glamgen/internal/files/scanner"
//	)
//
//	fs := filesystem.NewOSFileSystem(".")
//	files, err := scanner.NewScanner(checksum.New(), fs).Scan("sql")
package files
