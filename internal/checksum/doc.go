// Package checksum verifies artifact payloads against the checksums that travel with them.
//
// Two sources of truth are checked:
//
//   - Sidecar files: "lib-1.0.jar.sha1" and "lib-1.0.jar.md5" next to the payload.
//     Only the first whitespace-separated token is read, so both bare digests and
//     "digest  filename" formats are accepted.
//   - Gradle hash directories: files-2.1 stores each file below a directory named
//     after its SHA-1 in hex, with leading zeros dropped.
//
// Each payload is read once; both digests are computed from the same stream.
//
// # Example Usage
//
//	verifier := checksum.NewVerifier(filesystem.NewOSFileSystem())
//	err := verifier.Verify("/cache/com.example/lib/1.0/ab12...", "lib-1.0.jar", []string{"lib-1.0.jar.sha1"})
//	if errors.Is(err, depmap.ErrChecksumMismatch) {
//	    // skip the file
//	}
package checksum
