package depmap

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess             = 0   // Run completed successfully
	ExitGeneralError        = 1   // Unknown or unclassified error
	ExitUsageError          = 2   // CLI usage error (missing args, invalid flags)
	ExitPanic               = 3   // Internal panic (unexpected crash)
	ExitConfigError         = 10  // Invalid configuration
	ExitConnectionError     = 11  // Failed to connect to database
	ExitSourceMissing       = 14  // Gradle cache or Maven repository not found
	ExitReferenceTableError = 15  // imported_artifacts is missing
	ExitInterrupted         = 130 // Cancelled by SIGINT or SIGTERM
)

// GradleCacheSubdir is where Gradle keeps downloaded module files below GRADLE_USER_HOME.
// The layout beneath it is group/artifact/version/<sha1>/file.
const GradleCacheSubdir = "caches/modules-2/files-2.1"

// Recognized file name suffixes.
const (
	ExtJar = ".jar"
	ExtPom = ".pom"

	SuffixSHA1      = ".sha1"
	SuffixMD5       = ".md5"
	SuffixSignature = ".asc"
)

// DescriptorExtension is the canonical per-version metadata file used to locate
// an artifact's identity in a Maven repository.
const DescriptorExtension = ExtPom

// NotYetPackaged labels pairs that have no entry in the reference mapping.
const NotYetPackaged = "not-yet-packaged"

// Table names used by the lookup store.
const (
	DependenciesTable = "dependencies"
	ReferenceTable    = "imported_artifacts"
)

// DefaultConfigFileName is looked up in the working directory for connection settings.
const DefaultConfigFileName = "depmap.yaml"

// PayloadExtensions lists the extensions that make a directory a version directory.
var PayloadExtensions = []string{ExtJar, ExtPom}

// SidecarSuffixes lists checksum and signature suffixes that are never copied.
var SidecarSuffixes = []string{SuffixSHA1, SuffixMD5, SuffixSignature}
