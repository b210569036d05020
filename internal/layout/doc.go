// Package layout converts a Gradle module cache into a Maven repository.
//
// # Source layout
//
// Gradle stores downloaded modules under caches/modules-2/files-2.1 as
//
//	<group>/<artifact>/<version>/<sha1>/<file>
//
// where <group> is a single dot-separated segment. The converter relies on this
// and nothing else: the first three segments of a directory's path below the
// cache root are the group, artifact and version. Deeper segments (the hash
// directories) carry no identity. Directories shallower than three segments
// cannot name a coordinate and are reported as skipped.
//
// A directory is a version directory when it directly contains a .jar or .pom
// file. Every other file in it is copied too, except .sha1, .md5 and .asc
// sidecars.
//
// # Destination layout
//
// Files land in depmap.Coordinate.RepositoryDir() below the destination root,
// the standard Maven layout that the identity scanner reads back.
//
// # Failure policy
//
// Conversion is best effort. Only a missing source root fails the whole run;
// any other problem is recorded as a depmap.ConvertOutcome and the walk moves on.
package layout
