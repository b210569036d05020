package store

// SQL for the PostgreSQL lookup store. Table names match
// depmap.DependenciesTable and depmap.ReferenceTable.

const (
	queryDropDependencies = `DROP TABLE IF EXISTS dependencies`

	queryCreateDependencies = `
		CREATE TABLE dependencies (
			group_id    TEXT NOT NULL,
			artifact_id TEXT NOT NULL,
			PRIMARY KEY (group_id, artifact_id)
		)
	`

	queryInsertDependency = `INSERT INTO dependencies (group_id, artifact_id) VALUES ($1, $2)`

	// queryMatchedPackages returns each package providing at least one stored pair.
	queryMatchedPackages = `
		SELECT DISTINCT r.package_name
		FROM dependencies d
		INNER JOIN imported_artifacts r
			ON r.group_id = d.group_id AND r.artifact_id = d.artifact_id
	`

	// queryResolve lists every stored pair with its packages; unmatched pairs
	// come back once with an empty package name.
	queryResolve = `
		SELECT DISTINCT
			d.group_id,
			d.artifact_id,
			COALESCE(r.package_name, '') AS package_name,
			COALESCE(r.package_version, '') AS package_version
		FROM dependencies d
		LEFT JOIN imported_artifacts r
			ON r.group_id = d.group_id AND r.artifact_id = d.artifact_id
		ORDER BY 1, 2, 3, 4
	`

	// querySearchReference matches group and artifact prefixes.
	// Parameters $1, $2: LIKE patterns with metacharacters escaped
	querySearchReference = `
		SELECT
			group_id,
			artifact_id,
			COALESCE(version, ''),
			package_name,
			COALESCE(package_version, '')
		FROM imported_artifacts
		WHERE group_id LIKE $1 AND artifact_id LIKE $2
		ORDER BY group_id, artifact_id, 3, package_name
	`

	queryCreateReference = `
		CREATE TABLE IF NOT EXISTS imported_artifacts (
			group_id        TEXT NOT NULL,
			artifact_id     TEXT NOT NULL,
			version         TEXT NOT NULL DEFAULT '',
			package_name    TEXT NOT NULL,
			package_version TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (group_id, artifact_id, version, package_name)
		)
	`

	queryUpsertReference = `
		INSERT INTO imported_artifacts (group_id, artifact_id, version, package_name, package_version)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (group_id, artifact_id, version, package_name)
		DO UPDATE SET package_version = EXCLUDED.package_version
	`
)

// undefinedTable is the SQLSTATE PostgreSQL reports for a missing relation.
const undefinedTable = "42P01"
