package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/depmap/pkg/depmap"
)

// PostgresStore keeps the pair set and the reference mapping in PostgreSQL.
// It owns the pool it is given and closes it in Close.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger depmap.Logger
}

// NewPostgresStore wraps an open pool.
// Panics if pool or logger is nil.
func NewPostgresStore(pool *pgxpool.Pool, logger depmap.Logger) *PostgresStore {
	if pool == nil {
		panic("pool cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &PostgresStore{pool: pool, logger: logger}
}

// Replace drops and recreates the dependencies table and inserts pairs, all in
// one transaction that is committed once.
func (s *PostgresStore) Replace(ctx context.Context, pairs []depmap.ArtifactPair) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	//nolint:errcheck // no-op after commit
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, queryDropDependencies); err != nil {
		return fmt.Errorf("failed to drop %s: %w", depmap.DependenciesTable, err)
	}
	if _, err := tx.Exec(ctx, queryCreateDependencies); err != nil {
		return fmt.Errorf("failed to create %s: %w", depmap.DependenciesTable, err)
	}

	if len(pairs) > 0 {
		batch := &pgx.Batch{}
		for _, p := range pairs {
			batch.Queue(queryInsertDependency, p.GroupID, p.ArtifactID)
		}

		results := tx.SendBatch(ctx, batch)
		for i := range pairs {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to insert %s: %w", pairs[i], err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to complete dependency batch insert: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s: %w", depmap.DependenciesTable, err)
	}
	s.logger.Verbose("Stored %d artifact pairs in %s", len(pairs), depmap.DependenciesTable)
	return nil
}

// MatchedPackages implements depmap.LookupStore.
func (s *PostgresStore) MatchedPackages(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryMatchedPackages)
	if err != nil {
		return nil, classifyQueryError(err, "match packages")
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, classifyQueryError(err, "match packages")
	}
	return names, nil
}

// Resolve implements depmap.LookupStore.
func (s *PostgresStore) Resolve(ctx context.Context) ([]depmap.Resolution, error) {
	rows, err := s.pool.Query(ctx, queryResolve)
	if err != nil {
		return nil, classifyQueryError(err, "resolve dependencies")
	}
	matches, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (match, error) {
		var m match
		err := row.Scan(&m.pair.GroupID, &m.pair.ArtifactID, &m.pkg.Name, &m.pkg.Version)
		return m, err
	})
	if err != nil {
		return nil, classifyQueryError(err, "resolve dependencies")
	}
	return groupMatches(matches), nil
}

// Search implements depmap.LookupStore.
func (s *PostgresStore) Search(ctx context.Context, groupPrefix, artifactPrefix string) ([]depmap.ReferenceEntry, error) {
	rows, err := s.pool.Query(ctx, querySearchReference, likePrefix(groupPrefix), likePrefix(artifactPrefix))
	if err != nil {
		return nil, classifyQueryError(err, "search reference")
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (depmap.ReferenceEntry, error) {
		var e depmap.ReferenceEntry
		err := row.Scan(&e.GroupID, &e.ArtifactID, &e.Version, &e.PackageName, &e.PackageVersion)
		return e, err
	})
	if err != nil {
		return nil, classifyQueryError(err, "search reference")
	}
	return entries, nil
}

// ImportReference implements depmap.LookupStore. All entries are validated
// before anything is written; the load is a single transaction.
func (s *PostgresStore) ImportReference(ctx context.Context, entries []depmap.ReferenceEntry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	//nolint:errcheck // no-op after commit
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, queryCreateReference); err != nil {
		return fmt.Errorf("failed to create %s: %w", depmap.ReferenceTable, err)
	}

	if len(entries) > 0 {
		batch := &pgx.Batch{}
		for _, e := range entries {
			batch.Queue(queryUpsertReference, e.GroupID, e.ArtifactID, e.Version, e.PackageName, e.PackageVersion)
		}

		results := tx.SendBatch(ctx, batch)
		for i := range entries {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to upsert %s -> %s: %w", entries[i].Pair(), entries[i].PackageName, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to complete reference batch insert: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s: %w", depmap.ReferenceTable, err)
	}
	s.logger.Verbose("Imported %d reference entries into %s", len(entries), depmap.ReferenceTable)
	return nil
}

// Close releases the pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// classifyQueryError maps a missing relation to ErrReferenceTableMissing.
// The dependencies table is always created by Replace, so an undefined table
// during a read means the externally maintained reference is absent.
func classifyQueryError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
		return fmt.Errorf("failed to %s: %w: %s", op, depmap.ErrReferenceTableMissing, pgErr.Message)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// likePrefix turns a literal prefix into a LIKE pattern.
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}

var _ depmap.LookupStore = (*PostgresStore)(nil)
