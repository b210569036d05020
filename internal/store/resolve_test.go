package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/vvka-141/depmap/pkg/depmap"
)

func TestGroupMatches(t *testing.T) {
	got := groupMatches([]match{
		{pair: pair("a", "1"), pkg: depmap.PackageRef{Name: "p", Version: "1"}},
		{pair: pair("a", "1"), pkg: depmap.PackageRef{Name: "q"}},
		{pair: pair("b", "2")},
	})

	assert.Equal(t, []depmap.Resolution{
		{Pair: pair("a", "1"), Packages: []depmap.PackageRef{{Name: "p", Version: "1"}, {Name: "q"}}},
		{Pair: pair("b", "2"), Packages: []depmap.PackageRef{{Name: depmap.NotYetPackaged}}},
	}, got)
	assert.NotNil(t, groupMatches(nil))
}

func TestLikePrefix(t *testing.T) {
	tests := map[string]string{
		"":           "%",
		"org.apache": "org.apache%",
		"50%_off":    `50\%\_off%`,
		`back\slash`: `back\\slash%`,
	}
	for in, want := range tests {
		assert.Equal(t, want, likePrefix(in), "likePrefix(%q)", in)
	}
}

func TestClassifyQueryError(t *testing.T) {
	missing := &pgconn.PgError{Code: "42P01", Message: `relation "imported_artifacts" does not exist`}
	err := classifyQueryError(missing, "match packages")
	assert.True(t, errors.Is(err, depmap.ErrReferenceTableMissing))
	assert.Contains(t, err.Error(), "imported_artifacts")
	assert.Equal(t, depmap.ExitReferenceTableError, depmap.ExitCodeForError(err))

	other := &pgconn.PgError{Code: "42601", Message: "syntax error"}
	err = classifyQueryError(other, "match packages")
	assert.False(t, errors.Is(err, depmap.ErrReferenceTableMissing))
	assert.True(t, errors.Is(err, other))
}
