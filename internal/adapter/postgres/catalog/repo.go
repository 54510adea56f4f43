// Package catalog stores curated base sets and the extension pool in
// PostgreSQL.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/myenglish-suite/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const setExistsSQL = `SELECT EXISTS(SELECT 1 FROM base_sets WHERE name = $1)`

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a catalog repository over db, usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type wordRow struct {
	Word       string   `db:"word"`
	Definition string   `db:"definition"`
	Examples   []string `db:"examples"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// BaseSet returns the words of the named set in position order.
// Returns domain.ErrNotFound if the set does not exist.
func (r *Repo) BaseSet(ctx context.Context, name string) ([]domain.BaseWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("word", "definition", "examples").
		From("base_words").
		Where(squirrel.Eq{"set_name": name}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build base set query: %w", err)
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "base_set", name)
	}

	if len(rows) == 0 {
		var exists bool
		if err := q.QueryRow(ctx, setExistsSQL, name).Scan(&exists); err != nil {
			return nil, postgres.MapError(err, "base_set", name)
		}
		if !exists {
			return nil, fmt.Errorf("base_set %s: %w", name, domain.ErrNotFound)
		}
	}

	out := make([]domain.BaseWord, len(rows))
	for i, row := range rows {
		out[i] = domain.BaseWord{Word: row.Word, Definition: row.Definition, Examples: row.Examples}
	}
	return out, nil
}

// ExtensionPool returns the padding words in position order.
func (r *Repo) ExtensionPool(ctx context.Context) ([]string, error) {
	sql, args, err := psql.
		Select("word").
		From("extension_words").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build extension pool query: %w", err)
	}

	var words []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &words, sql, args...); err != nil {
		return nil, postgres.MapError(err, "extension_pool", "all")
	}
	return words, nil
}

// Ping runs a trivial query.
func (r *Repo) Ping(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "SELECT 1"); err != nil {
		return postgres.MapError(err, "catalog", "ping")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Replace swaps the stored catalog for pack. Run it inside RunInTx so
// readers never observe a half-written catalog.
func (r *Repo) Replace(ctx context.Context, pack content.Pack) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, "DELETE FROM extension_words"); err != nil {
		return postgres.MapError(err, "extension_pool", "all")
	}
	if _, err := q.Exec(ctx, "DELETE FROM base_sets"); err != nil {
		return postgres.MapError(err, "base_set", "all")
	}

	names := make([]string, 0, len(pack.Sets))
	for name := range pack.Sets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.insertSet(ctx, q, name, pack.Sets[name]); err != nil {
			return err
		}
	}

	if len(pack.Pool) == 0 {
		return nil
	}
	insert := psql.Insert("extension_words").Columns("position", "word")
	for i, w := range pack.Pool {
		insert = insert.Values(i, w)
	}
	return execBuilder(ctx, q, insert, "extension_pool", "all")
}

func (r *Repo) insertSet(ctx context.Context, q postgres.Querier, name string, words []domain.BaseWord) error {
	if err := execBuilder(ctx, q, psql.Insert("base_sets").Columns("name").Values(name), "base_set", name); err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}

	insert := psql.Insert("base_words").Columns("set_name", "position", "word", "definition", "examples")
	for i, w := range words {
		insert = insert.Values(name, i, w.Word, w.Definition, w.Examples)
	}
	return execBuilder(ctx, q, insert, "base_set", name)
}

func execBuilder(ctx context.Context, q postgres.Querier, b squirrel.Sqlizer, entity, key string) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", entity, err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, key)
	}
	return nil
}
