package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/academy-api/pkg/database"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-sensitive LIKE pattern matching s anywhere in the column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func selectList(ctx context.Context, q database.Queryer, dest interface{}, b squirrel.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return sqlx.SelectContext(ctx, q, dest, query, args...)
}

// selectOne returns sql.ErrNoRows untouched so services can map it.
func selectOne(ctx context.Context, q database.Queryer, dest interface{}, b squirrel.SelectBuilder) error {
	query, args, err := b.Limit(1).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return sqlx.GetContext(ctx, q, dest, query, args...)
}

func exists(ctx context.Context, q database.Queryer, table string, where squirrel.Sqlizer, excludeID int64) (bool, error) {
	b := psql.Select("1").From(table).Where(where)
	if excludeID != 0 {
		b = b.Where(squirrel.NotEq{"id": excludeID})
	}
	var found int
	if err := selectOne(ctx, q, &found, b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func count(ctx context.Context, q database.Queryer, table string, active *bool) (int64, error) {
	b := psql.Select("COUNT(*)").From(table)
	if active != nil {
		b = b.Where(squirrel.Eq{"active": *active})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var total int64
	if err := sqlx.GetContext(ctx, q, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func insertReturningID(ctx context.Context, q database.Queryer, b squirrel.InsertBuilder) (int64, error) {
	query, args, err := b.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var id int64
	if err := q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// execAffectingRow reports sql.ErrNoRows when the statement matched nothing.
func execAffectingRow(ctx context.Context, q database.Queryer, b squirrel.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// wrap annotates err with the operation while keeping sql.ErrNoRows comparable by identity.
func wrap(op string, err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
