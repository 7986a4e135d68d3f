package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/query"
	"github.com/magicvilla/villa-api/internal/core/repository"
)

var _ repository.Driver[domain.Villa] = (*Driver[domain.Villa])(nil)

// Driver maps one entity type onto the table named after its schema.
type Driver[T any] struct {
	db      *sql.DB
	dialect Dialect
	schema  repository.Schema[T]
}

// NewDriver returns a Driver for schema over db.
func NewDriver[T any](db *sql.DB, d Dialect, schema repository.Schema[T]) *Driver[T] {
	return &Driver[T]{db: db, dialect: d, schema: schema}
}

func (d *Driver[T]) Find(ctx context.Context, filter query.Filter, limit int) ([]T, error) {
	where, args := d.where(filter, 1)
	stmt := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s",
		strings.Join(d.schema.ColumnNames(), ", "), d.schema.Name, where, d.schema.Key)
	if limit > 0 {
		stmt += " LIMIT " + strconv.Itoa(limit)
	}

	rows, err := d.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", d.schema.Name, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		var row T
		if err := rows.Scan(scanTargets(d.schema.Pointers(&row))...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", d.schema.Name, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", d.schema.Name, err)
	}
	return out, nil
}

func (d *Driver[T]) Insert(ctx context.Context, entity *T) error {
	vals := d.schema.Values(entity)
	cols := make([]string, 0, len(vals))
	marks := make([]string, 0, len(vals))
	args := make([]any, 0, len(vals))
	for i, c := range d.schema.Columns {
		if d.schema.GeneratedKey && c.Name == d.schema.Key {
			continue
		}
		cols = append(cols, c.Name)
		args = append(args, vals[i])
		marks = append(marks, d.dialect.Placeholder(len(args)))
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.schema.Name, strings.Join(cols, ", "), strings.Join(marks, ", "))

	if !d.schema.GeneratedKey {
		if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("insert %s: %w", d.schema.Name, d.dialect.classify(err))
		}
		return nil
	}

	var id int
	if err := d.db.QueryRowContext(ctx, stmt+" RETURNING "+d.schema.Key, args...).Scan(&id); err != nil {
		return fmt.Errorf("insert %s: %w", d.schema.Name, d.dialect.classify(err))
	}
	d.schema.SetID(entity, id)
	return nil
}

func (d *Driver[T]) Update(ctx context.Context, entity *T) error {
	vals := d.schema.Values(entity)
	mutable := d.schema.Mutable()
	sets := make([]string, 0, len(mutable))
	args := make([]any, 0, len(mutable)+1)
	for _, i := range mutable {
		args = append(args, vals[i])
		sets = append(sets, d.schema.Columns[i].Name+" = "+d.dialect.Placeholder(len(args)))
	}
	id := d.schema.ID(entity)
	args = append(args, id)
	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
		d.schema.Name, strings.Join(sets, ", "), d.schema.Key, d.dialect.Placeholder(len(args)))

	res, err := d.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", d.schema.Name, id, d.dialect.classify(err))
	}
	return d.affected(res, id)
}

func (d *Driver[T]) Delete(ctx context.Context, id int) error {
	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = %s", d.schema.Name, d.schema.Key, d.dialect.Placeholder(1))
	res, err := d.db.ExecContext(ctx, stmt, id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", d.schema.Name, id, d.dialect.classify(err))
	}
	return d.affected(res, id)
}

func (d *Driver[T]) affected(res sql.Result, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d rows affected: %w", d.schema.Name, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", d.schema.Name, id, domain.ErrNotFound)
	}
	return nil
}

// where renders filter as a WHERE clause with placeholders numbered from first.
func (d *Driver[T]) where(f query.Filter, first int) (string, []any) {
	if len(f) == 0 {
		return "", nil
	}
	conds := make([]string, len(f))
	args := make([]any, len(f))
	for i, c := range f {
		mark := d.dialect.Placeholder(first + i)
		switch c.Op {
		case query.OpEqFold:
			conds[i] = fmt.Sprintf("lower(%s) = lower(%s)", c.Field, mark)
		default:
			conds[i] = fmt.Sprintf("%s = %s", c.Field, mark)
		}
		args[i] = c.Value
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// scanTargets wraps time destinations so that engines returning timestamps
// as text scan the same as those returning time.Time.
func scanTargets(ptrs []any) []any {
	for i, p := range ptrs {
		if tp, ok := p.(*time.Time); ok {
			ptrs[i] = &timeScanner{dst: tp}
		}
	}
	return ptrs
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

type timeScanner struct {
	dst *time.Time
}

func (s *timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.dst = v.UTC()
		return nil
	case nil:
		*s.dst = time.Time{}
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (s *timeScanner) parse(v string) error {
	if i := strings.Index(v, " m="); i >= 0 {
		v = v[:i]
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			*s.dst = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", v)
}
