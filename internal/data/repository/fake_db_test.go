package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB answers queries by matching a substring of the SQL text.
type fakeDB struct {
	results map[string][][]any
	err     error
	calls   []fakeCall
}

type fakeCall struct {
	sql  string
	args []any
}

func (db *fakeDB) lookup(sql string) [][]any {
	for fragment, rows := range db.results {
		if strings.Contains(sql, fragment) {
			return rows
		}
	}
	return nil
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.calls = append(db.calls, fakeCall{sql: sql, args: args})
	if db.err != nil {
		return nil, db.err
	}
	return &fakeRows{rows: db.lookup(sql), pos: -1}, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.calls = append(db.calls, fakeCall{sql: sql, args: args})
	if db.err != nil {
		return fakeRow{err: db.err}
	}
	rows := db.lookup(sql)
	if len(rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: rows[0]}
}

func (db *fakeDB) Close() {}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

type fakeRows struct {
	rows [][]any
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(r.rows[r.pos], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos], nil
}

func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d destinations", len(values), len(dest))
	}
	for i, val := range values {
		dv := reflect.ValueOf(dest[i]).Elem()
		if val == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		vv := reflect.ValueOf(val)
		if !vv.Type().AssignableTo(dv.Type()) {
			if !vv.Type().ConvertibleTo(dv.Type()) {
				return errors.New("scan: cannot assign " + vv.Type().String() + " to " + dv.Type().String())
			}
			vv = vv.Convert(dv.Type())
		}
		dv.Set(vv)
	}
	return nil
}
