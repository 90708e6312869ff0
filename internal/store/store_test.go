// File: internal/store/store_test.go
package store

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRow 供 QueryRow 測試替身使用
type fakeRow struct {
	scanFn func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scanFn(dest...) }

// fakeRows 供 Query 測試替身使用，每一列對應一個 scan 函式
type fakeRows struct {
	scanFns []func(dest ...any) error
	idx     int
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx < len(r.scanFns) {
		r.idx++
		return true
	}
	return false
}

func (r *fakeRows) Scan(dest ...any) error { return r.scanFns[r.idx-1](dest...) }

// setScan 依序把 values 寫入 Scan 的目的指標，nil 寫入零值
func setScan(values ...any) func(dest ...any) error {
	return func(dest ...any) error {
		if len(dest) != len(values) {
			return fmt.Errorf("expected %d dest, got %d", len(values), len(dest))
		}
		for i, v := range values {
			d := reflect.ValueOf(dest[i]).Elem()
			if v == nil {
				d.Set(reflect.Zero(d.Type()))
				continue
			}
			d.Set(reflect.ValueOf(v))
		}
		return nil
	}
}
