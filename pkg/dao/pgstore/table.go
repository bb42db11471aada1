package pgstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ruFelix/hesper/pkg/dao"
)

// Querier is the part of *pgxpool.Pool, *pgx.Conn and pgx.Tx a Table needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ScanFunc scans one row into an entity. Columns arrive in the order given to NewTable.
type ScanFunc[E dao.Entity] func(row pgx.Row) (E, error)

// Table is a DAO reading single rows of one table.
type Table[E dao.Entity] struct {
	db      Querier
	table   string
	columns []string
	keyCol  string
	key     func(raw any) (any, error)
	scan    ScanFunc[E]
}

// TableOption configures a Table.
type TableOption func(*tableOptions)

type tableOptions struct {
	keyCol string
	key    func(raw any) (any, error)
}

// WithKeyColumn sets the column GetByID filters on. The default is "id".
func WithKeyColumn(column string) TableOption {
	return func(o *tableOptions) {
		o.keyCol = column
	}
}

// WithKey sets how raw identifiers become query arguments.
// The default sends them as strings and lets the server cast.
func WithKey(fn func(raw any) (any, error)) TableOption {
	return func(o *tableOptions) {
		if fn != nil {
			o.key = fn
		}
	}
}

// WithIntKey coerces raw identifiers with dao.IntID.
func WithIntKey() TableOption {
	return WithKey(func(raw any) (any, error) {
		return dao.IntID(raw)
	})
}

// WithUUIDKey coerces raw identifiers with dao.UUID.
func WithUUIDKey() TableOption {
	return WithKey(func(raw any) (any, error) {
		return dao.UUID(raw)
	})
}

// NewTable returns a DAO over table. columns lists the selected columns and must
// contain the key column.
func NewTable[E dao.Entity](db Querier, table string, columns []string, scan ScanFunc[E], opts ...TableOption) (*Table[E], error) {
	o := tableOptions{
		keyCol: "id",
		key: func(raw any) (any, error) {
			return dao.StringID(raw)
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case db == nil:
		return nil, fmt.Errorf("%w: nil querier", ErrInvalidTable)
	case table == "":
		return nil, fmt.Errorf("%w: empty table name", ErrInvalidTable)
	case len(columns) == 0:
		return nil, fmt.Errorf("%w: no columns", ErrInvalidTable)
	case scan == nil:
		return nil, fmt.Errorf("%w: nil scan func", ErrInvalidTable)
	case !slices.Contains(columns, o.keyCol):
		return nil, fmt.Errorf("%w: key column %q is not selected", ErrInvalidTable, o.keyCol)
	}

	return &Table[E]{
		db:      db,
		table:   table,
		columns: slices.Clone(columns),
		keyCol:  o.keyCol,
		key:     o.key,
		scan:    scan,
	}, nil
}

// GetByID implements dao.DAO.
func (t *Table[E]) GetByID(ctx context.Context, id any) (dao.Entity, error) {
	e, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Get is GetByID returning the concrete entity type.
func (t *Table[E]) Get(ctx context.Context, id any) (E, error) {
	key, err := t.key(id)
	if err != nil {
		var zero E
		return zero, err
	}
	return t.queryRow(ctx, t.keyCol, key, id)
}

// GetBy looks up the first row whose column equals value. DAO types embed a Table and
// expose lookups such as GetByEmail built on it, which identifier fields resolve by name.
func (t *Table[E]) GetBy(ctx context.Context, column string, value any) (E, error) {
	if !slices.Contains(t.columns, column) {
		var zero E
		return zero, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, t.table, column)
	}
	return t.queryRow(ctx, column, value, value)
}

func (t *Table[E]) queryRow(ctx context.Context, column string, arg, raw any) (E, error) {
	var zero E

	e, err := t.scan(t.db.QueryRow(ctx, t.selectBy(column), arg))
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return zero, fmt.Errorf("%w: %s %v", dao.ErrNotFound, t.table, raw)
	case isInvalidKey(err):
		return zero, errors.Join(fmt.Errorf("%w: %v", dao.ErrInvalidID, raw), err)
	case err != nil:
		return zero, fmt.Errorf("query %s: %w", t.table, err)
	}
	return e, nil
}

func (t *Table[E]) selectBy(column string) string {
	cols := make([]string, len(t.columns))
	for i, c := range t.columns {
		cols[i] = pgx.Identifier{c}.Sanitize()
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 LIMIT 1",
		strings.Join(cols, ", "),
		pgx.Identifier(strings.Split(t.table, ".")).Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	)
}
