package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"brm-service/internal/app/contracts"
	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type repository[T models.Entity] struct {
	db    *sql.DB
	table string
}

// NewRepository stores each entity as a JSON body keyed by id, with its
// reference id in an indexed column.
func NewRepository[T models.Entity](db *sql.DB, table string) contracts.Repository[T] {
	return &repository[T]{
		db:    db,
		table: table,
	}
}

// Migrate creates the table and its reference index. With uniqueReference a
// non-empty reference id may appear only once.
func Migrate(ctx context.Context, db *sql.DB, table string, uniqueReference bool) error {
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			reference_id TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL
		)`, table),
	}
	if uniqueReference {
		statements = append(statements, fmt.Sprintf(
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_reference_id ON %s (reference_id) WHERE reference_id <> ''`,
			table, table,
		))
	} else {
		statements = append(statements, fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS idx_%s_reference_id ON %s (reference_id)`,
			table, table,
		))
	}

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return exceptions.ErrStorageWrite(err, table)
		}
	}
	return nil
}

// conn returns the transaction carried by ctx, if any.
func (r *repository[T]) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(constvars.CONTEXT_SQLITE_TX_KEY).(*sql.Tx); ok {
		return tx
	}
	return r.db
}

func (r *repository[T]) FindAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT body FROM %s ORDER BY rowid`, r.table)
	return r.queryBodies(ctx, query)
}

func (r *repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(`SELECT body FROM %s WHERE id = ?`, r.table)

	var body string
	err := r.conn(ctx).QueryRowContext(ctx, query, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrStorageRead(err, r.table)
	}

	entity := new(T)
	if err := json.Unmarshal([]byte(body), entity); err != nil {
		return nil, exceptions.ErrStorageRead(err, r.table)
	}
	return entity, nil
}

func (r *repository[T]) FindByReference(ctx context.Context, referenceID string) ([]T, error) {
	query := fmt.Sprintf(`SELECT body FROM %s WHERE reference_id = ? ORDER BY rowid`, r.table)
	return r.queryBodies(ctx, query, referenceID)
}

func (r *repository[T]) Insert(ctx context.Context, entity T) error {
	body, err := json.Marshal(entity)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, reference_id, body) VALUES (?, ?, ?)`, r.table)
	_, err = r.conn(ctx).ExecContext(ctx, query, entity.GetID(), entity.ReferenceID(), string(body))
	if err != nil {
		if isUniqueViolation(err) {
			return contracts.ErrDuplicateRecord
		}
		return exceptions.ErrStorageWrite(err, r.table)
	}
	return nil
}

func (r *repository[T]) Replace(ctx context.Context, entity T) error {
	body, err := json.Marshal(entity)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	query := fmt.Sprintf(`UPDATE %s SET reference_id = ?, body = ? WHERE id = ?`, r.table)
	result, err := r.conn(ctx).ExecContext(ctx, query, entity.ReferenceID(), string(body), entity.GetID())
	if err != nil {
		if isUniqueViolation(err) {
			return contracts.ErrDuplicateRecord
		}
		return exceptions.ErrStorageWrite(err, r.table)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrStorageWrite(err, r.table)
	}
	if affected == 0 {
		return contracts.ErrRecordNotFound
	}
	return nil
}

func (r *repository[T]) DeleteByID(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.table)
	affected, err := r.exec(ctx, query, id)
	return affected > 0, err
}

func (r *repository[T]) DeleteByReference(ctx context.Context, referenceID string) (int, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE reference_id = ?`, r.table)
	affected, err := r.exec(ctx, query, referenceID)
	return int(affected), err
}

func (r *repository[T]) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, exceptions.ErrStorageDelete(err, r.table)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrStorageDelete(err, r.table)
	}
	return affected, nil
}

func (r *repository[T]) queryBodies(ctx context.Context, query string, args ...interface{}) ([]T, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrStorageRead(err, r.table)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, exceptions.ErrStorageRead(err, r.table)
		}
		var item T
		if err := json.Unmarshal([]byte(body), &item); err != nil {
			return nil, exceptions.ErrStorageRead(err, r.table)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrStorageRead(err, r.table)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
