package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/study-planner-api/internal/filter"
)

// ErrVersionConflict is returned when a versioned update matches no row because the
// record changed or disappeared after it was read.
var ErrVersionConflict = errors.New("record version conflict")

// pgInvalidTextRepresentation is raised when an id is not a valid uuid literal.
const pgInvalidTextRepresentation = "22P02"

// notFoundOnMalformedID reports a malformed id as sql.ErrNoRows: no row can carry it.
func notFoundOnMalformedID(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgInvalidTextRepresentation {
		return sql.ErrNoRows
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereClause renders q as a parameterised WHERE body. The owner restriction is always the first term.
func whereClause(q filter.Query) (string, []interface{}, error) {
	if q.Owner == "" {
		return "", nil, errors.New("query has no owner")
	}
	ownerField := q.OwnerField
	if ownerField == "" {
		ownerField = "user_id"
	}
	where := []string{fmt.Sprintf("%s = $1", ownerField)}
	args := []interface{}{q.Owner}

	for _, cond := range q.Conditions {
		placeholder := fmt.Sprintf("$%d", len(args)+1)
		switch cond.Op {
		case filter.OpEq:
			where = append(where, fmt.Sprintf("%s = %s", cond.Field, placeholder))
			args = append(args, cond.Value)
		case filter.OpGTE:
			where = append(where, fmt.Sprintf("%s >= %s", cond.Field, placeholder))
			args = append(args, cond.Value)
		case filter.OpLTE:
			where = append(where, fmt.Sprintf("%s <= %s", cond.Field, placeholder))
			args = append(args, cond.Value)
		case filter.OpLT:
			where = append(where, fmt.Sprintf("%s < %s", cond.Field, placeholder))
			args = append(args, cond.Value)
		case filter.OpContainsFold:
			where = append(where, fmt.Sprintf("%s ILIKE %s", cond.Field, placeholder))
			args = append(args, "%"+likeEscaper.Replace(fmt.Sprint(cond.Value))+"%")
		default:
			return "", nil, fmt.Errorf("unsupported filter op %q", cond.Op)
		}
	}
	return strings.Join(where, " AND "), args, nil
}

func orderClause(orders []filter.Order) string {
	if len(orders) == 0 {
		return "id ASC"
	}
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		part := o.Field + " ASC"
		if o.Desc {
			part = o.Field + " DESC"
		}
		if o.NullsLast {
			part += " NULLS LAST"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

// table holds the SQL shared by the owner-scoped record stores.
type table struct {
	name    string
	columns string
	insert  string
	update  string
}

func selectRecords[R any](ctx context.Context, db *sqlx.DB, t table, q filter.Query) ([]R, error) {
	where, args, err := whereClause(q)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s", t.columns, t.name, where, orderClause(q.Order))
	records := []R{}
	if err := db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return records, nil
}

func getRecord[R any](ctx context.Context, db *sqlx.DB, t table, id string) (*R, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", t.columns, t.name)
	var record R
	if err := db.GetContext(ctx, &record, query, id); err != nil {
		err = notFoundOnMalformedID(err)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find %s: %w", t.name, err)
	}
	return &record, nil
}

func insertRecord(ctx context.Context, db *sqlx.DB, t table, arg interface{}) error {
	if _, err := db.NamedExecContext(ctx, t.insert, arg); err != nil {
		return fmt.Errorf("create %s: %w", t.name, err)
	}
	return nil
}

// updateRecord runs the table's versioned update. arg must carry the version that was read.
func updateRecord(ctx context.Context, db *sqlx.DB, t table, arg interface{}) error {
	res, err := db.NamedExecContext(ctx, t.update, arg)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", t.name, err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func deleteRecord(ctx context.Context, db *sqlx.DB, t table, id string) error {
	res, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name), id)
	if err != nil {
		if err = notFoundOnMalformedID(err); errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("delete %s: %w", t.name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.name, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
