// internal/store/gateway.go
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"support-responder/internal/common/errors"
	"support-responder/internal/common/logger"
	"support-responder/internal/models"
)

// Gateway reads reference records from the relational store. Each call
// acquires a scoped connection so a poisoned connection never outlives
// the request that hit it.
type Gateway struct {
	db  *sql.DB
	log logger.Logger
}

func NewGateway(db *sql.DB, log logger.Logger) *Gateway {
	return &Gateway{db: db, log: log}
}

// Lookup fetches the first record in table whose field equals value.
// A missing record returns (nil, nil); store failures come back as
// StandardError with the appropriate code.
func (g *Gateway) Lookup(ctx context.Context, table, field, value string) (models.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 LIMIT 1",
		pq.QuoteIdentifier(table), pq.QuoteIdentifier(field))
	return g.queryOne(ctx, table, query, value)
}

// LookupLike fetches the first record whose field contains value as a
// substring, matched case-insensitively.
func (g *Gateway) LookupLike(ctx context.Context, table, field, value string) (models.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s ILIKE '%%' || $1 || '%%' LIMIT 1",
		pq.QuoteIdentifier(table), pq.QuoteIdentifier(field))
	return g.queryOne(ctx, table, query, value)
}

// LookupFirst fetches the first record in table with no filter at all.
// Flows that accept a query without an identifier use it as a default
// record source.
func (g *Gateway) LookupFirst(ctx context.Context, table string) (models.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s LIMIT 1", pq.QuoteIdentifier(table))
	return g.queryOne(ctx, table, query)
}

func (g *Gateway) queryOne(ctx context.Context, table, query string, args ...interface{}) (models.Record, error) {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		g.log.WithError(err).Error("failed to acquire database connection", map[string]interface{}{"table": table})
		return nil, errors.NewStoreUnavailableError(err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		g.log.WithError(err).Error("record lookup failed", map[string]interface{}{"table": table})
		return nil, errors.NewQueryExecutionFailedError(table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError(table, err)
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, errors.NewQueryExecutionFailedError(table, err)
		}
		return nil, nil
	}

	values := make([]sql.NullString, len(cols))
	scanArgs := make([]interface{}, len(cols))
	for i := range values {
		scanArgs[i] = &values[i]
	}
	if err := rows.Scan(scanArgs...); err != nil {
		return nil, errors.NewQueryExecutionFailedError(table, err)
	}

	record := make(models.Record, len(cols))
	for i, col := range cols {
		if values[i].Valid {
			record[col] = values[i].String
		}
	}
	return record, nil
}
