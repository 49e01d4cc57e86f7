package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	apperrors "support-responder/internal/common/errors"
	"support-responder/internal/common/logger"
)

func newTestGateway(t *testing.T) (*Gateway, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewGateway(db, logger.NewZapAdapter(zaptest.NewLogger(t))), mock
}

func TestLookupReturnsRecord(t *testing.T) {
	g, mock := newTestGateway(t)

	rows := sqlmock.NewRows([]string{"quote_id", "quote_status", "closed_by"}).
		AddRow("123", "Closed", "BUPA team")
	mock.ExpectQuery(`SELECT \* FROM "02_general_pricing_queries" WHERE "quote_id" = \$1 LIMIT 1`).
		WithArgs("123").
		WillReturnRows(rows)

	record, err := g.Lookup(context.Background(), "02_general_pricing_queries", "quote_id", "123")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "123", record["quote_id"])
	assert.Equal(t, "Closed", record["quote_status"])
	assert.Equal(t, "BUPA team", record["closed_by"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupNoRowsIsNotAnError(t *testing.T) {
	g, mock := newTestGateway(t)

	mock.ExpectQuery(`SELECT \* FROM "01_pos_replacemnt" WHERE "quote_id" = \$1 LIMIT 1`).
		WithArgs("999").
		WillReturnRows(sqlmock.NewRows([]string{"quote_id"}))

	record, err := g.Lookup(context.Background(), "01_pos_replacemnt", "quote_id", "999")
	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestLookupNullColumnsAreOmitted(t *testing.T) {
	g, mock := newTestGateway(t)

	rows := sqlmock.NewRows([]string{"quote_id", "closed_by"}).AddRow("123", nil)
	mock.ExpectQuery(`SELECT \* FROM "05_ship_debit_queries" WHERE "quote_id" = \$1 LIMIT 1`).
		WithArgs("123").
		WillReturnRows(rows)

	record, err := g.Lookup(context.Background(), "05_ship_debit_queries", "quote_id", "123")
	require.NoError(t, err)
	_, present := record["closed_by"]
	assert.False(t, present)
	assert.Equal(t, "123", record["quote_id"])
}

func TestLookupQueryFailureWrapsStandardError(t *testing.T) {
	g, mock := newTestGateway(t)

	mock.ExpectQuery(`SELECT \* FROM "15_s_d_claim_rejection"`).
		WillReturnError(errors.New("relation does not exist"))

	record, err := g.Lookup(context.Background(), "15_s_d_claim_rejection", "claim_id", "CLM-1")
	assert.Nil(t, record)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeQueryExecutionFailed, apperrors.CodeOf(err))
}

func TestLookupLike(t *testing.T) {
	g, mock := newTestGateway(t)

	rows := sqlmock.NewRows([]string{"pgb-4023", "rejected"}).AddRow("PGB-4023", "Yes")
	mock.ExpectQuery(`SELECT \* FROM "04_adding_parts_pos_queries" WHERE "pgb-4023" ILIKE '%' \|\| \$1 \|\| '%' LIMIT 1`).
		WithArgs("PGB-4023").
		WillReturnRows(rows)

	record, err := g.LookupLike(context.Background(), "04_adding_parts_pos_queries", "pgb-4023", "PGB-4023")
	require.NoError(t, err)
	assert.Equal(t, "Yes", record["rejected"])
}

func TestLookupFirst(t *testing.T) {
	g, mock := newTestGateway(t)

	rows := sqlmock.NewRows([]string{"add88632"}).AddRow("ADD90021")
	mock.ExpectQuery(`SELECT \* FROM "04_adding_parts_pos_queries" LIMIT 1`).
		WillReturnRows(rows)

	record, err := g.LookupFirst(context.Background(), "04_adding_parts_pos_queries")
	require.NoError(t, err)
	assert.Equal(t, "ADD90021", record["add88632"])
}
