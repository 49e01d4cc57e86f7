// internal/handlers/deps.go
package handlers

import (
	"context"
	"time"

	"support-responder/internal/common/logger"
	"support-responder/internal/models"
	"support-responder/internal/respond"
)

// Store is the record-store surface handlers depend on. Satisfied by
// store.Gateway in production and by test doubles in package tests.
type Store interface {
	Lookup(ctx context.Context, table, field, value string) (models.Record, error)
	LookupLike(ctx context.Context, table, field, value string) (models.Record, error)
	LookupFirst(ctx context.Context, table string) (models.Record, error)
}

// Outcome labels how a handler resolved its query. Used as a metric
// label and asserted on in tests.
type Outcome string

const (
	OutcomeRendered   Outcome = "rendered"
	OutcomeNotFound   Outcome = "not_found"
	OutcomeGuidance   Outcome = "guidance"
	OutcomeStoreError Outcome = "store_error"
	OutcomeStatic     Outcome = "static"
)

// Deps bundles everything a handler needs. Now feeds the complaint
// reference code and is injectable for tests.
type Deps struct {
	Store  Store
	Format *respond.Formatter
	Logger logger.Logger
	Now    func() time.Time
}

func NewDeps(store Store, format *respond.Formatter, log logger.Logger) *Deps {
	return &Deps{
		Store:  store,
		Format: format,
		Logger: log,
		Now:    time.Now,
	}
}
