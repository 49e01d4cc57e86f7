// internal/router/router.go
package router

import (
	"context"
	"strings"

	"support-responder/internal/common/logger"
	"support-responder/internal/common/metrics"
	"support-responder/internal/models"
)

// Completer is the completion-service surface the router needs.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Router decides the category for a query. The ordered rule table is
// tried first and a rule match is final. Only unmatched queries reach
// the completion classifier, whose result is subject to the override
// pass.
type Router struct {
	classifier Completer
	logger     logger.Logger
}

func New(classifier Completer, log logger.Logger) *Router {
	return &Router{
		classifier: classifier,
		logger:     log.WithFields(map[string]interface{}{"component": "router"}),
	}
}

// Route returns the category for query plus the method that decided it.
// Classifier failures are recovered locally: the query routes to the
// catch-all category rather than surfacing an error.
func (r *Router) Route(ctx context.Context, query string) (models.Category, models.RoutingMethod) {
	q := strings.ToLower(query)

	category, matched := matchRules(q)
	method := models.RoutedByRule

	if !matched {
		method = models.RoutedByClassifier
		category = r.classify(ctx, query)

		if overridden := applyOverrides(q, category); overridden != category {
			r.logger.Debug("override pass changed category", map[string]interface{}{
				"from": category.String(),
				"to":   overridden.String(),
			})
			category = overridden
			method = models.RoutedByOverride
		}
	}

	metrics.QueriesRouted.WithLabelValues(category.String(), string(method)).Inc()
	return category, method
}

func (r *Router) classify(ctx context.Context, query string) models.Category {
	reply, err := r.classifier.Complete(ctx, systemPrompt, buildUserPrompt(query))
	if err != nil {
		r.logger.WithError(err).Warn("classifier unavailable, using catch-all category", nil)
		metrics.ClassifierCalls.WithLabelValues("error").Inc()
		return models.CategoryFallback
	}
	metrics.ClassifierCalls.WithLabelValues("ok").Inc()
	return categoryFromReply(reply)
}
