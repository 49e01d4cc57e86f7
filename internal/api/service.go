// internal/api/service.go
package api

import (
	"context"
	"regexp"
	"time"

	"support-responder/internal/common/logger"
	"support-responder/internal/common/observability"
	"support-responder/internal/handlers"
	"support-responder/internal/models"
	"support-responder/internal/notify"
	"support-responder/internal/router"
	"support-responder/internal/stats"
)

var complaintRefPattern = regexp.MustCompile(`COM-\d{14}`)

// Service wires routing, dispatch and the optional side channels into
// one request flow. Stats recording, reply mail and complaint
// escalation are all best-effort: their failures are logged and never
// change the response.
type Service struct {
	router    *router.Router
	deps      *handlers.Deps
	stats     *stats.Recorder
	mailer    *notify.Mailer
	escalator *notify.Escalator
	obs       *observability.Observability
	logger    logger.Logger
}

func NewService(r *router.Router, deps *handlers.Deps, log logger.Logger) *Service {
	return &Service{
		router: r,
		deps:   deps,
		logger: log.WithFields(map[string]interface{}{"component": "service"}),
	}
}

// WithStats enables analytics recording.
func (s *Service) WithStats(rec *stats.Recorder) *Service {
	s.stats = rec
	return s
}

// WithMailer enables emailing finished replies to the requestor.
func (s *Service) WithMailer(m *notify.Mailer) *Service {
	s.mailer = m
	return s
}

// WithEscalator enables complaint escalation.
func (s *Service) WithEscalator(e *notify.Escalator) *Service {
	s.escalator = e
	return s
}

// WithObservability enables OpenTelemetry query metrics.
func (s *Service) WithObservability(obs *observability.Observability) *Service {
	s.obs = obs
	return s
}

// Respond classifies query, runs its handler and fires the side
// channels. It always returns a response; no failure mode escapes as
// an error.
func (s *Service) Respond(ctx context.Context, requestID, query, replyTo string) *models.Response {
	start := time.Now()
	category, method := s.router.Route(ctx, query)
	body, outcome := handlers.Dispatch(ctx, s.deps, category, query)

	if s.obs != nil {
		s.obs.RecordQueryProcessed(ctx, category.String(), string(outcome))
		s.obs.RecordQueryDuration(ctx, category.String(), float64(time.Since(start).Milliseconds()))
	}

	s.logger.Info("query resolved", map[string]interface{}{
		"requestId": requestID,
		"category":  category.String(),
		"method":    string(method),
		"outcome":   string(outcome),
	})

	if s.stats != nil {
		s.stats.RecordRouted(ctx, category)
	}
	if s.escalator != nil && category == models.CategoryComplaint {
		if ref := complaintRefPattern.FindString(body); ref != "" {
			_ = s.escalator.EscalateComplaint(ctx, ref, query)
		}
	}
	var delivered *bool
	if s.mailer != nil && replyTo != "" {
		err := s.mailer.SendReply(ctx, replyTo, "Re: your support query", body)
		ok := err == nil
		delivered = &ok
	}

	return &models.Response{
		RequestID: requestID,
		Category:  category,
		Method:    method,
		Body:      body,
		Delivered: delivered,
	}
}
