// internal/models/response.go
package models

// RoutingMethod records how a query's category was decided.
type RoutingMethod string

const (
	RoutedByRule       RoutingMethod = "rule"
	RoutedByClassifier RoutingMethod = "classifier"
	RoutedByOverride   RoutingMethod = "override"
)

// Response is the finished reply for a single support query.
// Delivered is set only when a reply email was attempted.
type Response struct {
	RequestID string        `json:"request_id"`
	Category  Category      `json:"category"`
	Method    RoutingMethod `json:"routing_method"`
	Body      string        `json:"body"`
	Delivered *bool         `json:"delivered,omitempty"`
}
