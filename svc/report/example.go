package report

import (
	"time"

	"github.com/dmitrymomot/deckmail/pkg/table"
)

// Example is the body of GET /api/v1/example.
type Example struct {
	Request  Request `json:"example_request"`
	Response Result  `json:"example_response"`
}

// NewExample returns a sample request and the response it would produce at now.
func NewExample(now time.Time) Example {
	req := Request{
		BusinessName: "Philips EQ",
		Summary: "1. Finding One: Market share in CEE grew faster than forecast. " +
			"2. Finding Two: YTD performance is ahead of plan in every region but DACH. " +
			"3. Finding Three: Q4 pipeline needs attention.",
		Data: []table.Row{
			table.NewRow("Market", "CEE", "YTD", "+45%", "Q4", "+12%"),
			table.NewRow("Market", "DACH", "YTD", "-3%", "Q4", "-8%"),
			table.NewRow("Market", "Nordics", "YTD", "+18%", "Q4", "+5%"),
		},
		Email:   "recipient@example.com",
		CC:      []string{"manager@example.com"},
		Subject: "Philips EQ - Analysis Report",
	}

	id := CorrelationID(now, req.Email)
	status := 200
	return Example{
		Request: req,
		Response: Result{
			Success:         true,
			Message:         SuccessMessage,
			RequestID:       id,
			Timestamp:       now.Format(time.RFC3339),
			Filename:        Filename(req.BusinessName, id),
			EmailStatusCode: &status,
		},
	}
}
