package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/pos-service/internal/app/pos/queries/list_events"
	"github.com/light-bringer/pos-service/internal/models/m_outbox"
)

// EventsReadModel serves the event feed consumed by the mirror display and
// reporting tools.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) *EventsReadModel {
	return &EventsReadModel{
		client: client,
	}
}

// ListEvents retrieves events from the outbox_events table with filtering.
func (r *EventsReadModel) ListEvents(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, error) {
	// Build query with filters - select all columns needed by m_outbox.Data
	query := "SELECT event_id, event_type, aggregate_id, payload, status, created_at, processed_at, retry_count, error_message FROM outbox_events WHERE 1=1"
	params := make(map[string]interface{})

	if req.EventType != nil {
		query += " AND event_type = @eventType"
		params["eventType"] = *req.EventType
	}

	if req.AggregateID != nil {
		query += " AND aggregate_id = @aggregateID"
		params["aggregateID"] = *req.AggregateID
	}

	if req.Status != nil {
		query += " AND status = @status"
		params["status"] = *req.Status
	}

	query += " ORDER BY created_at DESC LIMIT @limit"
	params["limit"] = req.Limit

	stmt := spanner.Statement{
		SQL:    query,
		Params: params,
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []*m_outbox.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStore("failed to iterate events", err)
		}

		var data m_outbox.Data
		if err := row.Columns(
			&data.EventID,
			&data.EventType,
			&data.AggregateID,
			&data.Payload,
			&data.Status,
			&data.CreatedAt,
			&data.ProcessedAt,
			&data.RetryCount,
			&data.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("failed to parse event: %w", err)
		}
		events = append(events, &data)
	}

	return events, nil
}
