package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	eventbus "github.com/hanpama/graphdoc/internal/eventbus"
	events "github.com/hanpama/graphdoc/internal/events"
)

func TestCollectorsCountEvents(t *testing.T) {
	eventbus.Use(eventbus.New())
	t.Cleanup(func() { eventbus.Use(nil) })

	handler := Setup(prometheus.NewRegistry())
	ctx := context.Background()

	eventbus.Publish(ctx, events.OperationFinish{
		OperationType: "query",
		Duration:      5 * time.Millisecond,
	})
	eventbus.Publish(ctx, events.OperationFinish{
		OperationType: "query",
		Errors:        []error{errors.New("boom")},
		Duration:      time.Millisecond,
	})
	eventbus.Publish(ctx, events.OperationFinish{
		OperationType: "mutation",
		Duration:      time.Millisecond,
	})
	eventbus.Publish(ctx, events.HTTPFinish{Status: http.StatusOK})
	eventbus.Publish(ctx, events.HTTPFinish{Status: http.StatusBadGateway})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	require.Contains(t, body, `graphdoc_operations_total{operation_type="query"} 2`)
	require.Contains(t, body, `graphdoc_operations_total{operation_type="mutation"} 1`)
	require.Contains(t, body, `graphdoc_field_errors_total 1`)
	require.Contains(t, body, `graphdoc_http_responses_total{status="2xx"} 1`)
	require.Contains(t, body, `graphdoc_http_responses_total{status="5xx"} 1`)
}

func TestStatusLabel(t *testing.T) {
	require.Equal(t, "2xx", statusLabel(http.StatusOK))
	require.Equal(t, "3xx", statusLabel(http.StatusFound))
	require.Equal(t, "4xx", statusLabel(http.StatusNotFound))
	require.Equal(t, "5xx", statusLabel(http.StatusInternalServerError))
}
