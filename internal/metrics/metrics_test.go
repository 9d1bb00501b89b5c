package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bethropolis/stepsort/internal/core"
	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCountsEngineRun(t *testing.T) {
	em := event.NewManager()
	c := New()
	c.Attach(em)

	e := core.NewEngine(core.Config{Algorithm: types.Bubble})
	e.SetEventManager(em)
	e.Configure(item.StaticSeq(5, 3, 8, 1, 4))
	for e.Step() {
	}

	assert.Equal(t, 10.0, testutil.ToFloat64(c.comparisons.WithLabelValues("bubble")))
	assert.Equal(t, 6.0, testutil.ToFloat64(c.swaps.WithLabelValues("bubble")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sorts.WithLabelValues("bubble")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.resets))

	require.True(t, e.Undo())
	assert.Equal(t, 1.0, testutil.ToFloat64(c.undos))
	assert.Equal(t, float64(e.HistoryDepth()), testutil.ToFloat64(c.depth))
}

func TestCollectorIgnoresUnknownPayload(t *testing.T) {
	c := New()
	assert.False(t, c.handle(event.Event{Type: event.TypeComparison, Data: "nope"}))
}

func TestHandlerServesSeries(t *testing.T) {
	c := New()
	c.handle(event.Event{Type: event.TypeSwap, Data: event.SwapData{Algorithm: types.Selection}})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `stepsort_swaps_total{algorithm="selection"} 1`), body)
}
