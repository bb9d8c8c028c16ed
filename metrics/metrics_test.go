package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdgraph/abcdgen/metrics"
)

func TestRecorder_ExposesRegisteredMetrics(t *testing.T) {
	r := metrics.New()
	r.RecordGeneration(50*time.Millisecond, 3, 2, 1, 0)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "abcdgen_generation_duration_seconds"))
	assert.True(t, strings.Contains(body, "abcdgen_global_collisions_total 3"))
	assert.True(t, strings.Contains(body, "abcdgen_unresolved_local_collisions_total 2"))
	assert.True(t, strings.Contains(body, "abcdgen_unresolved_global_collisions_total 1"))
}
