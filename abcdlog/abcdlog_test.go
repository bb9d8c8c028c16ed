package abcdlog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abcdgraph/abcdgen/abcdlog"
)

func TestLogger_DropsBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := abcdlog.New(&buf, abcdlog.LevelWarn)
	l.Info("should not appear")
	l.Warn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
}

func TestLogger_CollisionReport(t *testing.T) {
	var buf bytes.Buffer
	l := abcdlog.New(&buf, abcdlog.LevelInfo)
	l.CollisionReport("unresolved cluster collisions", 2, 100)

	out := buf.String()
	assert.True(t, strings.Contains(out, "count=2"))
	assert.True(t, strings.Contains(out, "fraction=0.0400"))
}

func TestLogger_CollisionReport_SkipsZero(t *testing.T) {
	var buf bytes.Buffer
	l := abcdlog.New(&buf, abcdlog.LevelInfo)
	l.CollisionReport("unresolved global collisions", 0, 100)

	assert.Empty(t, buf.String())
}
