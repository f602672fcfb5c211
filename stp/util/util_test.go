package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {

	assert.False(t, DebugEnabled())

	t.Setenv("STP_DEBUG", "true")
	assert.True(t, DebugEnabled())

	t.Setenv("STP_DEBUG", "not-a-bool")
	assert.False(t, DebugEnabled())
}

func TestHttpTraceEnabled(t *testing.T) {

	assert.False(t, HttpTraceEnabled())

	t.Setenv("STP_HTTP_TRACE", "1")
	assert.True(t, HttpTraceEnabled())
}
