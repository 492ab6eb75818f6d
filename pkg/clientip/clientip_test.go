package clientip

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.7:51234"
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	assert.Equal(t, "10.0.0.7", RealClientIP(r, false))
	assert.Equal(t, "203.0.113.9", RealClientIP(r, true))

	r.Header.Del("X-Forwarded-For")
	assert.Equal(t, "10.0.0.7", RealClientIP(r, true))

	r.RemoteAddr = "not-a-hostport"
	assert.Equal(t, "not-a-hostport", RealClientIP(r, false))
}
