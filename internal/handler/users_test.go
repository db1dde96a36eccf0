package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUser(t *testing.T) {
	s := newTestServer(t, testConfig(), seedDocument(), nil)

	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"manager", "/api/user?email=boss@x.com", `{"email":"boss@x.com","role":"manager"}`},
		{"employee", "/api/user?email=a%40x.com", `{"email":"a@x.com","role":"employee"}`},
		{"unknown", "/api/user?email=nobody@x.com", `null`},
		{"case sensitive", "/api/user?email=BOSS@x.com", `null`},
		{"missing email", "/api/user", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(t, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rr.Body.String())
		})
	}
}

func TestGetUser_StoreUnavailable(t *testing.T) {
	s := newTestServer(t, testConfig(), nil, nil)

	rr := s.do(t, http.MethodGet, "/api/user?email=a@x.com", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to load user"}`, rr.Body.String())
}
