package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
)

func TestGetVacations(t *testing.T) {
	s := newTestServer(t, testConfig(), seedDocument(), nil)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"all", "/api/vacations", []string{"v1", "v2"}},
		{"trailing slash", "/api/vacations/", []string{"v1", "v2"}},
		{"by email", "/api/vacations?email=a@x.com", []string{"v1"}},
		{"by status", "/api/vacations?status=approved", []string{"v2"}},
		{"email and status", "/api/vacations?email=a@x.com&status=approved", []string{}},
		{"unknown status", "/api/vacations?status=cancelled", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(t, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rr.Code)

			got := make([]string, 0)
			for _, v := range decodeVacations(t, rr) {
				got = append(got, v.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetVacations_EmptyIsArray(t *testing.T) {
	s := newTestServer(t, testConfig(), domain.NewDocument(), nil)

	rr := s.do(t, http.MethodGet, "/api/vacations", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetVacations_StoreUnavailable(t *testing.T) {
	s := newTestServer(t, testConfig(), nil, nil)

	rr := s.do(t, http.MethodGet, "/api/vacations", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to load vacations"}`, rr.Body.String())
}

func TestCreateVacation(t *testing.T) {
	publisher := &fakePublisher{}
	s := newTestServer(t, testConfig(), seedDocument(), publisher)

	body := `{"id":"v3","employeeEmail":"a@x.com","startDate":"2024-06-01","endDate":"2024-06-10","status":"pending","requestedAt":"2024-05-01T08:00:00.000Z"}`
	rr := s.do(t, http.MethodPost, "/api/vacations", body)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, body, rr.Body.String())

	doc := s.document(t)
	require.Len(t, doc.Vacations, 3)
	assert.Equal(t, "v3", doc.Vacations[2].ID)
	assert.Equal(t, domain.VacationStatusPending, doc.Vacations[2].Status)
	assert.Empty(t, doc.Vacations[2].History)

	require.Len(t, publisher.mails, 1)
	assert.Equal(t, "email_queue", publisher.keys[0])
	assert.Equal(t, domain.MailTypeVacationRequested, publisher.mails[0].Type)
	assert.Equal(t, "boss@x.com", publisher.mails[0].To)
	assert.Equal(t, "v3", publisher.mails[0].Data["vacationId"])
	assert.Equal(t, "a@x.com", publisher.mails[0].Data["employeeEmail"])
}

func TestCreateVacation_DefaultsStatus(t *testing.T) {
	s := newTestServer(t, testConfig(), seedDocument(), nil)

	rr := s.do(t, http.MethodPost, "/api/vacations", `{"id":"v3","employeeEmail":"a@x.com"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	created := decodeVacation(t, rr)
	assert.Equal(t, domain.VacationStatusPending, created.Status)
	assert.NotEmpty(t, created.RequestedAt)
}

func TestCreateVacation_InvalidBody(t *testing.T) {
	s := newTestServer(t, testConfig(), seedDocument(), nil)

	rr := s.do(t, http.MethodPost, "/api/vacations", `{"id":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid vacation request body"}`, rr.Body.String())
	assert.Len(t, s.document(t).Vacations, 2)
}

func TestCreateVacation_TypedBody(t *testing.T) {
	s := newTestServer(t, testConfig(), seedDocument(), nil)

	rr := s.do(t, http.MethodPost, "/api/vacations", `{"id":"v9","employeeEmail":"a@x.com","status":"pending","reason":"trip"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "reason")

	rr = s.do(t, http.MethodPost, "/api/vacations", `{"id":12345,"employeeEmail":"a@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid vacation request body"}`, rr.Body.String())
	assert.Len(t, s.document(t).Vacations, 3)
}

func TestCreateVacation_StoreUnavailable(t *testing.T) {
	s := newTestServer(t, testConfig(), nil, nil)

	rr := s.do(t, http.MethodPost, "/api/vacations", `{"id":"v3"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to process vacation request"}`, rr.Body.String())
}

func TestUpdateVacationStatus(t *testing.T) {
	publisher := &fakePublisher{}
	s := newTestServer(t, testConfig(), seedDocument(), publisher)

	rr := s.do(t, http.MethodPatch, "/api/vacations/v1", `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	updated := decodeVacation(t, rr)
	assert.Equal(t, domain.VacationStatusApproved, updated.Status)
	require.Len(t, updated.History, 1)
	assert.Equal(t, domain.VacationStatusApproved, updated.History[0].Status)
	assert.NotEmpty(t, updated.History[0].Timestamp)

	assert.Equal(t, updated, s.document(t).Vacations[0])

	require.Len(t, publisher.mails, 1)
	assert.Equal(t, domain.MailTypeVacationStatusChanged, publisher.mails[0].Type)
	assert.Equal(t, "a@x.com", publisher.mails[0].To)
	assert.Equal(t, "approved", publisher.mails[0].Data["status"])
}

func TestUpdateVacationStatus_RepeatAppendsHistory(t *testing.T) {
	s := newTestServer(t, testConfig(), seedDocument(), nil)

	for i := 1; i <= 2; i++ {
		rr := s.do(t, http.MethodPatch, "/api/vacations/v2", `{"status":"approved"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeVacation(t, rr).History, i)
	}
}

func TestUpdateVacationStatus_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		error  string
	}{
		{"missing id", http.MethodPatch, "/api/vacations/", `{"status":"approved"}`, http.StatusBadRequest, "Vacation ID is required"},
		{"unknown id", http.MethodPatch, "/api/vacations/nope", `{"status":"approved"}`, http.StatusNotFound, "Vacation not found"},
		{"padded id is not trimmed", http.MethodPatch, "/api/vacations/%20v1%20", `{"status":"rejected"}`, http.StatusNotFound, "Vacation not found"},
		{"invalid status", http.MethodPatch, "/api/vacations/v1", `{"status":"cancelled"}`, http.StatusBadRequest, ""},
		{"missing status", http.MethodPatch, "/api/vacations/v1", `{}`, http.StatusBadRequest, ""},
		{"broken body", http.MethodPatch, "/api/vacations/v1", `{`, http.StatusBadRequest, ""},
		{"put missing id", http.MethodPut, "/api/vacations", `{"status":"approved"}`, http.StatusBadRequest, ""},
		{"put unknown id", http.MethodPut, "/api/vacations", `{"vacationId":"nope","status":"approved"}`, http.StatusNotFound, "Vacation not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, testConfig(), seedDocument(), nil)
			before := s.document(t)

			rr := s.do(t, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, rr.Code)

			var resp ErrorResponse
			require.NoError(t, decodeInto(rr, &resp))
			assert.NotEmpty(t, resp.Error)
			if tt.error != "" {
				assert.Equal(t, tt.error, resp.Error)
			}

			assert.Equal(t, before.Vacations, s.document(t).Vacations)
		})
	}
}

func TestUpdateVacationStatus_StrictPolicyConflict(t *testing.T) {
	cfg := testConfig()
	cfg.Vacation.StrictTransitions = true
	s := newTestServer(t, cfg, seedDocument(), nil)

	rr := s.do(t, http.MethodPatch, "/api/vacations/v2", `{"status":"rejected"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = s.do(t, http.MethodPatch, "/api/vacations/v1", `{"status":"rejected"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateVacationStatusByBody_Deprecated(t *testing.T) {
	s := newTestServer(t, testConfig(), seedDocument(), nil)

	rr := s.do(t, http.MethodPut, "/api/vacations", `{"vacationId":"v1","status":"rejected"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "true", rr.Header().Get("Deprecation"))

	updated := decodeVacation(t, rr)
	assert.Equal(t, domain.VacationStatusRejected, updated.Status)
	assert.Len(t, updated.History, 1)
}

func TestVacationLifecycle(t *testing.T) {
	s := newTestServer(t, testConfig(), domain.NewDocument(), nil)

	rr := s.do(t, http.MethodPost, "/api/vacations", `{"id":"v1","employeeEmail":"a@x.com","startDate":"2024-01-01","endDate":"2024-01-05","status":"pending"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/vacations?email=a@x.com", "")
	mine := decodeVacations(t, rr)
	require.Len(t, mine, 1)
	assert.Equal(t, "v1", mine[0].ID)

	rr = s.do(t, http.MethodPatch, "/api/vacations/v1", `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/vacations?status=pending", "")
	assert.Empty(t, decodeVacations(t, rr))

	rr = s.do(t, http.MethodGet, "/api/vacations?status=approved", "")
	approved := decodeVacations(t, rr)
	require.Len(t, approved, 1)
	assert.Equal(t, "v1", approved[0].ID)
	assert.Len(t, approved[0].History, 1)
}
