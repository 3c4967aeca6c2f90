package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"brm-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]interface{}
}

func newTestServer(t *testing.T, status int, body string, recorded *recordedRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.Method = r.Method
		recorded.Path = r.URL.Path
		recorded.Query = r.URL.RawQuery
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &recorded.Body)
		}
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Header().Set(constvars.HeaderXRequestID, "req-1")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCreateAccount(t *testing.T) {
	recorded := &recordedRequest{}
	server := newTestServer(t, http.StatusCreated, `{"id":"a1","Name":"Acme","createdAt":"2024-01-01T00:00:00.000Z","updatedAt":"2024-01-01T00:00:00.000Z"}`, recorded)

	account, err := New(server.URL).CreateAccount(context.Background(), Fields{"Name": "Acme"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/api/accounts", recorded.Path)
	assert.Equal(t, "Acme", recorded.Body["Name"])
	assert.Equal(t, "a1", account.ID)
	assert.Equal(t, "Acme", account.Name)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	recorded := &recordedRequest{}
	server := newTestServer(t, http.StatusNotFound, `{"error":"Account not found"}`, recorded)

	account, err := New(server.URL).GetAccount(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Account not found", apiErr.Message)
	assert.Equal(t, "req-1", apiErr.RequestID)
	assert.Equal(t, "/api/accounts/missing", recorded.Path)
}

func TestAPIErrorFallsBackToStatusText(t *testing.T) {
	recorded := &recordedRequest{}
	server := newTestServer(t, http.StatusBadGateway, "", recorded)

	err := New(server.URL).DeleteContact(context.Background(), "c1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
	assert.Equal(t, http.MethodDelete, recorded.Method)
}

func TestListResponsesByAssessment(t *testing.T) {
	recorded := &recordedRequest{}
	server := newTestServer(t, http.StatusOK, `[{"id":"r1","assessmentId":"as 1","status":"Not Started","responses":[],"timeline":[]}]`, recorded)

	list, err := New(server.URL).ListResponses(context.Background(), "as 1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "/api/responses", recorded.Path)
	assert.Equal(t, "assessmentId=as+1", recorded.Query)
}

func TestUpsertAnswerPayload(t *testing.T) {
	recorded := &recordedRequest{}
	server := newTestServer(t, http.StatusOK, `{"id":"r1","status":"In Progress"}`, recorded)

	response, err := New(server.URL, WithPrefix("v1/")).UpsertAnswer(context.Background(), "r1", "s1", "q1", 4)
	require.NoError(t, err)
	assert.Equal(t, "/v1/responses/r1/questions", recorded.Path)
	assert.Equal(t, "s1", recorded.Body["sectionId"])
	assert.Equal(t, "q1", recorded.Body["questionId"])
	assert.EqualValues(t, 4, recorded.Body["value"])
	assert.Equal(t, constvars.ResponseStatusInProgress, response.Status)
}

func TestEmptyPrefix(t *testing.T) {
	recorded := &recordedRequest{}
	server := newTestServer(t, http.StatusOK, `[]`, recorded)

	_, err := New(server.URL+"/", WithPrefix("/")).ListTemplates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/templates", recorded.Path)
}

func TestHealthDegraded(t *testing.T) {
	recorded := &recordedRequest{}
	server := newTestServer(t, http.StatusServiceUnavailable, `{"status":"degraded","storage":"unavailable","locker":"ok","events":"ok"}`, recorded)

	health, err := New(server.URL).Health(context.Background())
	assert.True(t, IsStatus(err, http.StatusServiceUnavailable))
	require.NotNil(t, health)
	assert.Equal(t, constvars.HealthStatusDegraded, health.Status)
	assert.Equal(t, "/healthz", recorded.Path)
}

func TestDecodeError(t *testing.T) {
	recorded := &recordedRequest{}
	server := newTestServer(t, http.StatusOK, `not json`, recorded)

	_, err := New(server.URL).GetResponseProgress(context.Background(), "r1")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "decode")
}
