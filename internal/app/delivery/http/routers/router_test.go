package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"brm-service/internal/app/config"
	"brm-service/internal/app/contracts"
	"brm-service/internal/app/delivery/http/controllers"
	"brm-service/internal/app/delivery/http/middlewares"
	"brm-service/internal/app/models"
	"brm-service/internal/app/services/core/accounts"
	assessmentResponses "brm-service/internal/app/services/core/assessment_responses"
	"brm-service/internal/app/services/core/assessments"
	"brm-service/internal/app/services/core/contacts"
	"brm-service/internal/app/services/core/coretest"
	"brm-service/internal/app/services/core/templates"
	"brm-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			EndpointPrefix:          "/api",
			RequestTimeoutInSeconds: 10,
			SubmitPolicy:            constvars.SubmitPolicyTrustClient,
		},
	}
}

func newTestServer(t *testing.T, internalConfig *config.InternalConfig) (*httptest.Server, *contracts.Repositories) {
	t.Helper()
	logger := zap.NewNop()
	repos, keyed := coretest.NewRepositories(t)

	accountUsecase := accounts.NewAccountUsecase(repos, keyed, logger)
	contactUsecase := contacts.NewContactUsecase(repos, keyed, logger)
	templateUsecase := templates.NewTemplateUsecase(repos, logger)
	assessmentUsecase := assessments.NewAssessmentUsecase(repos, keyed, logger)
	responseUsecase := assessmentResponses.NewAssessmentResponseUsecase(repos, keyed, &coretest.RecordingPublisher{}, internalConfig, logger)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewares.NewMiddlewares(logger, internalConfig), &Controllers{
		Account:            controllers.NewAccountController(logger, accountUsecase, contactUsecase, assessmentUsecase, internalConfig),
		Contact:            controllers.NewContactController(logger, contactUsecase, internalConfig),
		Template:           controllers.NewTemplateController(logger, templateUsecase, internalConfig),
		Assessment:         controllers.NewAssessmentController(logger, assessmentUsecase, responseUsecase, internalConfig),
		AssessmentResponse: controllers.NewAssessmentResponseController(logger, responseUsecase, internalConfig),
		Health:             controllers.NewHealthController(logger, repos.Health, nil, nil, internalConfig),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, repos
}

func call(t *testing.T, server *httptest.Server, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	res, err := server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res.StatusCode
}

func TestAccountContactScenario(t *testing.T) {
	server, _ := newTestServer(t, newTestInternalConfig())

	var account models.Account
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/accounts", `{"Name":"Acme","Industry":"Retail"}`, &account))
	assert.Equal(t, account.CreatedAt, account.UpdatedAt)

	var ann, bob models.Contact
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/contacts", map[string]string{"FirstName": "Ann", "AccountId": account.ID}, &ann))
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/contacts", map[string]string{"FirstName": "Bob", "AccountId": account.ID}, &bob))
	var other models.Contact
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/contacts", map[string]string{"FirstName": "Cid", "AccountId": "elsewhere"}, &other))

	var accountContacts []models.Contact
	require.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/api/accounts/"+account.ID+"/contacts", nil, &accountContacts))
	assert.Len(t, accountContacts, 2)

	var updated models.Account
	require.Equal(t, http.StatusOK, call(t, server, http.MethodPut, "/api/accounts/"+account.ID, `{"Phone":"555"}`, &updated))
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "555", updated.Phone)

	var message map[string]string
	require.Equal(t, http.StatusOK, call(t, server, http.MethodDelete, "/api/accounts/"+account.ID, nil, &message))
	assert.Equal(t, constvars.DeleteAccountSuccessMessage, message["message"])

	var remaining []models.Contact
	require.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/api/contacts", nil, &remaining))
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ID)

	var errBody map[string]string
	assert.Equal(t, http.StatusNotFound, call(t, server, http.MethodGet, "/api/accounts/"+account.ID, nil, &errBody))
	assert.Equal(t, constvars.ErrClientAccountNotFound, errBody["error"])
	assert.Equal(t, http.StatusNotFound, call(t, server, http.MethodDelete, "/api/accounts/"+account.ID, nil, nil))
}

func TestAssessmentResponseScenario(t *testing.T) {
	server, _ := newTestServer(t, newTestInternalConfig())

	var template models.Template
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/templates", `{
		"name": "Review",
		"sections": [
			{"title": "One", "questions": [{"text": "Owner", "type": "text", "required": true}]},
			{"title": "Two", "questions": [{"text": "Score", "type": "number"}]}
		]
	}`, &template))
	require.Len(t, template.Sections, 2)

	var assessment models.Assessment
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/assessments", map[string]string{"name": "Q1", "templateId": template.ID, "accountId": "acc1"}, &assessment))
	assert.Equal(t, constvars.AssessmentStatusDraft, assessment.Status)

	var response models.AssessmentResponse
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/responses", map[string]string{"assessmentId": assessment.ID}, &response))
	assert.Equal(t, constvars.ResponseStatusNotStarted, response.Status)
	assert.Equal(t, "acc1", response.AccountID)
	assert.Equal(t, http.StatusConflict, call(t, server, http.MethodPost, "/api/responses", map[string]string{"assessmentId": assessment.ID}, nil))

	s1, s2 := template.Sections[0], template.Sections[1]
	answer := map[string]interface{}{"sectionId": s1.ID, "questionId": s1.Questions[0].ID, "value": "Ann"}
	require.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "/api/responses/"+response.ID+"/questions", answer, &response))
	assert.Equal(t, constvars.ResponseStatusInProgress, response.Status)
	assert.Len(t, response.Timeline, 2)

	answer = map[string]interface{}{"sectionId": s2.ID, "questionId": s2.Questions[0].ID, "value": 7}
	require.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "/api/responses/"+response.ID+"/questions", answer, &response))
	assert.Len(t, response.Responses, 2)
	assert.Len(t, response.Timeline, 2)

	assert.Equal(t, http.StatusBadRequest, call(t, server, http.MethodPost, "/api/responses/"+response.ID+"/questions", `{"sectionId":"  ","value":1}`, nil))

	var progress models.ResponseProgress
	require.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/api/responses/"+response.ID+"/progress", nil, &progress))
	assert.True(t, progress.Complete)

	require.Equal(t, http.StatusOK, call(t, server, http.MethodPost, "/api/responses/"+response.ID+"/submit", nil, &response))
	assert.Equal(t, constvars.ResponseStatusSubmitted, response.Status)
	assert.NotEmpty(t, response.SubmittedAt)
	assert.Len(t, response.Timeline, 3)

	assert.Equal(t, http.StatusConflict, call(t, server, http.MethodPut, "/api/responses/"+response.ID, `{"status":"Not Started"}`, nil))

	require.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/api/assessments/"+assessment.ID, nil, &assessment))
	assert.Equal(t, constvars.AssessmentStatusCompleted, assessment.Status)

	var byAssessment []models.AssessmentResponse
	require.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/api/responses?assessmentId="+assessment.ID, nil, &byAssessment))
	assert.Len(t, byAssessment, 1)

	var single models.AssessmentResponse
	require.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/api/assessments/"+assessment.ID+"/response", nil, &single))
	assert.Equal(t, response.ID, single.ID)

	require.Equal(t, http.StatusOK, call(t, server, http.MethodDelete, "/api/assessments/"+assessment.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, server, http.MethodGet, "/api/responses/"+response.ID, nil, nil))
}

func TestRequireAnswersPolicy(t *testing.T) {
	internalConfig := newTestInternalConfig()
	internalConfig.App.SubmitPolicy = constvars.SubmitPolicyRequireAnswers
	server, _ := newTestServer(t, internalConfig)

	var template models.Template
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/templates", `{"name":"T","sections":[{"title":"S","questions":[{"text":"Q","type":"text","required":true}]}]}`, &template))
	var assessment models.Assessment
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/assessments", map[string]string{"templateId": template.ID}, &assessment))
	var response models.AssessmentResponse
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/responses", map[string]string{"assessmentId": assessment.ID}, &response))

	var errBody map[string]string
	assert.Equal(t, http.StatusUnprocessableEntity, call(t, server, http.MethodPost, "/api/responses/"+response.ID+"/submit", nil, &errBody))
	assert.Equal(t, constvars.ErrClientMissingRequiredAnswers, errBody["error"])
}

func TestMalformedJSON(t *testing.T) {
	server, _ := newTestServer(t, newTestInternalConfig())

	var errBody map[string]string
	assert.Equal(t, http.StatusBadRequest, call(t, server, http.MethodPost, "/api/accounts", `{"Name":`, &errBody))
	assert.NotEmpty(t, errBody["error"])
}

func TestAccountFieldsStoredAsSent(t *testing.T) {
	server, _ := newTestServer(t, newTestInternalConfig())

	var created map[string]interface{}
	require.Equal(t, http.StatusCreated, call(t, server, http.MethodPost, "/api/accounts", `{"Name":"Acme","Custom":"x","Phone":5551234}`, &created))
	assert.Equal(t, "x", created["Custom"])
	assert.EqualValues(t, 5551234, created["Phone"])

	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	var updated map[string]interface{}
	require.Equal(t, http.StatusOK, call(t, server, http.MethodPut, "/api/accounts/"+id, `{"Phone":"555-1234"}`, &updated))
	assert.Equal(t, "555-1234", updated["Phone"])
	assert.Equal(t, "x", updated["Custom"], "fields outside the payload survive")

	var listed []map[string]interface{}
	require.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/api/accounts", nil, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "x", listed[0]["Custom"])
}

func TestHealthAndUnknownRoutes(t *testing.T) {
	server, _ := newTestServer(t, newTestInternalConfig())

	var health map[string]string
	assert.Equal(t, http.StatusOK, call(t, server, http.MethodGet, "/healthz", nil, &health))
	assert.Equal(t, constvars.HealthStatusOK, health["status"])

	var errBody map[string]string
	assert.Equal(t, http.StatusNotFound, call(t, server, http.MethodGet, "/api/unknown", nil, &errBody))
	assert.Equal(t, constvars.ErrClientRouteNotFound, errBody["error"])
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	internalConfig := newTestInternalConfig()
	internalConfig.App.StaticDir = dir
	server, _ := newTestServer(t, internalConfig)

	get := func(path string) (int, string) {
		res, err := server.Client().Get(server.URL + path)
		require.NoError(t, err)
		defer res.Body.Close()
		var buf bytes.Buffer
		_, err = buf.ReadFrom(res.Body)
		require.NoError(t, err)
		return res.StatusCode, buf.String()
	}

	code, body := get("/accounts/123")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "<html>app</html>", body)

	code, body = get("/app.js")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "console.log(1)", body)

	code, _ = get("/api/nothing")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestNormalizePrefix(t *testing.T) {
	assert.Equal(t, "/api", normalizePrefix("api"))
	assert.Equal(t, "/api", normalizePrefix("/api/"))
	assert.Equal(t, "", normalizePrefix("/"))
	assert.Equal(t, "", normalizePrefix(""))
}
