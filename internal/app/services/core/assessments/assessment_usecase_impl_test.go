package assessments

import (
	"context"
	"net/http"
	"testing"
	"time"

	"brm-service/internal/app/models"
	"brm-service/internal/app/services/core/coretest"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"
	"brm-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateAssessmentDefaultsToDraft(t *testing.T) {
	repos, keyed := coretest.NewRepositories(t)
	uc := NewAssessmentUsecase(repos, keyed, zap.NewNop())
	ctx := context.Background()

	draft, err := uc.CreateAssessment(ctx, []byte(`{"name":"Q1 review","templateId":"t1","accountId":"a1"}`))
	require.NoError(t, err)
	assert.Equal(t, constvars.AssessmentStatusDraft, draft.Status)

	sent, err := uc.CreateAssessment(ctx, []byte(`{"name":"Q2 review","status":"Sent","accountId":"a1"}`))
	require.NoError(t, err)
	assert.Equal(t, constvars.AssessmentStatusSent, sent.Status)

	byAccount, err := uc.FindAssessmentsByAccountID(ctx, "a1")
	require.NoError(t, err)
	assert.Len(t, byAccount, 2)
}

func TestUpdateAssessment(t *testing.T) {
	repos, keyed := coretest.NewRepositories(t)
	uc := NewAssessmentUsecase(repos, keyed, zap.NewNop())
	ctx := context.Background()

	created, err := uc.CreateAssessment(ctx, []byte(`{"name":"Review","dueDate":"2026-01-01"}`))
	require.NoError(t, err)

	updated, err := uc.UpdateAssessment(ctx, created.ID, []byte(`{"status":"Sent"}`))
	require.NoError(t, err)
	assert.Equal(t, "Review", updated.Name)
	assert.Equal(t, "2026-01-01", updated.DueDate)
	assert.Equal(t, constvars.AssessmentStatusSent, updated.Status)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)

	_, err = uc.UpdateAssessment(ctx, "missing", []byte(`{}`))
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
}

func TestDeleteAssessmentCascadesResponses(t *testing.T) {
	repos, keyed := coretest.NewRepositories(t)
	uc := NewAssessmentUsecase(repos, keyed, zap.NewNop())
	ctx := context.Background()

	kept, err := uc.CreateAssessment(ctx, []byte(`{"name":"Kept"}`))
	require.NoError(t, err)
	removed, err := uc.CreateAssessment(ctx, []byte(`{"name":"Removed"}`))
	require.NoError(t, err)

	require.NoError(t, repos.Responses.Insert(ctx, models.AssessmentResponse{ID: "r1", AssessmentID: removed.ID}))
	require.NoError(t, repos.Responses.Insert(ctx, models.AssessmentResponse{ID: "r2", AssessmentID: kept.ID}))

	require.NoError(t, uc.DeleteAssessmentByID(ctx, removed.ID))

	responses, err := repos.Responses.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "r2", responses[0].ID)

	err = uc.DeleteAssessmentByID(ctx, removed.ID)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
}

func TestDeleteAssessmentWaitsForResponseCreation(t *testing.T) {
	repos, keyed := coretest.NewRepositories(t)
	uc := NewAssessmentUsecase(repos, keyed, zap.NewNop())
	ctx := context.Background()

	assessment, err := uc.CreateAssessment(ctx, []byte(`{"name":"Q1 review","accountId":"a1"}`))
	require.NoError(t, err)

	locked := make(chan struct{})
	release := make(chan struct{})
	creating := make(chan error, 1)
	lockKey := utils.GenerateLockKey(constvars.LockKeyAssessmentResponseFormat, assessment.ID)
	go func() {
		creating <- keyed.WithLock(ctx, lockKey, func(ctx context.Context) error {
			close(locked)
			<-release
			return repos.Responses.Insert(ctx, models.AssessmentResponse{ID: "r1", AssessmentID: assessment.ID})
		})
	}()
	<-locked

	deleting := make(chan error, 1)
	go func() {
		deleting <- uc.DeleteAssessmentByID(ctx, assessment.ID)
	}()

	select {
	case err := <-deleting:
		t.Fatalf("delete finished while a response was being created: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-creating)
	require.NoError(t, <-deleting)

	remaining, err := repos.Responses.FindByReference(ctx, assessment.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining, "the response created first is cascaded")
}
