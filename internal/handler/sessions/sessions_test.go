// File: internal/handler/sessions/sessions_test.go
package sessions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"mockmate/internal/api"
	"mockmate/internal/database"
	"mockmate/internal/middleware"
	"mockmate/internal/model"
	"mockmate/internal/service"
	"mockmate/internal/store"
)

type stubValidator struct{ err error }

func (v stubValidator) Validate(any) error { return v.err }

func restoreSessionFns(t *testing.T) {
	origList := listInterviewSessions
	origGet := getInterviewSession
	origGetQuestion := getQuestion
	origCreate := createInterviewSession
	origAnswer := setInterviewSessionAnswer
	origRate := rateInterviewSession
	origDelete := deleteInterviewSession
	origStats := getSessionStats
	t.Cleanup(func() {
		listInterviewSessions = origList
		getInterviewSession = origGet
		getQuestion = origGetQuestion
		createInterviewSession = origCreate
		setInterviewSessionAnswer = origAnswer
		rateInterviewSession = origRate
		deleteInterviewSession = origDelete
		getSessionStats = origStats
	})
}

func newCtx(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = stubValidator{}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &service.CustomClaims{
		UserID:           7,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1"},
	})
	return c, rec
}

func TestList(t *testing.T) {
	db := &database.FakeDB{}

	restoreSessionFns(t)
	listInterviewSessions = func(_ context.Context, _ database.DB, userID int) ([]model.InterviewSession, error) {
		require.Equal(t, 7, userID)
		return []model.InterviewSession{{ID: 2, QuestionText: "q"}}, nil
	}

	c, rec := newCtx(t, http.MethodGet, "/", "")
	require.NoError(t, List(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []api.InterviewSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Equal(t, "q", resp[0].QuestionText)
}

func TestGet(t *testing.T) {
	db := &database.FakeDB{}

	t.Run("found", func(t *testing.T) {
		restoreSessionFns(t)
		getInterviewSession = func(_ context.Context, _ database.DB, userID, id int) (*model.InterviewSession, error) {
			require.Equal(t, 7, userID)
			require.Equal(t, 2, id)
			return &model.InterviewSession{ID: 2}, nil
		}

		c, rec := newCtx(t, http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("2")
		require.NoError(t, Get(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		restoreSessionFns(t)
		getInterviewSession = func(context.Context, database.DB, int, int) (*model.InterviewSession, error) {
			return nil, pgx.ErrNoRows
		}

		c, rec := newCtx(t, http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("2")
		require.NoError(t, Get(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStart(t *testing.T) {
	db := &database.FakeDB{}
	body := `{"question_id":3}`

	t.Run("created with question details", func(t *testing.T) {
		restoreSessionFns(t)
		getQuestion = func(_ context.Context, _ database.DB, id int) (*model.Question, error) {
			require.Equal(t, 3, id)
			return &model.Question{ID: 3, Text: "q", Category: "Leadership", Difficulty: "Medium"}, nil
		}
		createInterviewSession = func(_ context.Context, _ database.DB, s *model.InterviewSession) error {
			require.Equal(t, 7, s.UserID)
			require.Equal(t, 3, s.QuestionID)
			s.ID = 11
			return nil
		}

		c, rec := newCtx(t, http.MethodPost, "/", body)
		require.NoError(t, Start(db)(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.InterviewSessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 11, resp.ID)
		require.Equal(t, "q", resp.QuestionText)
		require.Equal(t, "Leadership", resp.QuestionCategory)
	})

	t.Run("question missing or inactive", func(t *testing.T) {
		restoreSessionFns(t)
		getQuestion = func(context.Context, database.DB, int) (*model.Question, error) {
			return nil, pgx.ErrNoRows
		}

		c, rec := newCtx(t, http.MethodPost, "/", body)
		require.NoError(t, Start(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "question not found")
	})
}

func TestAnswer(t *testing.T) {
	db := &database.FakeDB{}
	body := `{"answer":"my answer","response_time_seconds":95}`

	t.Run("stored and returned", func(t *testing.T) {
		restoreSessionFns(t)
		setInterviewSessionAnswer = func(_ context.Context, _ database.DB, userID, id int, answer string, seconds *int) error {
			require.Equal(t, 7, userID)
			require.Equal(t, 2, id)
			require.Equal(t, "my answer", answer)
			require.NotNil(t, seconds)
			require.Equal(t, 95, *seconds)
			return nil
		}
		getInterviewSession = func(context.Context, database.DB, int, int) (*model.InterviewSession, error) {
			answer := "my answer"
			return &model.InterviewSession{ID: 2, UserAnswer: &answer}, nil
		}

		c, rec := newCtx(t, http.MethodPost, "/", body)
		c.SetParamNames("id")
		c.SetParamValues("2")
		require.NoError(t, Answer(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "my answer")
	})

	t.Run("session not found", func(t *testing.T) {
		restoreSessionFns(t)
		setInterviewSessionAnswer = func(context.Context, database.DB, int, int, string, *int) error {
			return pgx.ErrNoRows
		}

		c, rec := newCtx(t, http.MethodPost, "/", body)
		c.SetParamNames("id")
		c.SetParamValues("2")
		require.NoError(t, Answer(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRate(t *testing.T) {
	db := &database.FakeDB{}
	body := `{"rating":4,"notes":"better pace"}`

	restoreSessionFns(t)
	rateInterviewSession = func(_ context.Context, _ database.DB, userID, id, rating int, notes *string) error {
		require.Equal(t, 7, userID)
		require.Equal(t, 2, id)
		require.Equal(t, 4, rating)
		require.NotNil(t, notes)
		require.Equal(t, "better pace", *notes)
		return nil
	}
	getInterviewSession = func(context.Context, database.DB, int, int) (*model.InterviewSession, error) {
		rating := 4
		return &model.InterviewSession{ID: 2, Rating: &rating}, nil
	}

	c, rec := newCtx(t, http.MethodPost, "/", body)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, Rate(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDelete(t *testing.T) {
	db := &database.FakeDB{}

	t.Run("deleted", func(t *testing.T) {
		restoreSessionFns(t)
		deleteInterviewSession = func(_ context.Context, _ database.DB, userID, id int) error {
			require.Equal(t, 7, userID)
			require.Equal(t, 2, id)
			return nil
		}

		c, rec := newCtx(t, http.MethodDelete, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("2")
		require.NoError(t, Delete(db)(c))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		restoreSessionFns(t)
		deleteInterviewSession = func(context.Context, database.DB, int, int) error {
			return pgx.ErrNoRows
		}

		c, rec := newCtx(t, http.MethodDelete, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("2")
		require.NoError(t, Delete(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStats(t *testing.T) {
	db := &database.FakeDB{}

	restoreSessionFns(t)
	getSessionStats = func(_ context.Context, _ database.DB, userID int) (*store.InterviewSessionStats, error) {
		require.Equal(t, 7, userID)
		return &store.InterviewSessionStats{
			TotalSessions:     8,
			CompletedSessions: 6,
			CompletionRate:    75,
			AverageRating:     3.5,
			Categories:        []store.SessionCategoryStats{{Category: "Leadership", Sessions: 5}},
			Recent:            []model.InterviewSession{{ID: 8}},
		}, nil
	}

	c, rec := newCtx(t, http.MethodGet, "/", "")
	require.NoError(t, Stats(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.InterviewSessionStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 8, resp.TotalSessions)
	require.InDelta(t, 75.0, resp.CompletionRate, 0.001)
	require.Len(t, resp.Categories, 1)
	require.Len(t, resp.Recent, 1)
}
