package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gentle-app/gentle-api/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMoodService is a mock implementation of MoodService
type MockMoodService struct {
	mock.Mock
}

func (m *MockMoodService) Checkin(ctx context.Context, in service.CheckinInput) (*service.CheckinOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckinOutput), args.Error(1)
}

// asUser injects an authenticated identity the way the auth middleware
// does.
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func setupMoodRouter(svc *MockMoodService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewMoodHandler(svc)
	r.POST("/v1/mood/checkin", asUser(userID), h.Checkin)
	return r
}

func TestMoodHandler_Checkin(t *testing.T) {
	userID := uuid.New()
	stepID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setup          func(*MockMoodService)
		expectedStatus int
	}{
		{
			name: "successful check-in",
			body: `{"energy":1,"emotion":"tired","note":"rough morning"}`,
			setup: func(svc *MockMoodService) {
				svc.On("Checkin", mock.Anything, mock.MatchedBy(func(in service.CheckinInput) bool {
					return in.UserID == userID && in.Energy == 1 && in.Emotion == "tired" &&
						in.Note != nil && *in.Note == "rough morning"
				})).Return(&service.CheckinOutput{
					StepID:    stepID,
					Content:   "sip some water",
					Rationale: "hydration is a gentle reset",
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing emotion",
			body:           `{"energy":2}`,
			setup:          func(svc *MockMoodService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "energy above range",
			body:           `{"energy":7,"emotion":"calm"}`,
			setup:          func(svc *MockMoodService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown emotion rejected by service",
			body: `{"energy":2,"emotion":"melancholy"}`,
			setup: func(svc *MockMoodService) {
				svc.On("Checkin", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidEmotion)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"energy":2,"emotion":"calm"}`,
			setup: func(svc *MockMoodService) {
				svc.On("Checkin", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockMoodService)
			tt.setup(svc)
			r := setupMoodRouter(svc, userID)

			req := httptest.NewRequest(http.MethodPost, "/v1/mood/checkin", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp struct {
					Data service.CheckinOutput `json:"data"`
				}
				assert.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, stepID, resp.Data.StepID)
				assert.Equal(t, "sip some water", resp.Data.Content)
			}
			svc.AssertExpectations(t)
		})
	}
}
