package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/services"
)

// QuizProvider defines the quiz operations the handlers need.
type QuizProvider interface {
	Topics(ctx context.Context) ([]string, error)
	ByTopic(ctx context.Context, topic string) ([]models.Quiz, error)
	Create(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	Update(ctx context.Context, id string, quiz models.Quiz) (models.Quiz, error)
	Delete(ctx context.Context, id string) error
}

// QuizRequest represents the JSON body for creating or updating a question
// swagger:model QuizRequest
type QuizRequest struct {
	// Topic the question belongs to
	// required: true
	Topic string `json:"topic"`

	// Question text
	// required: true
	Question string `json:"question"`

	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Option3 string `json:"option3"`
	Option4 string `json:"option4"`

	// 1-based index of the right option
	Correct int `json:"correct"`

	Explanation string `json:"explanation"`
}

func (req QuizRequest) toModel() models.Quiz {
	return models.Quiz{
		Topic:       req.Topic,
		Question:    req.Question,
		Option1:     req.Option1,
		Option2:     req.Option2,
		Option3:     req.Option3,
		Option4:     req.Option4,
		Correct:     req.Correct,
		Explanation: req.Explanation,
	}
}

// NewListQuizTopicsHandler returns an HTTP handler listing distinct topics.
// @Summary List quiz topics
// @Tags quiz
// @Produce json
// @Success 200 {array} string "Distinct topics"
// @Router /api/quiz/topics [get]
func NewListQuizTopicsHandler(svc QuizProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := svc.Topics(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if topics == nil {
			topics = []string{}
		}
		writeJSON(w, http.StatusOK, topics)
	}
}

// NewGetQuizByTopicHandler returns an HTTP handler for a topic's questions.
// @Summary Get quiz questions by topic
// @Tags quiz
// @Produce json
// @Param topic path string true "Topic"
// @Success 200 {array} models.Quiz "Questions under the topic"
// @Router /api/quiz/{topic} [get]
func NewGetQuizByTopicHandler(svc QuizProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := chi.URLParam(r, "topic")

		quizzes, err := svc.ByTopic(r.Context(), topic)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if quizzes == nil {
			quizzes = []models.Quiz{}
		}
		writeJSON(w, http.StatusOK, quizzes)
	}
}

// NewCreateQuizHandler returns an HTTP handler for adding a question.
// @Summary Create quiz question
// @Tags quiz
// @Accept json
// @Produce json
// @Param quizRequest body handlers.QuizRequest true "Question"
// @Success 201 {object} models.Quiz "Stored question"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /api/quiz [post]
// @Security BearerAuth
func NewCreateQuizHandler(svc QuizProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuizRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Topic == "" || req.Question == "" {
			writeError(w, http.StatusBadRequest, "Topic and question are required")
			return
		}

		created, err := svc.Create(r.Context(), req.toModel())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewUpdateQuizHandler returns an HTTP handler for editing a question.
// @Summary Update quiz question
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param quizRequest body handlers.QuizRequest true "New question content"
// @Success 200 {object} models.Quiz "Updated question"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Router /api/quiz/{id} [put]
// @Security BearerAuth
func NewUpdateQuizHandler(svc QuizProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req QuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		updated, err := svc.Update(r.Context(), id, req.toModel())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Quiz question not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// NewDeleteQuizHandler returns an HTTP handler for removing a question.
// @Summary Delete quiz question
// @Tags quiz
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} handlers.MessageResponse "Question removed"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Router /api/quiz/{id} [delete]
// @Security BearerAuth
func NewDeleteQuizHandler(svc QuizProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := svc.Delete(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Quiz question not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Quiz question deleted successfully"})
	}
}
