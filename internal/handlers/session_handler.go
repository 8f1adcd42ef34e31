package handlers

import (
	"context"
	"errors"
	"net/http"

	"reorder-service/internal/models"
	"reorder-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionHandler struct {
	SessionService  *service.SessionService
	AnswerService   *service.AnswerService
	ProgressService *service.ProgressService
}

func NewSessionHandler(
	sessionService *service.SessionService,
	answerService *service.AnswerService,
	progressService *service.ProgressService,
) *SessionHandler {
	return &SessionHandler{
		SessionService:  sessionService,
		AnswerService:   answerService,
		ProgressService: progressService,
	}
}

type CreateSessionRequest struct {
	LessonID string `json:"lesson_id" binding:"required"`
	Level    int    `json:"level" binding:"required"`
}

// CreateSession starts a new session over every sentence of the lesson.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.SessionService.NewSession(context.Background(), req.LessonID, req.Level)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// CreateReviewSession starts a session over the sentences previously saved
// with WRONG status. No wrong sentences is an empty session, not an error.
func (h *SessionHandler) CreateReviewSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.SessionService.ReviewSession(context.Background(), req.LessonID, req.Level)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

type SubmitAnswerRequest struct {
	SentenceID  string   `json:"sentence_id" binding:"required"`
	Arrangement []string `json:"arrangement" binding:"required"`
	Level       int      `json:"level" binding:"required"`
}

// SubmitAnswer validates an arrangement. The canonical answer is disclosed
// in the response whether or not the submission was correct; persisting the
// outcome is the client's separate SaveProgress call.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.AnswerService.SubmitAnswer(context.Background(), req.SentenceID, req.Arrangement, req.Level)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sentence not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type SaveProgressRequest struct {
	LessonID           string   `json:"lesson_id" binding:"required"`
	SentenceID         string   `json:"sentence_id" binding:"required"`
	SelectedLevel      int      `json:"selected_level" binding:"required"`
	Status             string   `json:"status" binding:"required"`
	CurrentArrangement []string `json:"current_arrangement"`
	TimeRemaining      int      `json:"time_remaining"`
	AudioUsageCount    int      `json:"audio_usage_count"`
}

// SaveProgress upserts the resume slot for (lesson, sentence).
func (h *SessionHandler) SaveProgress(c *gin.Context) {
	var req SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress := &models.Progress{
		LessonID:           req.LessonID,
		SentenceID:         req.SentenceID,
		SelectedLevel:      req.SelectedLevel,
		Status:             req.Status,
		CurrentArrangement: req.CurrentArrangement,
		TimeRemaining:      req.TimeRemaining,
		AudioUsageCount:    req.AudioUsageCount,
	}
	if err := h.ProgressService.Save(context.Background(), progress); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Progress saved"})
}

// GetProgress returns the saved resume slot for (lesson, sentence).
func (h *SessionHandler) GetProgress(c *gin.Context) {
	lessonID := c.Query("lesson_id")
	sentenceID := c.Query("sentence_id")
	if lessonID == "" || sentenceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lesson_id and sentence_id are required"})
		return
	}

	progress, err := h.ProgressService.Get(context.Background(), lessonID, sentenceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Progress not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}
