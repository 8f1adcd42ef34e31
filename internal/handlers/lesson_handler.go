package handlers

import (
	"context"
	"net/http"

	"reorder-service/internal/models"
	"reorder-service/internal/service"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	Service *service.LessonService
}

func NewLessonHandler(s *service.LessonService) *LessonHandler {
	return &LessonHandler{Service: s}
}

func (h *LessonHandler) ListLessons(c *gin.Context) {
	lessons, err := h.Service.ListLessons(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lessons": lessons})
}

func (h *LessonHandler) GetLesson(c *gin.Context) {
	id := c.Param("id")
	lesson, err := h.Service.GetLesson(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var lesson models.Lesson
	if err := c.ShouldBindJSON(&lesson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateLesson(context.Background(), &lesson); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lesson)
}

func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteLesson(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *LessonHandler) ListSentences(c *gin.Context) {
	lessonID := c.Param("id")
	sentences, err := h.Service.ListSentences(context.Background(), lessonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sentences": sentences})
}

func (h *LessonHandler) CreateSentence(c *gin.Context) {
	lessonID := c.Param("id")
	var sentence models.Sentence
	if err := c.ShouldBindJSON(&sentence); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sentence.LessonID = lessonID
	if err := h.Service.CreateSentence(context.Background(), &sentence); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sentence)
}

type SetDistractorsRequest struct {
	Distractors []string `json:"distractors" binding:"required"`
}

func (h *LessonHandler) SetDistractors(c *gin.Context) {
	sentenceID := c.Param("sentenceId")
	var req SetDistractorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.SetDistractors(context.Background(), sentenceID, req.Distractors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "distractors updated"})
}
