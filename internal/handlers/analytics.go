package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KEYAJANI/demiland-sub000/internal/middleware"
	"github.com/KEYAJANI/demiland-sub000/internal/service"
)

type recordEventRequest struct {
	EventType string         `json:"eventType" binding:"required"`
	Payload   map[string]any `json:"payload"`
	UserID    *string        `json:"userId"`
}

func (h HandlerSet) RecordEvent(c *gin.Context) {
	var req recordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.ErrEventType.Error())
		return
	}

	userID := req.UserID
	if user, ok := middleware.CurrentUser(c); ok {
		userID = &user.ID
	}

	event, err := h.analytics.Record(c.Request.Context(), service.RecordEventInput{
		EventType: req.EventType,
		Payload:   req.Payload,
		UserID:    userID,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"id": event.ID})
}

func (h HandlerSet) ListEvents(c *gin.Context) {
	// Clamp before the offset is derived so limit and offset agree on the
	// effective page size.
	limit, _ := strconv.Atoi(c.DefaultQuery("perPage", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	events, err := h.analytics.List(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	resp := make([]eventResponse, 0, len(events))
	for _, event := range events {
		payload := event.Payload
		if payload == nil {
			payload = map[string]any{}
		}
		resp = append(resp, eventResponse{
			ID:        event.ID,
			EventType: event.EventType,
			Payload:   payload,
			UserID:    event.UserID,
			CreatedAt: event.CreatedAt,
		})
	}

	respondData(c, http.StatusOK, resp)
}
