package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wmimouni/voyagr-api/app/content"
	"github.com/wmimouni/voyagr-api/app/submission"
)

func NewHandler(contact ContactPipelineInterface, devReq DevRequestPipelineInterface,
	store *content.Store) *Handler {
	return &Handler{
		contact: contact,
		devReq:  devReq,
		store:   store,
	}
}

// SubmitContact handles the contact form. Any failure between body read and
// dispatch collapses into one opaque error response; the raw error is only
// logged server-side.
func (h *Handler) SubmitContact(c *gin.Context) {
	if !requirePost(c) {
		return
	}

	var inquiry submission.Inquiry
	submission.Decode(c.Request.Body, &inquiry)

	if err := h.contact.Run(c.Request.Context(), inquiry); err != nil {
		slog.Error("Contact inquiry delivery failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SubmitDevRequest handles the developer-on-demand form. Partial success is
// success: as long as one recipient got the notification the caller sees
// 200, with both outcome lists attached.
func (h *Handler) SubmitDevRequest(c *gin.Context) {
	if !requirePost(c) {
		return
	}

	var req submission.DevRequest
	submission.Decode(c.Request.Body, &req)

	successes, failures := h.devReq.Run(c.Request.Context(), req)

	if len(successes) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"ok":        true,
			"successes": successes,
			"failures":  failures,
		})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{
		"ok":       false,
		"failures": failures,
	})
}

func (h *Handler) GetProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Projects())
}

func (h *Handler) GetExperience(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Experiences())
}

// GetEvents serves the event collection. ?type= filters by event type;
// ?split=true partitions into upcoming and past instead.
func (h *Handler) GetEvents(c *gin.Context) {
	if c.Query("split") == "true" {
		upcoming, past := h.store.SplitEvents(time.Now())
		c.JSON(http.StatusOK, gin.H{
			"upcoming": upcoming,
			"past":     past,
		})
		return
	}

	if eventType := c.Query("type"); eventType != "" {
		c.JSON(http.StatusOK, h.store.EventsByType(eventType))
		return
	}

	c.JSON(http.StatusOK, h.store.Events())
}

func (h *Handler) GetRecognition(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Recognition())
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp":   time.Now().In(time.Local).Format(time.RFC3339),
		"projects":    len(h.store.Projects()),
		"experiences": len(h.store.Experiences()),
		"events":      len(h.store.Events()),
		"recognition": len(h.store.Recognition()),
	})
}

// requirePost enforces the submission endpoints' method contract: anything
// but POST gets 405 with an Allow header, body unread.
func requirePost(c *gin.Context) bool {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
		return false
	}
	return true
}
