package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"empathos/backend/internal/complaint"
	"empathos/backend/internal/config"
	"empathos/backend/internal/models"
)

type submitComplaintRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Category    string `form:"category" json:"category"`
}

// SubmitComplaint files a complaint for the logged-in individual user.
// Field validation (all three required) happens in the service.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	sess, ok := SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	var req submitComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if _, err := h.Complaints.Submit(sess.UserID, req.Title, req.Description, req.Category); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// HelpForm returns the data the complaint form needs: the suggested
// category tags. Category remains free-form on submission.
func (h *Handler) HelpForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": complaint.Categories})
}

// Dashboard returns the logged-in user's own complaints, newest first.
func (h *Handler) Dashboard(c *gin.Context) {
	sess, ok := SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	complaints, err := h.Complaints.ListForUser(sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username":   sess.Username,
		"complaints": complaints,
	})
}

// AdminDashboard returns every complaint joined with usernames plus a
// recent excerpt of chat activity across all users.
func (h *Handler) AdminDashboard(c *gin.Context) {
	complaints, err := h.Complaints.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	chatMessages, err := h.Chat.RecentGlobal(config.OversightChatLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"complaints":    complaints,
		"chat_messages": chatMessages,
	})
}

// UpdateComplaintStatus overwrites a complaint's status. The status value
// is passed through as received; a missing or unknown complaint id answers
// 404.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("complaint_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	status := models.ComplaintStatus(c.PostForm("status"))

	if err := h.Complaints.UpdateStatus(uint(id), status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}
