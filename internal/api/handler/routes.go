package handler

import (
	"github.com/gin-gonic/gin"

	"empathos/backend/internal/models"
)

// RegisterRoutes mounts the full HTTP surface. Page-shaped routes redirect
// to the login page on auth failures; API-shaped routes answer JSON.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	pages := r.Group("/", RequireSession(h.Sessions, true))
	{
		individual := pages.Group("/", RequireRole(models.RoleIndividual, true))
		individual.GET("/dashboard", h.Dashboard)
		individual.GET("/help/form", h.HelpForm)
		individual.POST("/complaints", h.SubmitComplaint)

		authority := pages.Group("/", RequireRole(models.RoleAuthority, true))
		authority.GET("/admin/dashboard", h.AdminDashboard)
	}

	api := r.Group("/", RequireSession(h.Sessions, false))
	{
		api.GET("/chat/messages", h.ChatHistory)
		api.POST("/chat/messages", h.SendMessage)
		api.GET("/ws/chat", h.ServeChatWS)

		admin := api.Group("/", RequireRole(models.RoleAuthority, false))
		admin.POST("/admin/complaints/status", h.UpdateComplaintStatus)
		admin.GET("/ws/oversight", h.ServeOversightWS)
	}
}
