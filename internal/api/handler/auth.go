package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"empathos/backend/internal/models"
)

type registerRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Role     string `form:"role" json:"role" binding:"required"`
}

// Register creates a new account and sends the caller to the login page.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email, password and role are required"})
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be individual or authority"})
		return
	}

	if _, err := h.Accounts.Register(req.Username, req.Email, req.Password, role); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

type loginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Role     string `form:"role" json:"role" binding:"required"`
}

// Login verifies credentials under the claimed role, opens a session, sets
// the session cookie and redirects to the role's dashboard.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, password and role are required"})
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		// An unknown claimed role can never match a stored account; same
		// answer as any other credential failure.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	user, err := h.Accounts.Authenticate(req.Username, req.Password, role)
	if err != nil {
		respondError(c, err)
		return
	}

	token, sess, err := h.Sessions.Create(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(SessionCookie, token, int(h.Sessions.TTL.Seconds()), "/", "", false, true)

	if sess.Role == models.RoleAuthority {
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout destroys the session and clears the cookie. It never fails:
// logging out twice, or without a session, lands on the same redirect.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		h.Sessions.Destroy(token)
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
