package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/server/http/dto"
	"github.com/polkiloo/agromart/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	role := model.Role(req.Role)
	if role == "" {
		role = model.RoleBuyer
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Login, req.Password, role, req.Country)
	if err != nil {
		WriteError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "login": user.Login, "role": string(user.Role)})
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		WriteError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "login": user.Login, "role": string(user.Role)})
}
