package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentUserRole extracts the authenticated user role from context.
func CurrentUserRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.UserRoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(model.Role)
	return role
}

// IDParam parses the named path parameter as an identifier.
func IDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// WriteError maps a domain error to the HTTP response.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
