package handler

import (
	"errors"
	"net/http"

	"uniformes/internal/service"
	"uniformes/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminSessionRequest carries the admin panel access code
type AdminSessionRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/api/session")
	{
		sessions.POST("", h.CreateSession)
		sessions.POST("/admin", h.CreateAdminSession)
	}
}

// CreateSession handles POST /api/session
// @Summary      Open an anonymous session
// @Description  Issues a fresh anonymous user id and bearer token
// @Tags         sessions
// @Produce      json
// @Success      201 {object} response.Response{data=service.SessionResponse}
// @Failure      500 {object} response.Response
// @Router       /api/session [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session, err := h.sessionService.SignInAnonymously(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to open session"))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, session))
}

// CreateAdminSession handles POST /api/session/admin
// @Summary      Open an admin session
// @Description  Verifies the access code and issues an admin bearer token
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        payload body AdminSessionRequest true "Access code"
// @Success      201 {object} response.Response{data=service.SessionResponse}
// @Failure      401 {object} response.Response
// @Router       /api/session/admin [post]
func (h *SessionHandler) CreateAdminSession(c *gin.Context) {
	var req AdminSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	session, err := h.sessionService.SignInAdmin(c.Request.Context(), req.AccessCode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAccessCode) {
			c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid access code"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to open session"))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, session))
}
