package handlers

import (
	"net/http"

	"org-tenancy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin authentication requests
type AdminHandler struct {
	service service.AdminServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login handles POST /admin/login
// @Summary Admin login
// @Description Exchange admin credentials for a bearer token valid for 30 minutes
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Admin credentials"
// @Success 200 {object} service.TokenResponse "Access token"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, token)
}
