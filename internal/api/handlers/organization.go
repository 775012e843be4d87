package handlers

import (
	"net/http"

	"org-tenancy-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// UpdateOrganizationBody is the update payload when the target organization is named in the body
type UpdateOrganizationBody struct {
	OrganizationName string                            `json:"organization_name" example:"Acme Corp"`
	NewData          service.UpdateOrganizationRequest `json:"new_data"`
}

// CreateOrganization handles POST /org/create
// @Summary Create a new organization
// @Description Register an organization with its admin user and provision its tenant collection
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 200 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} ErrorResponse "Invalid request body or organization already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /org/create [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	org, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// GetOrganization handles GET /org/get
// @Summary Get organization by name
// @Description Get an organization record by its exact name
// @Tags organizations
// @Produce json
// @Param organization_name query string true "Organization name"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} ErrorResponse "Organization name is required"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /org/get [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	name := c.Query("organization_name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "organization_name query parameter is required"})
		return
	}

	org, err := h.service.GetByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization handles PUT /org/update
// @Summary Update an organization
// @Description Rename an organization and/or change its admin credentials. The target is taken from the
// @Description organization_name query parameter (body holds the new data) or from the body envelope.
// @Description A rename also moves the admin user to the new organization name, so later logins and deletes follow it.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization_name query string false "Current organization name"
// @Param update body UpdateOrganizationBody false "Target organization and new data"
// @Success 200 {object} service.UpdateOrganizationResponse "Successfully updated organization"
// @Failure 400 {object} ErrorResponse "Invalid request or new name already taken"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /org/update [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	oldName, req, ok := bindUpdate(c)
	if !ok {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), oldName, req)
	if err != nil {
		respondError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteOrganization handles DELETE /org/delete
// @Summary Delete an organization
// @Description Drop the tenant collection and remove the organization with its users
// @Tags organizations
// @Produce json
// @Param organization_name query string true "Organization name"
// @Success 200 {object} service.DeleteOrganizationResponse "Successfully deleted organization"
// @Failure 400 {object} ErrorResponse "Organization name is required"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /org/delete [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	name := c.Query("organization_name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "organization_name query parameter is required"})
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), name)
	if err != nil {
		respondError(c, err, "Failed to delete organization")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// bindUpdate reads the update target and new data from either request shape
func bindUpdate(c *gin.Context) (string, *service.UpdateOrganizationRequest, bool) {
	hasBody := c.Request.ContentLength != 0

	if oldName := c.Query("organization_name"); oldName != "" {
		var req service.UpdateOrganizationRequest
		if !hasBody {
			return oldName, &req, true
		}

		// The envelope shape is also accepted alongside the query; it must name the same target
		var envelope struct {
			OrganizationName string                             `json:"organization_name"`
			NewData          *service.UpdateOrganizationRequest `json:"new_data"`
		}
		if err := c.ShouldBindBodyWith(&envelope, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
			return "", nil, false
		}
		if envelope.NewData != nil {
			if envelope.OrganizationName != "" && envelope.OrganizationName != oldName {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "organization_name in the query and body do not match"})
				return "", nil, false
			}
			return oldName, envelope.NewData, true
		}

		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
			return "", nil, false
		}
		return oldName, &req, true
	}

	var body UpdateOrganizationBody
	if hasBody {
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
			return "", nil, false
		}
	}
	if body.OrganizationName == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "organization_name is required in the query or body"})
		return "", nil, false
	}
	return body.OrganizationName, &body.NewData, true
}
