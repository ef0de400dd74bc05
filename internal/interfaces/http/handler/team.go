package handler

import (
	"net/http"

	identityapp "github.com/facturo/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// maxLogoSize bounds logo uploads to 5 MiB
const maxLogoSize = 5 << 20

// TeamHandler handles tenant profile endpoints
type TeamHandler struct {
	BaseHandler
	teamService *identityapp.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService *identityapp.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// RegisterRoutes registers team routes on the given group
func (h *TeamHandler) RegisterRoutes(rg *gin.RouterGroup) {
	teams := rg.Group("/teams/current")
	{
		teams.GET("", h.Get)
		teams.PUT("", h.Update)
		teams.GET("/logo", h.GetLogo)
		teams.POST("/logo", h.UploadLogo)
	}
}

// Get handles GET /teams/current
func (h *TeamHandler) Get(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing session")
		return
	}

	resp, err := h.teamService.Get(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /teams/current
func (h *TeamHandler) Update(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing session")
		return
	}

	var req identityapp.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.teamService.Update(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetLogo handles GET /teams/current/logo
func (h *TeamHandler) GetLogo(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing session")
		return
	}

	data, contentType, err := h.teamService.GetLogo(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

// UploadLogo handles POST /teams/current/logo as a multipart upload with a
// "logo" file field
func (h *TeamHandler) UploadLogo(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing session")
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		h.BadRequest(c, "Missing 'logo' file field")
		return
	}
	if file.Size > maxLogoSize {
		h.BadRequest(c, "Logo file exceeds the 5 MiB limit")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer src.Close()

	resp, err := h.teamService.SetLogo(c.Request.Context(), tenantID, file.Filename, src)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
