package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

// NewProfileHandler registers the profile routes. Reading is public,
// everything else requires admin auth.
func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	public.GET("/profile", handler.Get)
	protected.POST("/profile", handler.Create)
	protected.PUT("/profile", handler.Update)
}

// Get godoc
// @Summary      Get the profile
// @Description  Retrieve the site owner's profile. Public endpoint.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// Create godoc
// @Summary      Create the profile
// @Description  Set up the profile. Only one profile can exist.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileInput  true  "Profile JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /profile [post]
// @Security     BearerAuth
func (h *ProfileHandler) Create(c *gin.Context) {
	var input domain.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile created", profile)
}

// Update godoc
// @Summary      Update the profile
// @Description  Partially update the profile. Omitted fields are untouched.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfilePatch  true  "Profile patch JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	var patch domain.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.Update(c.Request.Context(), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}
