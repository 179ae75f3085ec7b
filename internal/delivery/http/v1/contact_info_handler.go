package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactInfoHandler struct {
	infoUC domain.ContactInformationUsecase
}

// NewContactInfoHandler registers the contact information routes.
func NewContactInfoHandler(public *gin.RouterGroup, protected *gin.RouterGroup, infoUC domain.ContactInformationUsecase) {
	handler := &ContactInfoHandler{infoUC: infoUC}

	public.GET("/contact-info", handler.Get)
	protected.POST("/contact-info", handler.Create)
	protected.PUT("/contact-info", handler.Update)
}

// Get godoc
// @Summary      Get contact information
// @Description  Retrieve the contact card. Public endpoint.
// @Tags         contact-info
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contact-info [get]
func (h *ContactInfoHandler) Get(c *gin.Context) {
	info, err := h.infoUC.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact information retrieved", info)
}

// Create godoc
// @Summary      Create contact information
// @Description  Set up the contact card. Only one can exist.
// @Tags         contact-info
// @Accept       json
// @Produce      json
// @Param        info  body      domain.ContactInformationInput  true  "Contact information JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /contact-info [post]
// @Security     BearerAuth
func (h *ContactInfoHandler) Create(c *gin.Context) {
	var input domain.ContactInformationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	info, err := h.infoUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Contact information created", info)
}

// Update godoc
// @Summary      Update contact information
// @Description  Partially update the contact card.
// @Tags         contact-info
// @Accept       json
// @Produce      json
// @Param        info  body      domain.ContactInformationPatch  true  "Contact information patch JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /contact-info [put]
// @Security     BearerAuth
func (h *ContactInfoHandler) Update(c *gin.Context) {
	var patch domain.ContactInformationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	info, err := h.infoUC.Update(c.Request.Context(), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact information updated", info)
}
