package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	cvUC domain.CVUsecase
}

// NewCVHandler registers the aggregated CV route.
func NewCVHandler(public *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	public.GET("/cv", handler.GetComplete)
}

// GetComplete godoc
// @Summary      Get the complete CV
// @Description  Retrieve the whole portfolio in one response, every section in curated order.
// @Tags         cv
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cv [get]
func (h *CVHandler) GetComplete(c *gin.Context) {
	cv, err := h.cvUC.GetComplete(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV retrieved", cv)
}
