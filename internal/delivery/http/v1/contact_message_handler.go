package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/metrics"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactMessageHandler struct {
	messageUC domain.ContactMessageUsecase
	collect   *metrics.Collector
}

// NewContactMessageHandler registers the contact message routes.
// Submission is the only write any visitor may perform; the inbox
// itself is admin-only. rateLimit throttles the public form.
func NewContactMessageHandler(public *gin.RouterGroup, protected *gin.RouterGroup, messageUC domain.ContactMessageUsecase, collect *metrics.Collector, rateLimit gin.HandlerFunc) {
	handler := &ContactMessageHandler{messageUC: messageUC, collect: collect}

	public.POST("/contact-messages", rateLimit, handler.Submit)

	group := protected.Group("/contact-messages")
	{
		group.GET("", handler.List)
		group.PATCH("/:id/read", handler.MarkAsRead)
		group.PATCH("/:id/replied", handler.MarkAsReplied)
		group.DELETE("/:id", handler.Delete)
	}
}

// Submit godoc
// @Summary      Submit a contact message
// @Description  Send a message through the contact form. Public endpoint, rate limited.
// @Tags         contact-messages
// @Accept       json
// @Produce      json
// @Param        message  body      domain.ContactMessageInput  true  "Contact message JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /contact-messages [post]
func (h *ContactMessageHandler) Submit(c *gin.Context) {
	var input domain.ContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	message, err := h.messageUC.Submit(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	h.collect.RecordContactSubmission()
	response.Success(c, http.StatusCreated, "Your message has been sent successfully!", message)
}

// List godoc
// @Summary      List contact messages
// @Description  List received messages, newest first. Filter with ?status=pending|read|replied.
// @Tags         contact-messages
// @Produce      json
// @Param        status  query     string  false  "Status filter"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /contact-messages [get]
// @Security     BearerAuth
func (h *ContactMessageHandler) List(c *gin.Context) {
	messages, err := h.messageUC.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Messages retrieved", messages)
}

// MarkAsRead godoc
// @Summary      Mark a message as read
// @Tags         contact-messages
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contact-messages/{id}/read [patch]
// @Security     BearerAuth
func (h *ContactMessageHandler) MarkAsRead(c *gin.Context) {
	message, err := h.messageUC.MarkAsRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Message marked as read", message)
}

// MarkAsReplied godoc
// @Summary      Mark a message as replied
// @Tags         contact-messages
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contact-messages/{id}/replied [patch]
// @Security     BearerAuth
func (h *ContactMessageHandler) MarkAsReplied(c *gin.Context) {
	message, err := h.messageUC.MarkAsReplied(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Message marked as replied", message)
}

// Delete godoc
// @Summary      Delete a message
// @Tags         contact-messages
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contact-messages/{id} [delete]
// @Security     BearerAuth
func (h *ContactMessageHandler) Delete(c *gin.Context) {
	if err := h.messageUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Message deleted", nil)
}
