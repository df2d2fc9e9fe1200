package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, middlewares ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", append(middlewares, handler.SubmitContact)...)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the contact form and emails the site owner. Accepts form-encoded or JSON bodies.
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        name         formData  string  true   "Visitor name"
// @Param        email        formData  string  true   "Visitor email"
// @Param        projectType  formData  string  false  "Kind of project"
// @Param        message      formData  string  true   "Message (at least 10 characters)"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response{error=map[string]string}
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var form domain.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid form submission"))
		return
	}

	result, err := h.contactUC.Submit(c.Request.Context(), &form)
	if err != nil {
		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			c.Error(apperror.BadRequest(usecase.MsgContactInvalid).WithDetails(ve.Fields))
			return
		}
		// Provider details were logged by the usecase and never reach the client
		c.Error(apperror.BadGateway(usecase.MsgContactFailed, err))
		return
	}

	response.Success(c, http.StatusOK, result.Message, nil)
}
