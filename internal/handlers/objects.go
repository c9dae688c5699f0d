package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-scheduler-api/internal/models"
	"task-scheduler-api/internal/services"
	"task-scheduler-api/pkg/lambda"
)

// ObjectHandler handles placeholder object creation
type ObjectHandler struct {
	objectService services.ObjectService
}

// NewObjectHandler creates a new object handler
func NewObjectHandler(objectService services.ObjectService) *ObjectHandler {
	return &ObjectHandler{
		objectService: objectService,
	}
}

// store writes one placeholder object and maps the outcome to a status
// and body. Failures are already logged by the service.
func (h *ObjectHandler) store(ctx context.Context) (int, interface{}) {
	if _, err := h.objectService.CreatePlaceholderObject(ctx); err != nil {
		return http.StatusInternalServerError, models.ErrorResponse{Error: models.ObjectFailedMessage}
	}
	return http.StatusOK, models.MessageResponse{Message: models.ObjectCreatedMessage}
}

// HandleStore always yields a response; storage failures become a 500
func (h *ObjectHandler) HandleStore(ctx context.Context) *lambda.Response {
	status, body := h.store(ctx)

	resp, err := lambda.JSON(status, body)
	if err != nil {
		return lambda.InternalError()
	}
	return resp
}

// @Summary Create a placeholder object
// @Description Write the fixed placeholder content to the object store under a generated key. Any request body is ignored.
// @Tags objects
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /objects [post]
func (h *ObjectHandler) CreateObject(c *gin.Context) {
	status, body := h.store(c.Request.Context())
	c.JSON(status, body)
}
