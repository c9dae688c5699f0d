package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"task-scheduler-api/internal/models"
	"task-scheduler-api/internal/services"
	"task-scheduler-api/pkg/lambda"
)

// TaskHandler handles task creation and listing
type TaskHandler struct {
	taskService services.TaskService
	logger      *logrus.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService services.TaskService, logger *logrus.Logger) *TaskHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// HandleCreate stores the task described by the request body. Malformed
// JSON and backend failures are returned as errors.
func (h *TaskHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	createReq, err := decodeCreateTaskRequest(req.Body)
	if err != nil {
		h.logger.WithError(err).WithField("request_id", req.RequestID).Warn("Rejected task body")
		return nil, err
	}

	task, err := h.taskService.CreateTask(ctx, createReq)
	if err != nil {
		return nil, err
	}

	return lambda.JSON(http.StatusOK, models.CreateTaskResponse{TaskID: task.TaskID})
}

// HandleList returns every stored task. The request is ignored.
func (h *TaskHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	tasks, err := h.taskService.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	return lambda.JSON(http.StatusOK, models.NewListTasksResponse(tasks))
}

// @Summary Create a task
// @Description Store a task definition under a generated identifier. Both fields are optional and stored verbatim.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body models.CreateTaskRequest false "Task definition"
// @Success 200 {object} models.CreateTaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", ErrInvalidRequestBody, err)).SetType(gin.ErrorTypeBind)
		return
	}

	req, err := decodeCreateTaskRequest(body)
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.CreateTaskResponse{TaskID: task.TaskID})
}

// @Summary List tasks
// @Description Return every stored task, unfiltered and unpaginated
// @Tags tasks
// @Produce json
// @Success 200 {object} models.ListTasksResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.NewListTasksResponse(tasks))
}
