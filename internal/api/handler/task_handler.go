package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-tracker/internal/api/metrics"
	"github.com/taskforge/task-tracker/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// taskID parses the :id path parameter. Non-numeric and non-positive ids are
// rejected as validation failures, like any other out-of-range input.
func taskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, "id must be a positive integer")
	}
	return id, nil
}

// List handles GET /todos.
//
// @Summary      List all tasks
// @Tags         todos
// @Produce      json
// @Success      200  {array}   taskResponse
// @Failure      404  {object}  errorResponse
// @Router       /todos [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.service.List(c.Request().Context())
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("list", "ok").Inc()
	return c.JSON(http.StatusOK, toTaskListResponse(tasks))
}

// Get handles GET /todos/:id.
//
// @Summary      Get a task by id
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  errorResponse
// @Router       /todos/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("get", "error").Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("get", "ok").Inc()
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Create handles POST /todos.
//
// @Summary      Create a task
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /todos [post]
func (h *TaskHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.Create(c.Request().Context(), principal, toTaskInput(req))
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Update handles PUT /todos/:id.
//
// @Summary      Update a task
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Task id"
// @Param        body  body      taskRequest  true  "Task details"
// @Success      202   {object}  taskResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /todos/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.Update(c.Request().Context(), principal, id, toTaskInput(req))
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusAccepted, toTaskResponse(task))
}

// Delete handles DELETE /todos/:id. Role-gated: only the elevated role may
// delete, regardless of ownership.
//
// @Summary      Delete a task
// @Tags         todos
// @Security     BearerAuth
// @Param        id  path  int  true  "Task id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todos/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, id); err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}
