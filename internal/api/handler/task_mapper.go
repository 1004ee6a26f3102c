package handler

import (
	"github.com/taskforge/task-tracker/internal/core/domain"
	"github.com/taskforge/task-tracker/internal/core/ports"
)

func toTaskInput(req taskRequest) ports.TaskInput {
	return ports.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	}
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Completed:   t.Completed,
		OwnerID:     t.OwnerID,
	}
}

func toTaskListResponse(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}
