package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ondernemercentraal.nl/pkg/apperrors"
	"ondernemercentraal.nl/pkg/queryparams"
	"ondernemercentraal.nl/services"
)

// TaskHandler serves the follow-up task lists.
type TaskHandler struct {
	taskService services.ITaskService
}

func NewTaskHandler() *TaskHandler {
	return &TaskHandler{taskService: services.NewTaskService()}
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	params := queryparams.DefaultListParams("due_date")
	if err := c.QueryParser(&params); err != nil {
		return apperrors.UserInput("Ongeldige lijstparameters.")
	}
	params.Validate()

	result, err := h.taskService.GetTasks(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *TaskHandler) GetTasksForCase(c *fiber.Ctx) error {
	caseID, err := parseUUIDParam(c, "caseID")
	if err != nil {
		return err
	}
	tasks, err := h.taskService.GetTasksForCase(c.UserContext(), caseID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}
