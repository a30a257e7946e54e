package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	runner *schedulers.Runner
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	runner := schedulers.NewRunner(schedulers.Options{
		TimeQuantum:       config.RoundRobinTimeQuantum,
		LevelsTimeQuantum: config.MultilevelFeedbackQueueLevelsTimeQuantum,
	}, logger)
	return &SchedulerHandlerImpl{config: config, runner: runner, logger: logger.With("component", "api")}
}

// NewApp builds the fiber app with every route registered.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}

func (s *SchedulerHandlerImpl) invalidFormat(ctx *fiber.Ctx, err error) error {
	s.logger.Debug("invalid request body", "path", ctx.Path(), "error", err)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func (s *SchedulerHandlerImpl) scheduleError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, core.ErrInvalidInput) || errors.Is(err, schedulers.ErrUnknownPolicy) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	s.logger.Error("schedule failed", "path", ctx.Path(), "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		return s.invalidFormat(ctx, err)
	}
	response, err := s.runner.Schedule(policy, request)
	if err != nil {
		return s.scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicySJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyPriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyRoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyMLFQ)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		return s.invalidFormat(ctx, err)
	}
	all, err := s.runner.ScheduleAll(request)
	if err != nil {
		return s.scheduleError(ctx, err)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	policies := make([]string, 0, len(schedulers.Policies()))
	for _, p := range schedulers.Policies() {
		policies = append(policies, string(p))
	}
	return ctx.JSON(fiber.Map{
		"status":                   "ok",
		"policies":                 policies,
		"round_robin_time_quantum": s.config.RoundRobinTimeQuantum,
	})
}
