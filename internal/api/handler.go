package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"schedsim/internal/job"
	slogx "schedsim/internal/log"
	"schedsim/internal/sched"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config sched.Config
	log    *slog.Logger
}

func NewSchedulerHandlerImpl(config sched.Config, logger *slog.Logger) *SchedulerHandlerImpl {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SchedulerHandlerImpl{config: config, log: logger}
}

// NewApp wires the handler into a fiber app under /api/v1.
func NewApp(h SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", h.Algorithms)
		v1.Post("/schedule", h.Schedule)
		v1.Post("/compare", h.Compare)
	}
	return app
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	alg, err := sched.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.run(alg, request)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(newScheduleResponse(result))
}

func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	if request.Quantum == nil {
		return badRequest(ctx, fmt.Errorf("%w: compare needs an explicit quantum", sched.ErrInvalidQuantum).Error())
	}

	responses := make([]ScheduleResponse, 0, len(sched.Algorithms))
	for _, alg := range sched.Algorithms {
		result, err := s.run(alg, request)
		if err != nil {
			return s.fail(ctx, err)
		}
		responses = append(responses, newScheduleResponse(result))
	}
	return ctx.JSON(responses)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	names := make([]fiber.Map, 0, len(sched.Algorithms))
	for _, alg := range sched.Algorithms {
		names = append(names, fiber.Map{"name": alg.String(), "title": alg.Title()})
	}
	return ctx.JSON(names)
}

// run validates the request's processes and simulates alg over a fresh list.
// A missing quantum means the configured default; any value sent is used as is.
func (s *SchedulerHandlerImpl) run(alg sched.Algorithm, request ScheduleRequest) (*sched.Result, error) {
	for i, spec := range request.Processes {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("process %d: %w", i, err)
		}
	}

	cfg := s.config
	if request.Quantum != nil {
		cfg.Quantum = *request.Quantum
	}
	return sched.New(cfg, s.log).Run(alg, job.Processes(request.Processes))
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, sched.ErrNoProcesses),
		errors.Is(err, sched.ErrInvalidQuantum),
		errors.Is(err, sched.ErrUnknownAlgorithm),
		errors.Is(err, job.ErrInvalidRecord):
		return badRequest(ctx, err.Error())
	}

	s.log.Error("can not process request", slogx.ErrAttr(err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "can not process request"})
}

func badRequest(ctx *fiber.Ctx, msg string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
}
