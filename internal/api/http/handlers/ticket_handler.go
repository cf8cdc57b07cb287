package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bridge/internal/api/dto"
	"github.com/spec-kit/ticket-bridge/internal/dialog"
	"github.com/spec-kit/ticket-bridge/internal/domain"
	"github.com/spec-kit/ticket-bridge/internal/service"
	apperrors "github.com/spec-kit/ticket-bridge/pkg/util"
)

// TicketHandler exposes the slash-command and dialog-submission endpoints.
type TicketHandler struct {
	service *service.TicketService
	logger  *zap.Logger
}

// NewTicketHandler constructs handler.
func NewTicketHandler(ticketService *service.TicketService, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{service: ticketService, logger: logger}
}

// OpenDialog POST /ticket. Slash command /ticket -> opens the form.
//
// Mattermost expects a fast, always-200 empty response to the command
// itself; a failed dialog open is surfaced via logs only. The one
// exception is a bad slash token, which gets a 401.
func (h *TicketHandler) OpenDialog(c *fiber.Ctx) error {
	var req dto.SlashCommandRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("unreadable slash command body", zap.Error(err))
		return c.JSON(fiber.Map{})
	}

	if err := h.service.OpenTicketDialog(c.UserContext(), req.Token, req.TriggerID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{})
}

// SubmitDialog POST /ticket/submit. Dialog submitted -> posts the ticket.
//
// Every outcome acks with an empty object: the platform retries nothing
// and the user already got their feedback in-channel (or none, on
// cancel). Failures are logged, never returned.
func (h *TicketHandler) SubmitDialog(c *fiber.Ctx) error {
	var req dto.DialogSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("unreadable dialog submission body", zap.Error(err))
		return c.JSON(fiber.Map{})
	}

	if req.Cancelled {
		return c.JSON(fiber.Map{})
	}

	sub := domain.Submission{
		Cluster:   req.Submission[dialog.FieldCluster],
		Resource:  req.Submission[dialog.FieldResource],
		Problem:   req.Submission[dialog.FieldProblem],
		Network:   req.Submission[dialog.FieldNetwork],
		UserID:    req.UserID,
		ChannelID: req.ChannelID,
	}

	if _, err := h.service.CreateTicket(c.UserContext(), sub); err != nil {
		domainErr := apperrors.ToDomainError(err)
		h.logger.Error("ticket submission failed",
			zap.String("code", domainErr.Code),
			zap.String("user_id", req.UserID),
			zap.String("channel_id", req.ChannelID),
			zap.Error(err))
	}
	return c.JSON(fiber.Map{})
}
