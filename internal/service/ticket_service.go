package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bridge/internal/auth"
	"github.com/spec-kit/ticket-bridge/internal/dialog"
	"github.com/spec-kit/ticket-bridge/internal/domain"
	"github.com/spec-kit/ticket-bridge/internal/events"
	"github.com/spec-kit/ticket-bridge/internal/gateway"
	"github.com/spec-kit/ticket-bridge/internal/observability"
	"github.com/spec-kit/ticket-bridge/internal/ticketid"
	apperrors "github.com/spec-kit/ticket-bridge/pkg/util"
)

// SubmissionGuard deduplicates submissions. Claim reports whether the
// submission is new; production uses *persistence.SubmissionGuard.
type SubmissionGuard interface {
	Claim(ctx context.Context, sub domain.Submission) bool
}

// TicketService coordinates the slash-command and submission workflows.
type TicketService struct {
	verifier    *auth.SlashTokenVerifier
	gateway     gateway.Dialer
	ids         *ticketid.Generator
	guard       SubmissionGuard
	dispatcher  events.Dispatcher
	metrics     *observability.Metrics
	logger      *zap.Logger
	callbackURL string
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Verifier    *auth.SlashTokenVerifier
	Gateway     gateway.Dialer
	IDs         *ticketid.Generator
	Guard       SubmissionGuard
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
	Logger      *zap.Logger
	CallbackURL string
}

// NewTicketService creates the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		verifier:    deps.Verifier,
		gateway:     deps.Gateway,
		ids:         deps.IDs,
		guard:       deps.Guard,
		dispatcher:  deps.Dispatcher,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		callbackURL: deps.CallbackURL,
	}
}

// OpenTicketDialog authenticates a slash-command invocation and asks the
// platform to render the ticket dialog. An Unauthorized error is the only
// error surfaced to the caller; a failed dialog open is logged and
// swallowed so the command still gets its empty acknowledgment.
func (s *TicketService) OpenTicketDialog(ctx context.Context, token, triggerID string) error {
	if err := s.verifier.Verify(token); err != nil {
		return err
	}

	req := dialog.Build(triggerID, s.callbackURL)
	if err := s.gateway.OpenDialog(ctx, req); err != nil {
		s.metrics.RecordGatewayFailure("dialog open")
		s.logger.Error("failed to open ticket dialog",
			zap.String("trigger_id", triggerID),
			zap.Error(err))
		s.publishEvent(ctx, events.Event{
			Type: events.EventDialogOpenFailure,
			Payload: events.DialogOpenFailurePayload{
				TriggerID: triggerID,
				Reason:    err.Error(),
			},
		})
		return nil
	}

	s.metrics.RecordDialogOpened()
	return nil
}

// CreateTicket validates the submission, mints a ticket identifier, posts
// the ticket into the originating channel and sends the submitter an
// ephemeral confirmation. The confirmation is best-effort: it is attempted
// only after a verified successful post, and its failure never undoes the
// ticket.
func (s *TicketService) CreateTicket(ctx context.Context, sub domain.Submission) (*domain.Ticket, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	if !s.guard.Claim(ctx, sub) {
		s.logger.Info("duplicate submission ignored",
			zap.String("user_id", sub.UserID),
			zap.String("channel_id", sub.ChannelID))
		return nil, nil
	}

	ticket := &domain.Ticket{
		ID:         s.ids.NextID(),
		Submission: sub,
	}

	post := domain.Post{
		ChannelID: sub.ChannelID,
		Message:   formatTicketMessage(ticket),
		Props: map[string]any{
			"is_ticket": true,
			"ticket_id": ticket.ID,
		},
	}
	if err := s.gateway.CreatePost(ctx, post); err != nil {
		s.metrics.RecordGatewayFailure("post create")
		s.logger.Error("failed to post ticket",
			zap.String("ticket_id", ticket.ID),
			zap.String("channel_id", sub.ChannelID),
			zap.Error(err))
		return nil, err
	}

	s.metrics.RecordTicketCreated()
	s.logger.Info("ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("user_id", sub.UserID),
		zap.String("channel_id", sub.ChannelID))

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketCreated,
		TicketID:  ticket.ID,
		UserID:    sub.UserID,
		ChannelID: sub.ChannelID,
		Payload: events.TicketCreatedPayload{
			Cluster:  sub.Cluster,
			Resource: sub.Resource,
			Problem:  sub.Problem,
		},
	})

	s.sendConfirmation(ctx, ticket)
	return ticket, nil
}

func (s *TicketService) sendConfirmation(ctx context.Context, ticket *domain.Ticket) {
	confirmation := domain.Post{
		ChannelID: ticket.Submission.ChannelID,
		Message:   fmt.Sprintf("Ticket **%s** cree.", ticket.ID),
	}
	if err := s.gateway.CreateEphemeralPost(ctx, ticket.Submission.UserID, confirmation); err != nil {
		s.metrics.RecordGatewayFailure("ephemeral post")
		s.logger.Warn("failed to send ticket confirmation",
			zap.String("ticket_id", ticket.ID),
			zap.Error(err))
		return
	}
	s.publishEvent(ctx, events.Event{
		Type:      events.EventConfirmationSent,
		TicketID:  ticket.ID,
		UserID:    ticket.Submission.UserID,
		ChannelID: ticket.Submission.ChannelID,
	})
}

func validateSubmission(sub domain.Submission) error {
	missing := []string{}
	if strings.TrimSpace(sub.Cluster) == "" {
		missing = append(missing, dialog.FieldCluster)
	}
	if strings.TrimSpace(sub.Resource) == "" {
		missing = append(missing, dialog.FieldResource)
	}
	if strings.TrimSpace(sub.Problem) == "" {
		missing = append(missing, dialog.FieldProblem)
	}
	if sub.UserID == "" {
		missing = append(missing, "user_id")
	}
	if sub.ChannelID == "" {
		missing = append(missing, "channel_id")
	}
	if len(missing) > 0 {
		return apperrors.NewMalformedPayload("submission missing required fields",
			map[string]any{"missing": missing})
	}
	return nil
}

func formatTicketMessage(ticket *domain.Ticket) string {
	sub := ticket.Submission
	var b strings.Builder
	fmt.Fprintf(&b, "### %s - Ticket de <@%s>\n\n", ticket.ID, sub.UserID)
	fmt.Fprintf(&b, "**Cluster:** `%s`\n", sub.Cluster)
	fmt.Fprintf(&b, "**Ressource:** `%s`\n", sub.Resource)
	fmt.Fprintf(&b, "**Probleme:** %s", sub.Problem)
	if sub.Network != "" {
		fmt.Fprintf(&b, "\n**Reseau:** %s", sub.Network)
	}
	b.WriteString("\n")
	return b.String()
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
