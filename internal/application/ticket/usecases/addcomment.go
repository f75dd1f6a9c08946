package usecases

import (
	"context"
	"fmt"
	"strings"

	"gmao/internal/domain/ticket"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID  uint
	Content   string
	ActorID   uint
	ActorRole authorization.Role
}

// AddCommentResult reports Skipped=true when the submitted content was blank:
// the request succeeds but no comment is created.
type AddCommentResult struct {
	CommentID uint
	TicketID  uint
	Skipped   bool
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.ActorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if !cmd.ActorRole.CanWrite() {
		return nil, errors.NewForbiddenError("role cannot comment on tickets")
	}

	if strings.TrimSpace(cmd.Content) == "" {
		// blank submissions are silently skipped, not rejected
		uc.logger.Debugw("blank comment skipped", "ticket_id", cmd.TicketID)
		return &AddCommentResult{TicketID: cmd.TicketID, Skipped: true}, nil
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	comment, err := ticket.NewComment(t.ID(), cmd.ActorID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to save comment")
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", comment.ID())

	return &AddCommentResult{
		CommentID: comment.ID(),
		TicketID:  t.ID(),
	}, nil
}
