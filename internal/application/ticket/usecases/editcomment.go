package usecases

import (
	"context"
	"fmt"

	"gmao/internal/domain/ticket"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type EditCommentCommand struct {
	TicketID   uint
	CommentID  uint
	NewContent string
	ActorID    uint
	ActorRole  authorization.Role
}

// EditCommentResult always carries the comment's current content. A denied
// or no-change edit is not an error toward the caller; the HTTP layer
// responds 200 with the unchanged state either way, so the attempt leaks
// nothing about authorization.
type EditCommentResult struct {
	CommentID uint
	Content   string
	Edited    bool
	Outcome   ticket.EditOutcome
}

type EditCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewEditCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *EditCommentUseCase {
	return &EditCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *EditCommentUseCase) Execute(ctx context.Context, cmd EditCommentCommand) (*EditCommentResult, error) {
	uc.logger.Infow("executing edit comment use case", "comment_id", cmd.CommentID, "editor_id", cmd.ActorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.CommentID == 0 {
		return nil, errors.NewValidationError("comment ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("comment %d not found", cmd.CommentID))
	}

	// A comment addressed through another ticket's URL is refused the same
	// silent way an unauthorized editor is.
	outcome := ticket.EditDenied
	if comment.TicketID() == cmd.TicketID {
		outcome = comment.Edit(cmd.ActorID, cmd.ActorRole, cmd.NewContent)
	}
	if outcome == ticket.EditApplied {
		if err := uc.commentRepo.Update(ctx, comment); err != nil {
			uc.logger.Errorw("failed to update comment", "comment_id", cmd.CommentID, "error", err)
			return nil, errors.NewInternalError("failed to update comment")
		}
		uc.logger.Infow("comment edited", "comment_id", cmd.CommentID, "editor_id", cmd.ActorID)
	} else {
		uc.logger.Debugw("comment edit without effect", "comment_id", cmd.CommentID, "outcome", outcome.String())
	}

	return &EditCommentResult{
		CommentID: comment.ID(),
		Content:   comment.Content(),
		Edited:    outcome == ticket.EditApplied,
		Outcome:   outcome,
	}, nil
}
