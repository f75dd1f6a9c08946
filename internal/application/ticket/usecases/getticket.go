package usecases

import (
	"context"
	"fmt"
	"time"

	"gmao/internal/domain/client"
	"gmao/internal/domain/ledger"
	"gmao/internal/domain/ticket"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/services/renderer"
)

type GetTicketQuery struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.Role
}

type CommentView struct {
	ID           uint      `json:"id"`
	AuthorID     uint      `json:"author_id"`
	Content      string    `json:"content"`
	ContentHTML  string    `json:"content_html"`
	IsEdited     bool      `json:"is_edited"`
	LastEditorID *uint     `json:"last_editor_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    *string   `json:"updated_at,omitempty"`
	// EditDiff is only populated for admin readers, and only on edited
	// comments.
	EditDiff string `json:"edit_diff,omitempty"`
}

type LedgerEntryView struct {
	ID        uint      `json:"id"`
	Kind      string    `json:"kind"`
	Amount    string    `json:"amount"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketDetail struct {
	ID              uint              `json:"id"`
	ClientID        uint              `json:"client_id"`
	ClientName      string            `json:"client_name"`
	ContractType    string            `json:"contract_type"`
	Balance         *string           `json:"balance,omitempty"`
	AssigneeID      *uint             `json:"assignee_id,omitempty"`
	CategoryID      *uint             `json:"category_id,omitempty"`
	EquipmentTypeID *uint             `json:"equipment_type_id,omitempty"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Kind            string            `json:"kind"`
	Priority        string            `json:"priority"`
	Status          string            `json:"status"`
	EquipmentIDs    []uint            `json:"equipment_ids"`
	SiteIDs         []uint            `json:"site_ids"`
	OpenedAt        time.Time         `json:"opened_at"`
	ClosedAt        *time.Time        `json:"closed_at,omitempty"`
	Comments        []CommentView     `json:"comments"`
	LedgerEntries   []LedgerEntryView `json:"ledger_entries"`
}

// GetTicketUseCase assembles the full detail view: the ticket, its comments
// in discussion order with rendered bodies, and its consumption entries in
// chronological order.
type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	clientRepo  client.ClientRepository
	ledgerRepo  ledger.LedgerRepository
	markdown    renderer.MarkdownRenderer
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	clientRepo client.ClientRepository,
	ledgerRepo ledger.LedgerRepository,
	markdown renderer.MarkdownRenderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		clientRepo:  clientRepo,
		ledgerRepo:  ledgerRepo,
		markdown:    markdown,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDetail, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	cl, err := uc.clientRepo.GetByID(ctx, t.ClientID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket client", "ticket_id", t.ID(), "client_id", t.ClientID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket client")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load comments")
	}

	entries, err := uc.ledgerRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load ledger entries")
	}

	detail := &TicketDetail{
		ID:              t.ID(),
		ClientID:        cl.ID(),
		ClientName:      cl.Name(),
		ContractType:    cl.ContractType().String(),
		AssigneeID:      t.AssigneeID(),
		CategoryID:      t.CategoryID(),
		EquipmentTypeID: t.EquipmentTypeID(),
		Title:           t.Title(),
		Description:     t.Description(),
		Kind:            t.Kind().String(),
		Priority:        t.Priority().String(),
		Status:          t.Status().String(),
		EquipmentIDs:    t.EquipmentIDs(),
		SiteIDs:         t.SiteIDs(),
		OpenedAt:        t.OpenedAt(),
		ClosedAt:        t.ClosedAt(),
		Comments:        make([]CommentView, 0, len(comments)),
		LedgerEntries:   make([]LedgerEntryView, 0, len(entries)),
	}
	if cl.Balance() != nil {
		balance := cl.Balance().String()
		detail.Balance = &balance
	}

	for _, c := range comments {
		view, err := uc.buildCommentView(c, query.ActorRole)
		if err != nil {
			return nil, err
		}
		detail.Comments = append(detail.Comments, view)
	}

	for _, e := range entries {
		detail.LedgerEntries = append(detail.LedgerEntries, LedgerEntryView{
			ID:        e.ID(),
			Kind:      e.Kind().String(),
			Amount:    e.Amount().String(),
			Note:      e.Note(),
			CreatedAt: e.CreatedAt(),
		})
	}

	return detail, nil
}

func (uc *GetTicketUseCase) buildCommentView(c *ticket.Comment, role authorization.Role) (CommentView, error) {
	contentHTML, err := uc.markdown.ToHTMLSanitized(c.Content())
	if err != nil {
		uc.logger.Errorw("failed to render comment", "comment_id", c.ID(), "error", err)
		return CommentView{}, errors.NewInternalError("failed to render comment")
	}

	view := CommentView{
		ID:           c.ID(),
		AuthorID:     c.AuthorID(),
		Content:      c.Content(),
		ContentHTML:  contentHTML,
		IsEdited:     c.IsEdited(),
		LastEditorID: c.LastEditorID(),
		CreatedAt:    c.CreatedAt(),
	}
	if c.UpdatedAt() != nil {
		updated := c.UpdatedAt().Format(time.RFC3339)
		view.UpdatedAt = &updated
	}

	// The edit diff is computed on read, never stored, and only shown to
	// administrators.
	if role.IsAdmin() && c.IsEdited() && c.PreviousContent() != nil {
		view.EditDiff = renderer.UnifiedDiff(*c.PreviousContent(), c.Content())
	}

	return view, nil
}
