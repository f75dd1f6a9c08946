package ticket

import (
	"fmt"
	"time"

	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/biztime"
)

// Ticket is a unit of requested service work against a client's equipment or
// sites. It owns set-membership associations to equipment and sites; both are
// replaced wholesale on edit rather than patched incrementally.
type Ticket struct {
	id              uint
	clientID        uint
	assigneeID      *uint
	categoryID      *uint
	equipmentTypeID *uint
	title           string
	description     string
	kind            vo.TicketKind
	priority        vo.Priority
	status          vo.TicketStatus
	equipmentIDs    []uint
	siteIDs         []uint
	openedAt        time.Time
	closedAt        *time.Time
	updatedAt       time.Time
	comments        []*Comment
}

func NewTicket(
	clientID uint,
	title string,
	description string,
	kind vo.TicketKind,
	priority vo.Priority,
) (*Ticket, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid ticket kind")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()
	return &Ticket{
		clientID:     clientID,
		title:        title,
		description:  description,
		kind:         kind,
		priority:     priority,
		status:       vo.StatusOpen,
		equipmentIDs: []uint{},
		siteIDs:      []uint{},
		openedAt:     now,
		updatedAt:    now,
		comments:     []*Comment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	clientID uint,
	assigneeID *uint,
	categoryID *uint,
	equipmentTypeID *uint,
	title string,
	description string,
	kind vo.TicketKind,
	priority vo.Priority,
	status vo.TicketStatus,
	equipmentIDs []uint,
	siteIDs []uint,
	openedAt time.Time,
	closedAt *time.Time,
	updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid ticket kind")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if status.IsTerminal() != (closedAt != nil) {
		return nil, fmt.Errorf("closure timestamp must be set exactly for terminal statuses")
	}

	if equipmentIDs == nil {
		equipmentIDs = []uint{}
	}
	if siteIDs == nil {
		siteIDs = []uint{}
	}

	return &Ticket{
		id:              id,
		clientID:        clientID,
		assigneeID:      assigneeID,
		categoryID:      categoryID,
		equipmentTypeID: equipmentTypeID,
		title:           title,
		description:     description,
		kind:            kind,
		priority:        priority,
		status:          status,
		equipmentIDs:    equipmentIDs,
		siteIDs:         siteIDs,
		openedAt:        openedAt,
		closedAt:        closedAt,
		updatedAt:       updatedAt,
		comments:        []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) ClientID() uint {
	return t.clientID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) CategoryID() *uint {
	return t.categoryID
}

func (t *Ticket) EquipmentTypeID() *uint {
	return t.equipmentTypeID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Kind() vo.TicketKind {
	return t.kind
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) EquipmentIDs() []uint {
	ids := make([]uint, len(t.equipmentIDs))
	copy(ids, t.equipmentIDs)
	return ids
}

func (t *Ticket) SiteIDs() []uint {
	ids := make([]uint, len(t.siteIDs))
	copy(ids, t.siteIDs)
	return ids
}

func (t *Ticket) OpenedAt() time.Time {
	return t.openedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to newStatus. Entering a terminal status
// stamps the closure time; entering any non-terminal status clears it, which
// is how a resolved ticket is reopened. Reopening never touches the ledger:
// any consumption already recorded for this ticket stands.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	now := biztime.NowUTC()
	t.status = newStatus
	t.updatedAt = now

	if newStatus.IsTerminal() {
		t.closedAt = &now
	} else {
		t.closedAt = nil
	}

	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateDetails rewrites the descriptive fields from the edit form.
func (t *Ticket) UpdateDetails(
	clientID uint,
	title string,
	description string,
	kind vo.TicketKind,
	priority vo.Priority,
	categoryID *uint,
	equipmentTypeID *uint,
) error {
	if clientID == 0 {
		return fmt.Errorf("client ID is required")
	}
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !kind.IsValid() {
		return fmt.Errorf("invalid ticket kind")
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}

	t.clientID = clientID
	t.title = title
	t.description = description
	t.kind = kind
	t.priority = priority
	t.categoryID = categoryID
	t.equipmentTypeID = equipmentTypeID
	t.updatedAt = biztime.NowUTC()
	return nil
}

// ReplaceEquipments swaps the full equipment membership set. Duplicates are
// collapsed; order is not meaningful.
func (t *Ticket) ReplaceEquipments(equipmentIDs []uint) {
	t.equipmentIDs = dedupeIDs(equipmentIDs)
	t.updatedAt = biztime.NowUTC()
}

// ReplaceSites swaps the full site membership set.
func (t *Ticket) ReplaceSites(siteIDs []uint) {
	t.siteIDs = dedupeIDs(siteIDs)
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	return nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
