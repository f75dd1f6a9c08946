package ticket

import (
	"fmt"
	"strings"
	"time"

	"gmao/internal/shared/authorization"
	"gmao/internal/shared/biztime"
)

// EditOutcome is the result of an attempted comment edit. Denied and NoChange
// are both silent no-ops toward the requester, but callers can tell them
// apart.
type EditOutcome int

const (
	EditApplied EditOutcome = iota
	EditDenied
	EditNoChange
)

func (o EditOutcome) String() string {
	switch o {
	case EditApplied:
		return "applied"
	case EditDenied:
		return "denied"
	case EditNoChange:
		return "no_change"
	default:
		return "unknown"
	}
}

// Comment is one entry of a ticket's discussion thread. It keeps a
// single-slot edit history: previousContent holds exactly the content that
// the most recent edit replaced, nothing older.
type Comment struct {
	id              uint
	ticketID        uint
	authorID        uint
	content         string
	previousContent *string
	lastEditorID    *uint
	createdAt       time.Time
	updatedAt       *time.Time
}

func NewComment(ticketID uint, authorID uint, content string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	content = strings.TrimSpace(content)
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	content string,
	previousContent *string,
	lastEditorID *uint,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:              id,
		ticketID:        ticketID,
		authorID:        authorID,
		content:         content,
		previousContent: previousContent,
		lastEditorID:    lastEditorID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) PreviousContent() *string {
	return c.previousContent
}

func (c *Comment) LastEditorID() *uint {
	return c.lastEditorID
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() *time.Time {
	return c.updatedAt
}

// IsEdited reports whether the comment has been rewritten at least once.
func (c *Comment) IsEdited() bool {
	return c.updatedAt != nil
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// Edit rewrites the comment content on behalf of an editor. Only the author
// or an admin may edit; a blank or identical new content leaves the comment
// untouched. On success the replaced content moves into the single-slot
// history, overwriting whatever was there before.
func (c *Comment) Edit(editorID uint, editorRole authorization.Role, newContent string) EditOutcome {
	if !authorization.CanEditComment(editorID, editorRole, c.authorID) {
		return EditDenied
	}

	newContent = strings.TrimSpace(newContent)
	if newContent == "" || newContent == c.content {
		return EditNoChange
	}

	previous := c.content
	c.previousContent = &previous
	c.content = newContent
	now := biztime.NowUTC()
	c.updatedAt = &now
	c.lastEditorID = &editorID
	return EditApplied
}
