package ticket

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a ticket.
type Status string

const (
	StatusAbierto   Status = "abierto"
	StatusEnProceso Status = "en_proceso"
	StatusResuelto  Status = "resuelto"
	StatusCerrado   Status = "cerrado"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAbierto, StatusEnProceso, StatusResuelto, StatusCerrado:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Priority ranks how urgently a ticket needs attention.
type Priority string

const (
	PriorityBaja  Priority = "baja"
	PriorityMedia Priority = "media"
	PriorityAlta  Priority = "alta"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityBaja, PriorityMedia, PriorityAlta:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// Ticket is a support request. The creator id is always resolved
// server-side from the authenticated username, never taken from the client.
type Ticket struct {
	id          uint
	title       string
	description string
	status      Status
	priority    Priority
	assignedTo  *uint
	createdBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a ticket with defaulted status and priority.
func NewTicket(title, description string, createdBy uint) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		status:      StatusAbierto,
		priority:    PriorityMedia,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rehydrates a ticket from persistence.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	status Status,
	priority Priority,
	assignedTo *uint,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		assignedTo:  assignedTo,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() Status {
	return t.status
}

func (t *Ticket) Priority() Priority {
	return t.priority
}

func (t *Ticket) AssignedTo() *uint {
	return t.assignedTo
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
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

func (t *Ticket) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) ChangePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	t.priority = priority
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assignedTo = &assigneeID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Unassign() {
	t.assignedTo = nil
	t.updatedAt = time.Now()
}

// Rewrite replaces title and description, stamping updatedAt.
func (t *Ticket) Rewrite(title, description string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	t.title = title
	t.description = description
	t.updatedAt = time.Now()
	return nil
}
