package notification

import (
	"fmt"
	"time"
)

// Type categorizes why a notification was emitted.
type Type string

const (
	TypeTicketUpdate Type = "ticket_update"
	TypeNewMessage   Type = "new_message"
	TypeSystemUpdate Type = "system_update"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeTicketUpdate, TypeNewMessage, TypeSystemUpdate:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// Notification is a message delivered to a single recipient user.
type Notification struct {
	id        uint
	recipient uint
	content   string
	ntype     Type
	read      bool
	createdAt time.Time
}

func NewNotification(recipient uint, content string, ntype Type) (*Notification, error) {
	if recipient == 0 {
		return nil, fmt.Errorf("recipient is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if !ntype.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", ntype)
	}

	return &Notification{
		recipient: recipient,
		content:   content,
		ntype:     ntype,
		read:      false,
		createdAt: time.Now(),
	}, nil
}

func ReconstructNotification(id, recipient uint, content string, ntype Type, read bool, createdAt time.Time) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if recipient == 0 {
		return nil, fmt.Errorf("recipient is required")
	}
	if !ntype.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", ntype)
	}

	return &Notification{
		id:        id,
		recipient: recipient,
		content:   content,
		ntype:     ntype,
		read:      read,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) Recipient() uint {
	return n.recipient
}

func (n *Notification) Content() string {
	return n.content
}

func (n *Notification) Type() Type {
	return n.ntype
}

func (n *Notification) Read() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead flags the notification as seen. Marking twice is a no-op.
func (n *Notification) MarkAsRead() {
	n.read = true
}
