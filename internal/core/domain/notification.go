package domain

import "errors"

var (
	ErrMailerNotConfigured = errors.New("mail transport not configured")
	ErrMailDelivery        = errors.New("mail delivery failed")
)

// NotificationKind classifies outbound notification emails.
type NotificationKind string

const (
	NotifyLowStock NotificationKind = "low_stock"
	NotifyRestock  NotificationKind = "restock"
)

// Email is a plain-text message handed to the mail transport.
type Email struct {
	To      []string
	Subject string
	Text    string
}

// Notification is a queued email tied to an inventory item.
type Notification struct {
	Kind    NotificationKind
	ItemID  string
	RefID   string
	Message Email
}

// DedupKey identifies a notification for idempotency purposes.
func (n Notification) DedupKey() string {
	return string(n.Kind) + ":" + n.ItemID + ":" + n.RefID
}
