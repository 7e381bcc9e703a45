package model

import (
	"time"
)

type NotificationType string

const (
	NotificationPaymentReceived NotificationType = "PaymentReceived"
	NotificationBooksIssued     NotificationType = "BooksIssued"
	NotificationBookReturned    NotificationType = "BookReturned"
	NotificationBookRenewed     NotificationType = "BookRenewed"
	NotificationBookAvailable   NotificationType = "BookAvailable"

	AlertLowStock   NotificationType = "LowStock"
	AlertOutOfStock NotificationType = "OutOfStock"
)

// Notification is produced by the loan core; storage and delivery belong to
// the downstream notification consumers.
type Notification struct {
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Payload   map[string]any   `json:"payload,omitempty"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// StockReplenished is published when a return moves an item's availability
// from zero back above zero.
type StockReplenished struct {
	ItemUid   string `json:"itemUid"`
	Available int    `json:"available"`
}
