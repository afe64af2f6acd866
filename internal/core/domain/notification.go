package domain

import (
	"errors"
	"fmt"
	"time"
)

// NotificationStatus is the read state of a notification.
type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "Unread"
	NotificationRead   NotificationStatus = "Read"
)

var ErrNotificationNotFound = errors.New("notification not found")

// ErrNotificationExists signals the (user, case) pair already has an
// assignment notification. Backed by a unique index, so concurrent endorse
// calls collapse to this error instead of duplicating the alert.
var ErrNotificationExists = errors.New("notification already exists")

// Notification is a judge-facing alert tied to a case assignment.
type Notification struct {
	ID      string             `json:"id"`
	UserID  string             `json:"userId"`
	CaseID  string             `json:"caseId,omitempty"`
	Title   string             `json:"title"`
	Message string             `json:"message"`
	Status  NotificationStatus `json:"status"`
	SentAt  time.Time          `json:"sentAt"`
	Case    *CaseSummary       `json:"case,omitempty"`
}

// AssignmentMessage builds the message body for a judge-assignment alert.
func AssignmentMessage(title, caseNumber string) string {
	return fmt.Sprintf("You have been assigned a new case: %s (#%s)", title, caseNumber)
}
