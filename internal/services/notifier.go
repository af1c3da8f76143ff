package services

import (
	"context"
	"errors"

	"github.com/arifhn/socialbase/backend/internal/errs"
	"github.com/arifhn/socialbase/backend/internal/models"
	"github.com/arifhn/socialbase/backend/internal/repositories"
	"gorm.io/gorm"
)

// Target identifies the object a notification points at, as an explicit
// (type, id) pair: post or comment.
type Target struct {
	Type string
	ID   string
}

// Notifier creates and manages notifications. Every qualifying action calls
// Notify unconditionally; the self-notification guard lives here and nowhere
// else.
type Notifier struct {
	notifications repositories.NotificationRepository
}

// NewNotifier creates a new Notifier
func NewNotifier(notificationRepo repositories.NotificationRepository) *Notifier {
	return &Notifier{notifications: notificationRepo}
}

// Notify inserts one notification row for the recipient. When the recipient
// is the actor the call is a no-op: self-actions never notify. Callers must
// not re-check this themselves.
func (n *Notifier) Notify(ctx context.Context, recipientID, actorID uint, verb string, target *Target) error {
	if recipientID == actorID {
		return nil
	}

	notification := &models.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        verb,
	}
	if target != nil {
		notification.TargetType = target.Type
		notification.TargetID = target.ID
	}
	return n.notifications.CreateNotification(ctx, notification)
}

// MarkRead flips a notification to read. The notification must belong to
// the recipient; marking an already-read notification succeeds.
func (n *Notifier) MarkRead(ctx context.Context, notificationID, recipientID uint) error {
	if _, err := n.notifications.GetByIDAndRecipient(ctx, notificationID, recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrNotFound
		}
		return err
	}
	return n.notifications.MarkAsRead(ctx, notificationID)
}

// MarkAllRead flips every unread notification of the recipient and returns
// the number affected.
func (n *Notifier) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	return n.notifications.MarkAllAsRead(ctx, recipientID)
}

// ListFor returns all notifications addressed to the recipient, newest first.
func (n *Notifier) ListFor(ctx context.Context, recipientID uint) ([]models.Notification, error) {
	return n.notifications.GetByRecipientID(ctx, recipientID)
}

// UnreadCount returns how many unread notifications the recipient has.
func (n *Notifier) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	return n.notifications.GetUnreadCount(ctx, recipientID)
}
