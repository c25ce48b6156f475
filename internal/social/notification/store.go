// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package notification

import (
	"context"

	"github.com/trananh/movira/pkg/pagination"
)

// Repository persists notifications.
type Repository interface {
	Create(context context.Context, n *Notification) error

	// ListByUser returns the user's notifications, newest first, with the
	// total for pagination metadata.
	ListByUser(context context.Context, userID string, params pagination.Params) ([]*Notification, int, error)

	// MarkRead flips one notification owned by userID to read.
	MarkRead(context context.Context, id, userID string) error

	// MarkAllRead flips every unread notification of the user.
	MarkAllRead(context context.Context, userID string) (int, error)
}
