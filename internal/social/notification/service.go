// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package notification

import (
	"context"
	"log/slog"

	"github.com/trananh/movira/pkg/pagination"
	"github.com/trananh/movira/pkg/uuidv7"
)

// Service implements the notification use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Notify creates a notification for a user. Implements the Notifier
// contract the social services deliver through.
func (service *Service) Notify(context context.Context, userID, title, message, link string) error {
	n := &Notification{
		ID:      uuidv7.New(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Link:    link,
	}
	return service.repo.Create(context, n)
}

// List returns a page of the user's notifications, newest first.
func (service *Service) List(context context.Context, userID string, params pagination.Params) ([]*Notification, pagination.Meta, error) {
	notifications, total, err := service.repo.ListByUser(context, userID, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if notifications == nil {
		notifications = []*Notification{}
	}
	return notifications, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// MarkRead marks one of the user's notifications as read.
func (service *Service) MarkRead(context context.Context, id, userID string) error {
	return service.repo.MarkRead(context, id, userID)
}

// MarkAllRead marks all of the user's unread notifications as read and
// returns how many were flipped.
func (service *Service) MarkAllRead(context context.Context, userID string) (int, error) {
	updated, err := service.repo.MarkAllRead(context, userID)
	if err != nil {
		return 0, err
	}

	service.logger.Info("notifications_marked_read",
		slog.String("user_id", userID),
		slog.Int("updated", updated),
	)
	return updated, nil
}
