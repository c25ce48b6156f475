// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package like

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trananh/movira/internal/platform/apperr"
	"github.com/trananh/movira/internal/platform/constants"
	"github.com/trananh/movira/internal/social/subject"
)

// Notifier delivers best-effort notifications to subject owners.
type Notifier interface {
	Notify(context context.Context, userID, title, message, link string) error
}

// Service implements the like use cases.
type Service struct {
	repo     Repository
	subjects subject.Resolver
	throttle Throttle
	notifier Notifier
	logger   *slog.Logger
}

func NewService(repo Repository, subjects subject.Resolver, throttle Throttle, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		subjects: subjects,
		throttle: throttle,
		notifier: notifier,
		logger:   logger,
	}
}

/*
Like records that user likes the subject.

Description: Liking twice is a no-op that reports the current count; the
counter is only incremented when the relation row was actually created, so
repeated requests can never inflate it. The subject owner gets a
best-effort notification.

Parameters:
  - context: context.Context
  - kind: subject.Kind
  - subjectID: string
  - userID: string

Returns:
  - *Count: The counter state after the operation, liked=true
  - error: NotFound for unknown subjects, or execution errors
*/
func (service *Service) Like(context context.Context, kind subject.Kind, subjectID, userID string) (*Count, error) {
	target, err := service.subjects.Resolve(context, kind, subjectID)
	if err != nil {
		return nil, err
	}

	created, err := service.repo.InsertRelation(context, subjectID, userID)
	if err != nil {
		return nil, err
	}

	if !created {
		likes, err := service.repo.GetCount(context, kind, subjectID)
		if err != nil {
			return nil, err
		}
		return &Count{SubjectID: subjectID, Likes: likes, Liked: true}, nil
	}

	likes, err := service.repo.IncrementCount(context, kind, subjectID)
	if err != nil {
		return nil, err
	}

	service.notifyOwner(context, target, userID)

	service.logger.Info("subject_liked",
		slog.String("subject_id", subjectID),
		slog.String("subject_type", string(kind)),
		slog.Int64("likes", likes),
	)
	return &Count{SubjectID: subjectID, Likes: likes, Liked: true}, nil
}

/*
Unlike removes the like relation.

Description: Unliking something the user never liked is a Conflict, not a
silent no-op, so clients with stale state find out. The decrement floors at
zero.

Parameters:
  - context: context.Context
  - kind: subject.Kind
  - subjectID: string
  - userID: string

Returns:
  - *Count: The counter state after the operation, liked=false
  - error: Conflict when not liked, NotFound for unknown subjects
*/
func (service *Service) Unlike(context context.Context, kind subject.Kind, subjectID, userID string) (*Count, error) {
	if _, err := service.subjects.Resolve(context, kind, subjectID); err != nil {
		return nil, err
	}

	deleted, err := service.repo.DeleteRelation(context, subjectID, userID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperr.Conflict("Subject is not liked")
	}

	likes, err := service.repo.DecrementCount(context, kind, subjectID)
	if err != nil {
		return nil, err
	}

	return &Count{SubjectID: subjectID, Likes: likes, Liked: false}, nil
}

/*
Recount repairs a drifted counter from the relation table.

Description: Operator tooling for when a counter and its relation rows have
diverged. Throttled per subject through Redis so a misfiring dashboard
cannot hammer the table.

Parameters:
  - context: context.Context
  - kind: subject.Kind
  - subjectID: string

Returns:
  - *Count: The repaired counter value
  - error: RateLimited while the cooldown is live
*/
func (service *Service) Recount(context context.Context, kind subject.Kind, subjectID string) (*Count, error) {
	if _, err := service.subjects.Resolve(context, kind, subjectID); err != nil {
		return nil, err
	}

	acquired, err := service.throttle.TryAcquire(context, fmt.Sprintf("%s:%s", kind, subjectID), constants.RecountCooldown)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, apperr.RateLimited(int(constants.RecountCooldown.Seconds()))
	}

	likes, err := service.repo.Recount(context, kind, subjectID)
	if err != nil {
		return nil, err
	}

	service.logger.Warn("like_count_recounted",
		slog.String("subject_id", subjectID),
		slog.String("subject_type", string(kind)),
		slog.Int64("likes", likes),
	)
	return &Count{SubjectID: subjectID, Likes: likes, Liked: false}, nil
}

// notifyOwner sends a like notification; failures are logged and swallowed.
func (service *Service) notifyOwner(context context.Context, target *subject.Subject, likerID string) {
	if service.notifier == nil || target.OwnerID == "" || target.OwnerID == likerID {
		return
	}

	message := fmt.Sprintf("Someone liked your %s", target.Kind)
	link := fmt.Sprintf("/%ss/%s", target.Kind, target.ID)
	if err := service.notifier.Notify(context, target.OwnerID, "New like", message, link); err != nil {
		service.logger.Error("like_notification_failed",
			slog.String("subject_id", target.ID),
			slog.String("error", err.Error()),
		)
	}
}
