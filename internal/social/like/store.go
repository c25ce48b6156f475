// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package like

import (
	"context"
	"time"

	"github.com/trananh/movira/internal/social/subject"
)

// Repository persists like relations and keeps the per-subject counters.
type Repository interface {
	// InsertRelation records that user likes subject. Returns false when the
	// relation already existed, in which case nothing was written.
	InsertRelation(context context.Context, subjectID, userID string) (bool, error)

	// DeleteRelation removes the relation. Returns false when the user had
	// not liked the subject.
	DeleteRelation(context context.Context, subjectID, userID string) (bool, error)

	// IncrementCount adds one to the subject's counter and returns the new
	// value. A NULL counter is treated as zero before the increment.
	IncrementCount(context context.Context, kind subject.Kind, subjectID string) (int64, error)

	// DecrementCount subtracts one with a floor at zero and returns the new
	// value.
	DecrementCount(context context.Context, kind subject.Kind, subjectID string) (int64, error)

	// Recount sets the counter to the number of relation rows and returns
	// the repaired value.
	Recount(context context.Context, kind subject.Kind, subjectID string) (int64, error)

	// GetCount reads the current counter value.
	GetCount(context context.Context, kind subject.Kind, subjectID string) (int64, error)
}

// Throttle rate-limits operator actions across API instances.
type Throttle interface {
	// TryAcquire claims the key for ttl. Returns false while a previous
	// claim is still live.
	TryAcquire(context context.Context, key string, ttl time.Duration) (bool, error)
}
