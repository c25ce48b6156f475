// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package like_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trananh/movira/internal/platform/apperr"
	"github.com/trananh/movira/internal/social/like"
	"github.com/trananh/movira/internal/social/subject"
)

type relationKey struct {
	subjectID string
	userID    string
}

// fakeRepo keeps relations and counters in memory, mirroring the floor and
// coalesce semantics of the SQL implementation.
type fakeRepo struct {
	relations map[relationKey]bool
	counters  map[string]int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		relations: map[relationKey]bool{},
		counters:  map[string]int64{},
	}
}

func (r *fakeRepo) InsertRelation(_ context.Context, subjectID, userID string) (bool, error) {
	key := relationKey{subjectID, userID}
	if r.relations[key] {
		return false, nil
	}
	r.relations[key] = true
	return true, nil
}

func (r *fakeRepo) DeleteRelation(_ context.Context, subjectID, userID string) (bool, error) {
	key := relationKey{subjectID, userID}
	if !r.relations[key] {
		return false, nil
	}
	delete(r.relations, key)
	return true, nil
}

func (r *fakeRepo) IncrementCount(_ context.Context, _ subject.Kind, subjectID string) (int64, error) {
	r.counters[subjectID]++
	return r.counters[subjectID], nil
}

func (r *fakeRepo) DecrementCount(_ context.Context, _ subject.Kind, subjectID string) (int64, error) {
	if r.counters[subjectID] > 0 {
		r.counters[subjectID]--
	}
	return r.counters[subjectID], nil
}

func (r *fakeRepo) Recount(_ context.Context, _ subject.Kind, subjectID string) (int64, error) {
	var total int64
	for key := range r.relations {
		if key.subjectID == subjectID {
			total++
		}
	}
	r.counters[subjectID] = total
	return total, nil
}

func (r *fakeRepo) GetCount(_ context.Context, _ subject.Kind, subjectID string) (int64, error) {
	return r.counters[subjectID], nil
}

type fakeResolver struct {
	known map[string]*subject.Subject
}

func (r *fakeResolver) Resolve(_ context.Context, _ subject.Kind, id string) (*subject.Subject, error) {
	s, ok := r.known[id]
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	return s, nil
}

// fakeThrottle grants the first claim per key and denies until reset.
type fakeThrottle struct {
	claimed map[string]bool
}

func (t *fakeThrottle) TryAcquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	if t.claimed == nil {
		t.claimed = map[string]bool{}
	}
	if t.claimed[key] {
		return false, nil
	}
	t.claimed[key] = true
	return true, nil
}

type notification struct {
	userID  string
	message string
}

type fakeNotifier struct {
	sent []notification
}

func (n *fakeNotifier) Notify(_ context.Context, userID, _, message, _ string) error {
	n.sent = append(n.sent, notification{userID: userID, message: message})
	return nil
}

func newService(repo *fakeRepo, notifier like.Notifier) *like.Service {
	resolver := &fakeResolver{known: map[string]*subject.Subject{
		"post-1": {ID: "post-1", Kind: subject.KindPost, OwnerID: "owner-1"},
		"film-1": {ID: "film-1", Kind: subject.KindFilm},
	}}
	return like.NewService(repo, resolver, &fakeThrottle{}, notifier, slog.Default())
}

/*
TestService_Like_Increments counts the first like and notifies the owner.
*/
func TestService_Like_Increments(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	service := newService(repo, notifier)

	count, err := service.Like(context.Background(), subject.KindPost, "post-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Likes)
	assert.True(t, count.Liked)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "owner-1", notifier.sent[0].userID)
}

/*
TestService_Like_Idempotent verifies that liking twice leaves the counter
at one.
*/
func TestService_Like_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeNotifier{})

	first, err := service.Like(context.Background(), subject.KindPost, "post-1", "user-1")
	require.NoError(t, err)
	second, err := service.Like(context.Background(), subject.KindPost, "post-1", "user-1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Likes)
	assert.Equal(t, int64(1), second.Likes)
	assert.True(t, second.Liked)
}

/*
TestService_Like_OwnSubjectNoNotification skips the notification when the
liker owns the subject.
*/
func TestService_Like_OwnSubjectNoNotification(t *testing.T) {
	notifier := &fakeNotifier{}
	service := newService(newFakeRepo(), notifier)

	_, err := service.Like(context.Background(), subject.KindPost, "post-1", "owner-1")

	require.NoError(t, err)
	assert.Empty(t, notifier.sent)
}

/*
TestService_Unlike_RoundTrip returns the counter to its starting value.
*/
func TestService_Unlike_RoundTrip(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeNotifier{})

	_, err := service.Like(context.Background(), subject.KindPost, "post-1", "user-1")
	require.NoError(t, err)

	count, err := service.Unlike(context.Background(), subject.KindPost, "post-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Likes)
	assert.False(t, count.Liked)
}

/*
TestService_Unlike_NotLiked rejects removing a relation that does not exist.
*/
func TestService_Unlike_NotLiked(t *testing.T) {
	service := newService(newFakeRepo(), &fakeNotifier{})

	_, err := service.Unlike(context.Background(), subject.KindPost, "post-1", "user-1")

	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestService_Unlike_FloorsAtZero keeps a drifted counter from going negative.
*/
func TestService_Unlike_FloorsAtZero(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeNotifier{})

	// Relation exists but the counter has drifted to zero.
	repo.relations[relationKey{"post-1", "user-1"}] = true
	repo.counters["post-1"] = 0

	count, err := service.Unlike(context.Background(), subject.KindPost, "post-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Likes)
}

/*
TestService_Like_UnknownSubject refuses to like something that does not
exist.
*/
func TestService_Like_UnknownSubject(t *testing.T) {
	service := newService(newFakeRepo(), &fakeNotifier{})

	_, err := service.Like(context.Background(), subject.KindPost, "post-404", "user-1")

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Recount_RepairsDrift resets the counter to the relation count
and throttles the second attempt.
*/
func TestService_Recount_RepairsDrift(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeNotifier{})

	_, err := service.Like(context.Background(), subject.KindPost, "post-1", "user-1")
	require.NoError(t, err)
	_, err = service.Like(context.Background(), subject.KindPost, "post-1", "user-2")
	require.NoError(t, err)

	// Simulate drift.
	repo.counters["post-1"] = 40

	count, err := service.Recount(context.Background(), subject.KindPost, "post-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Likes)

	_, err = service.Recount(context.Background(), subject.KindPost, "post-1")
	require.Error(t, err)
	assert.Equal(t, "RATE_LIMITED", apperr.As(err).Code)
}

/*
TestService_Scenario_TwoUsersOneRetraction walks the counter through likes
from two users and one retraction.
*/
func TestService_Scenario_TwoUsersOneRetraction(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeNotifier{})
	ctx := context.Background()

	_, err := service.Like(ctx, subject.KindPost, "post-1", "user-1")
	require.NoError(t, err)
	_, err = service.Like(ctx, subject.KindPost, "post-1", "user-2")
	require.NoError(t, err)
	_, err = service.Like(ctx, subject.KindPost, "post-1", "user-2")
	require.NoError(t, err)

	count, err := service.Unlike(ctx, subject.KindPost, "post-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Likes)

	likes, err := repo.GetCount(ctx, subject.KindPost, "post-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
}
