// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package comment_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trananh/movira/internal/platform/apperr"
	"github.com/trananh/movira/internal/platform/sec"
	"github.com/trananh/movira/internal/social/comment"
	"github.com/trananh/movira/internal/social/subject"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	comments map[string]*comment.Comment
	order    []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{comments: map[string]*comment.Comment{}}
}

func (r *fakeRepo) ListBySubject(_ context.Context, subjectID string) ([]*comment.Comment, error) {
	var result []*comment.Comment
	for _, id := range r.order {
		if c := r.comments[id]; c != nil && c.SubjectID == subjectID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeRepo) Get(_ context.Context, id string) (*comment.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, apperr.NotFound("Comment")
	}
	return c, nil
}

func (r *fakeRepo) Create(_ context.Context, c *comment.Comment) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.comments[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeRepo) UpdateBody(_ context.Context, id, body string) (*comment.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, apperr.NotFound("Comment")
	}
	c.Body = body
	c.UpdatedAt = time.Now()
	return c, nil
}

func (r *fakeRepo) CountReplies(_ context.Context, id string) (int, error) {
	total := 0
	for _, c := range r.comments {
		if c.ParentID != nil && *c.ParentID == id {
			total++
		}
	}
	return total, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return apperr.NotFound("Comment")
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeRepo) DeleteSubtree(_ context.Context, id string) (int, error) {
	if _, ok := r.comments[id]; !ok {
		return 0, apperr.NotFound("Comment")
	}

	removed := 0
	var remove func(target string)
	remove = func(target string) {
		for childID, c := range r.comments {
			if c.ParentID != nil && *c.ParentID == target {
				remove(childID)
			}
		}
		delete(r.comments, target)
		removed++
	}
	remove(id)
	return removed, nil
}

// fakeResolver resolves a fixed set of subjects.
type fakeResolver struct {
	known map[string]*subject.Subject
}

func (r *fakeResolver) Resolve(_ context.Context, kind subject.Kind, id string) (*subject.Subject, error) {
	s, ok := r.known[id]
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	return s, nil
}

func newService(repo *fakeRepo) *comment.Service {
	resolver := &fakeResolver{known: map[string]*subject.Subject{
		"post-1": {ID: "post-1", Kind: subject.KindPost, OwnerID: "owner-1"},
		"post-2": {ID: "post-2", Kind: subject.KindPost, OwnerID: "owner-2"},
	}}
	return comment.NewService(repo, resolver, slog.Default())
}

func memberClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: string(sec.RoleMember)}
}

/*
TestService_Create_TopLevel posts a root comment on an existing subject.
*/
func TestService_Create_TopLevel(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), subject.KindPost, "post-1", "user-1", nil, "first!")

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "post-1", created.SubjectID)
	assert.Nil(t, created.ParentID)
}

/*
TestService_Create_UnknownSubject rejects comments on missing subjects.
*/
func TestService_Create_UnknownSubject(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.Create(context.Background(), subject.KindPost, "post-404", "user-1", nil, "hello")

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Create_EmptyBody fails validation before touching storage.
*/
func TestService_Create_EmptyBody(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.Create(context.Background(), subject.KindPost, "post-1", "user-1", nil, "   ")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_Create_ParentOnDifferentSubject enforces the same-subject parent
invariant.
*/
func TestService_Create_ParentOnDifferentSubject(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	parent, err := service.Create(context.Background(), subject.KindPost, "post-2", "user-1", nil, "on post two")
	require.NoError(t, err)

	_, err = service.Create(context.Background(), subject.KindPost, "post-1", "user-1", &parent.ID, "cross-subject reply")

	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.As(err).Code)
}

/*
TestService_Edit_OnlyAuthor rejects edits from anyone but the author.
*/
func TestService_Edit_OnlyAuthor(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), subject.KindPost, "post-1", "user-1", nil, "original")
	require.NoError(t, err)

	_, err = service.Edit(context.Background(), created.ID, "user-2", "hijacked")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	updated, err := service.Edit(context.Background(), created.ID, "user-1", "revised")
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Body)
}

/*
TestService_Delete_WithReplies rejects deleting a parent that still has
replies, with the specific "delete them first" conflict.
*/
func TestService_Delete_WithReplies(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	parent, err := service.Create(context.Background(), subject.KindPost, "post-1", "user-1", nil, "parent")
	require.NoError(t, err)
	_, err = service.Create(context.Background(), subject.KindPost, "post-1", "user-2", &parent.ID, "reply")
	require.NoError(t, err)

	err = service.Delete(context.Background(), parent.ID, memberClaims("user-1"), false)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Contains(t, ae.Message, "replies")
}

/*
TestService_Delete_Cascade removes the whole subtree children-first.
*/
func TestService_Delete_Cascade(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	parent, err := service.Create(context.Background(), subject.KindPost, "post-1", "user-1", nil, "parent")
	require.NoError(t, err)
	reply, err := service.Create(context.Background(), subject.KindPost, "post-1", "user-2", &parent.ID, "reply")
	require.NoError(t, err)
	_, err = service.Create(context.Background(), subject.KindPost, "post-1", "user-3", &reply.ID, "nested")
	require.NoError(t, err)

	err = service.Delete(context.Background(), parent.ID, memberClaims("user-1"), true)

	require.NoError(t, err)
	assert.Empty(t, repo.comments)
}

/*
TestService_Delete_ModeratorOverride allows moderators to delete comments
they don't own, while other users are rejected.
*/
func TestService_Delete_ModeratorOverride(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), subject.KindPost, "post-1", "user-1", nil, "spam")
	require.NoError(t, err)

	err = service.Delete(context.Background(), created.ID, memberClaims("user-2"), false)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	moderator := &sec.AuthClaims{UserID: "mod-1", Role: string(sec.RoleModerator)}
	err = service.Delete(context.Background(), created.ID, moderator, false)
	require.NoError(t, err)
}
