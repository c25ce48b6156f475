// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package post_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trananh/movira/internal/media/post"
	"github.com/trananh/movira/internal/platform/apperr"
	"github.com/trananh/movira/internal/platform/sec"
	"github.com/trananh/movira/pkg/pagination"
)

type fakeRepo struct {
	posts map[string]*post.Post
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: map[string]*post.Post{}}
}

func (r *fakeRepo) Create(_ context.Context, p *post.Post) error {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.posts[p.ID] = p
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id string) (*post.Post, error) {
	p, ok := r.posts[id]
	if !ok || p.DeletedAt != nil {
		return nil, apperr.NotFound("Post")
	}
	return p, nil
}

func (r *fakeRepo) List(_ context.Context, authorID string, _ pagination.Params) ([]*post.Post, int, error) {
	var result []*post.Post
	for _, p := range r.posts {
		if p.DeletedAt == nil && (authorID == "" || p.AuthorID == authorID) {
			result = append(result, p)
		}
	}
	return result, len(result), nil
}

func (r *fakeRepo) Update(_ context.Context, p *post.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return apperr.NotFound("Post")
	}
	p.UpdatedAt = time.Now()
	r.posts[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	p, ok := r.posts[id]
	if !ok || p.DeletedAt != nil {
		return apperr.NotFound("Post")
	}
	now := time.Now()
	p.DeletedAt = &now
	return nil
}

func newService(repo *fakeRepo) *post.Service {
	return post.NewService(repo, slog.Default())
}

func TestService_Create_Article(t *testing.T) {
	service := newService(newFakeRepo())

	created, err := service.Create(context.Background(), "user-1", post.CreateInput{
		Kind:  post.KindArticle,
		Title: "Why practical effects age better",
		Body:  "A long look at miniatures.",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(0), created.LikeCount)
}

func TestService_Create_ImageRequiresURL(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.Create(context.Background(), "user-1", post.CreateInput{
		Kind:  post.KindImage,
		Title: "Set photo",
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestService_Create_UnknownKind(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.Create(context.Background(), "user-1", post.CreateInput{
		Kind:  post.Kind("poll"),
		Title: "Best sequel?",
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestService_Update_OnlyAuthor(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), "user-1", post.CreateInput{
		Kind:  post.KindArticle,
		Title: "Original",
		Body:  "Body",
	})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), created.ID, "user-2", post.UpdateInput{
		Title: "Hijacked",
		Body:  "Body",
	})

	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}

func TestService_Delete_ModeratorOverride(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), "user-1", post.CreateInput{
		Kind:  post.KindArticle,
		Title: "Spam",
		Body:  "Spam body",
	})
	require.NoError(t, err)

	member := &sec.AuthClaims{UserID: "user-2", Role: string(sec.RoleMember)}
	err = service.Delete(context.Background(), created.ID, member)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	moderator := &sec.AuthClaims{UserID: "mod-1", Role: string(sec.RoleModerator)}
	err = service.Delete(context.Background(), created.ID, moderator)
	require.NoError(t, err)

	_, err = service.Get(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
