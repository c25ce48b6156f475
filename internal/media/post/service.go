// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package post

import (
	"context"
	"log/slog"

	"github.com/trananh/movira/internal/platform/apperr"
	"github.com/trananh/movira/internal/platform/sec"
	"github.com/trananh/movira/internal/platform/validate"
	"github.com/trananh/movira/pkg/pagination"
	"github.com/trananh/movira/pkg/uuidv7"
)

// CreateInput carries the caller-supplied fields of a new post.
type CreateInput struct {
	Kind     Kind
	Title    string
	Body     string
	ImageURL string
}

// UpdateInput carries the editable fields of a post.
type UpdateInput struct {
	Title    string
	Body     string
	ImageURL string
}

// Service implements the feed item use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) validateFields(kind Kind, title, body, imageURL string) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, 200)
	validator.MaxLen(FieldBody, body, 20000)

	switch kind {
	case KindImage:
		validator.Required(FieldImageURL, imageURL).URL(FieldImageURL, imageURL)
	case KindArticle:
		validator.Required(FieldBody, body)
	default:
		validator.Custom(FieldKind, true, "Kind must be image or article")
	}

	return validator.Err()
}

// Create publishes a new post.
func (service *Service) Create(context context.Context, authorID string, input CreateInput) (*Post, error) {
	if err := service.validateFields(input.Kind, input.Title, input.Body, input.ImageURL); err != nil {
		return nil, err
	}

	p := &Post{
		ID:       uuidv7.New(),
		AuthorID: authorID,
		Kind:     input.Kind,
		Title:    input.Title,
		Body:     input.Body,
		ImageURL: input.ImageURL,
	}

	if err := service.repo.Create(context, p); err != nil {
		return nil, err
	}

	service.logger.Info("post_created",
		slog.String("post_id", p.ID),
		slog.String("kind", string(p.Kind)),
	)
	return p, nil
}

// Get returns one live post.
func (service *Service) Get(context context.Context, id string) (*Post, error) {
	return service.repo.Get(context, id)
}

// List returns a page of the feed, optionally filtered to one author.
func (service *Service) List(context context.Context, authorID string, params pagination.Params) ([]*Post, pagination.Meta, error) {
	posts, total, err := service.repo.List(context, authorID, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if posts == nil {
		posts = []*Post{}
	}
	return posts, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Update edits a post. Only the author may edit, and the kind is fixed at
// creation.
func (service *Service) Update(context context.Context, id, editorID string, input UpdateInput) (*Post, error) {
	existing, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	if existing.AuthorID != editorID {
		return nil, apperr.Forbidden("Only the author can edit a post")
	}

	if err := service.validateFields(existing.Kind, input.Title, input.Body, input.ImageURL); err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Body = input.Body
	existing.ImageURL = input.ImageURL

	if err := service.repo.Update(context, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a post together with its comments and likes. The author
// or a moderator may delete.
func (service *Service) Delete(context context.Context, id string, claims *sec.AuthClaims) error {
	existing, err := service.repo.Get(context, id)
	if err != nil {
		return err
	}

	isAuthor := existing.AuthorID == claims.UserID
	isModerator := sec.UserRole(claims.Role).AtLeast(sec.RoleModerator)
	if !isAuthor && !isModerator {
		return apperr.Forbidden("Only the author or a moderator can delete a post")
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("post_deleted", slog.String("post_id", id))
	return nil
}
