// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package film

import (
	"context"
	"log/slog"

	"github.com/trananh/movira/pkg/pagination"
)

// Service implements the catalogue read side. Writes happen through the
// importer.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetBySlug returns one film with its credits attached.
func (service *Service) GetBySlug(context context.Context, slug string) (*Film, error) {
	f, err := service.repo.GetBySlug(context, slug)
	if err != nil {
		return nil, err
	}

	credits, err := service.repo.Credits(context, f.ID)
	if err != nil {
		return nil, err
	}

	if credits == nil {
		credits = []*Credit{}
	}
	f.Credits = credits
	return f, nil
}

// List returns a page of the catalogue, newest releases first.
func (service *Service) List(context context.Context, params pagination.Params) ([]*Film, pagination.Meta, error) {
	films, total, err := service.repo.List(context, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if films == nil {
		films = []*Film{}
	}
	return films, pagination.NewMeta(params.Page, params.Limit, total), nil
}
