// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package person

import (
	"context"
	"log/slog"

	"github.com/trananh/movira/pkg/pagination"
)

// Service implements the celebrity read side. Writes happen through the
// importer.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetBySlug returns one person with their filmography attached.
func (service *Service) GetBySlug(context context.Context, slug string) (*Person, error) {
	p, err := service.repo.GetBySlug(context, slug)
	if err != nil {
		return nil, err
	}

	credits, err := service.repo.Filmography(context, p.ID)
	if err != nil {
		return nil, err
	}

	if credits == nil {
		credits = []*FilmCredit{}
	}
	p.Filmography = credits
	return p, nil
}

// List returns a page of people ordered by name.
func (service *Service) List(context context.Context, params pagination.Params) ([]*Person, pagination.Meta, error) {
	people, total, err := service.repo.List(context, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if people == nil {
		people = []*Person{}
	}
	return people, pagination.NewMeta(params.Page, params.Limit, total), nil
}
