// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package importer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/trananh/movira/internal/platform/request"
	"github.com/trananh/movira/internal/platform/respond"
	"github.com/trananh/movira/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type importRequest struct {
	TMDBID int64 `json:"tmdb_id"`
}

// Routes returns the operator import routes, mounted under /admin.
func (handler *Handler) Routes() func(chi.Router) {
	return func(router chi.Router) {
		router.Post("/import/film", handler.importFilm)
	}
}

func (handler *Handler) importFilm(writer http.ResponseWriter, request *http.Request) {
	var input importRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Positive("tmdb_id", input.TMDBID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ImportFilm(request.Context(), input.TMDBID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
