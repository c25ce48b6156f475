// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package film

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/trananh/movira/internal/platform/request"
	"github.com/trananh/movira/internal/platform/respond"
	"github.com/trananh/movira/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public catalogue routes, mounted at /films. Comment
// thread routes are mounted under the same subtree by the composition root.
func (handler *Handler) Routes() func(chi.Router) {
	return func(router chi.Router) {
		router.Get("/", handler.list)
		router.Get("/{slug}", handler.getBySlug)
	}
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	films, meta, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, films, meta)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	f, err := handler.service.GetBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, f)
}
