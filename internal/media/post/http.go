// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trananh/movira/internal/platform/middleware"
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

type createRequest struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}

type updateRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}

// Routes returns the feed routes, mounted at /posts. Comment thread routes
// are mounted under the same subtree by the composition root.
func (handler *Handler) Routes() func(chi.Router) {
	return func(router chi.Router) {
		router.Get("/", handler.list)
		router.Get("/{id}", handler.get)

		router.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth)
			protected.Post("/", handler.create)
			protected.Patch("/{id}", handler.update)
			protected.Delete("/{id}", handler.delete)
		})
	}
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	authorID := request.URL.Query().Get("author_id")

	posts, meta, err := handler.service.List(request.Context(), authorID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, meta)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	p, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, p)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), userID, CreateInput{
		Kind:     Kind(input.Kind),
		Title:    input.Title,
		Body:     input.Body,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), userID, UpdateInput{
		Title:    input.Title,
		Body:     input.Body,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id"), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
