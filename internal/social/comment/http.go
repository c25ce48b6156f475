// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trananh/movira/internal/platform/middleware"
	requestutil "github.com/trananh/movira/internal/platform/request"
	"github.com/trananh/movira/internal/platform/respond"
	"github.com/trananh/movira/internal/social/subject"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// createRequest is the JSON payload for posting a comment.
type createRequest struct {
	Body     string  `json:"body"`
	ParentID *string `json:"parent_id,omitempty"`
}

// editRequest is the JSON payload for editing a comment body.
type editRequest struct {
	Body string `json:"body"`
}

// SubjectRoutes returns the thread routes mounted under a subject resource,
// e.g. /posts/{subjectID}/comments or /films/{subjectID}/comments.
func (handler *Handler) SubjectRoutes(kind subject.Kind) func(chi.Router) {
	return func(router chi.Router) {
		router.Get("/", handler.listThread(kind))
		router.With(middleware.RequireAuth).Post("/", handler.create(kind))
	}
}

// ItemRoutes returns the routes addressing a single comment by ID.
func (handler *Handler) ItemRoutes() func(chi.Router) {
	return func(router chi.Router) {
		router.Use(middleware.RequireAuth)
		router.Patch("/{id}", handler.edit)
		router.Delete("/{id}", handler.delete)
	}
}

func (handler *Handler) listThread(kind subject.Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		subjectID := requestutil.Param(request, "subjectID")

		thread, err := handler.service.ListThread(request.Context(), kind, subjectID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, thread)
	}
}

func (handler *Handler) create(kind subject.Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
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

		subjectID := requestutil.Param(request, "subjectID")
		created, err := handler.service.Create(request.Context(), kind, subjectID, userID, input.ParentID, input.Body)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Created(writer, created)
	}
}

func (handler *Handler) edit(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input editRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Edit(request.Context(), requestutil.Param(request, "id"), userID, input.Body)
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

	cascade := request.URL.Query().Get("cascade") == "true"

	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id"), claims, cascade); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
