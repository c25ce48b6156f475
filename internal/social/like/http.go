// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package like

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trananh/movira/internal/platform/apperr"
	requestutil "github.com/trananh/movira/internal/platform/request"
	"github.com/trananh/movira/internal/platform/respond"
	"github.com/trananh/movira/internal/platform/validate"
	"github.com/trananh/movira/internal/social/subject"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// likeRequest addresses a likeable subject.
type likeRequest struct {
	SubjectID   string `json:"subject_id"`
	SubjectType string `json:"subject_type"`
}

// Routes returns the authenticated like routes, mounted at /likes.
func (handler *Handler) Routes() func(chi.Router) {
	return func(router chi.Router) {
		router.Post("/", handler.like)
		router.Delete("/", handler.unlike)
	}
}

// AdminRoutes returns the operator recount route, mounted under /admin.
func (handler *Handler) AdminRoutes() func(chi.Router) {
	return func(router chi.Router) {
		router.Post("/likes/{subjectType}/{id}/recount", handler.recount)
	}
}

func (handler *Handler) like(writer http.ResponseWriter, request *http.Request) {
	handler.mutate(writer, request, handler.service.Like)
}

func (handler *Handler) unlike(writer http.ResponseWriter, request *http.Request) {
	handler.mutate(writer, request, handler.service.Unlike)
}

// mutate handles the shared decode/validate/respond shape of like and
// unlike.
func (handler *Handler) mutate(
	writer http.ResponseWriter,
	request *http.Request,
	operation func(ctx context.Context, kind subject.Kind, subjectID, userID string) (*Count, error),
) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input likeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldSubjectID, input.SubjectID).Required(FieldSubjectType, input.SubjectType)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	kind := subject.Kind(input.SubjectType)
	if !kind.Valid() {
		respond.Error(writer, request, apperr.ValidationError("Unknown subject type"))
		return
	}

	count, err := operation(request.Context(), kind, input.SubjectID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, count)
}

func (handler *Handler) recount(writer http.ResponseWriter, request *http.Request) {
	kind := subject.Kind(requestutil.Param(request, "subjectType"))
	if !kind.Valid() {
		respond.Error(writer, request, apperr.ValidationError("Unknown subject type"))
		return
	}

	count, err := handler.service.Recount(request.Context(), kind, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, count)
}
