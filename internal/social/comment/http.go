// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/yomira-cms/internal/platform/request"
	"github.com/taibuivan/yomira-cms/internal/platform/respond"
)

// Handler implements the HTTP layer for comments.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the comment endpoints.
//
// GET /{comicId} reads the caller from the userId header, which the
// CallerIdentity middleware places in the request context.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/comic/{comicId}/user/{userId}", handler.listByComicAndUser)
	router.Get("/{comicId}", handler.listForCaller)
	router.Post("/", handler.createComment)
	router.Put("/{id}", handler.updateComment)
	router.Delete("/{id}", handler.deleteComment)

	return router
}

type createCommentRequest struct {
	ComicID string `json:"comicId"`
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

/*
GET /comments/comic/{comicId}/user/{userId}.

Response:
  - 200: []Comment
  - 404: Comic or user not found
*/
func (handler *Handler) listByComicAndUser(writer http.ResponseWriter, request *http.Request) {
	comments, err := handler.service.ListByComicAndUser(request.Context(),
		requestutil.Param(request, "comicId"),
		requestutil.Param(request, "userId"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comments)
}

/*
GET /comments/{comicId}.

Request:
  - Header userId: the caller's account id

Response:
  - 200: []Comment (own comments for users, all comments for admins)
  - 400: Missing userId header, Invalid role
  - 404: User does not exist
*/
func (handler *Handler) listForCaller(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredCallerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, err := handler.service.ListForCaller(request.Context(), requestutil.Param(request, "comicId"), callerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comments)
}

/*
POST /comments.

Request:
  - Body: comicId, userId, content

Response:
  - 200: Comment
  - 400: VALIDATION_ERROR
  - 404: Comic or user not found
*/
func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	var input createCommentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.Create(request.Context(), CreateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comment)
}

/*
PUT /comments/{id}.

Request:
  - Body: content

Response:
  - 200: Comment (after update)
  - 404: Comment not found
*/
func (handler *Handler) updateComment(writer http.ResponseWriter, request *http.Request) {
	var input updateCommentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.UpdateContent(request.Context(), requestutil.Param(request, "id"), input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comment)
}

/*
DELETE /comments/{id}.

Response:
  - 200: {message}
  - 404: Comment not found
*/
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, msgDeleted)
}
