// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/yomira-cms/internal/platform/request"
	"github.com/taibuivan/yomira-cms/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the comic catalogue.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comic [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the comic endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listComics)
	router.Get("/{id}", handler.getComic)
	router.Post("/", handler.createComic)
	router.Put("/{id}", handler.updateComic)
	router.Delete("/{id}", handler.deleteComic)

	return router
}

// # Request DTOs

type createComicRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Year        *int     `json:"year"`
	CoverImage  string   `json:"coverImage"`
	Images      []string `json:"images"`
}

// updateComicRequest has no images field; images sent on update are dropped.
type updateComicRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Author      *string `json:"author"`
	Year        *int    `json:"year"`
	CoverImage  *string `json:"coverImage"`
}

// # Comic Endpoints

/*
GET /comics.

Response:
  - 200: []Comic
*/
func (handler *Handler) listComics(writer http.ResponseWriter, request *http.Request) {
	comics, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comics)
}

/*
GET /comics/{id}.

Response:
  - 200: Comic
  - 404: Comic not found
*/
func (handler *Handler) getComic(writer http.ResponseWriter, request *http.Request) {
	comic, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comic)
}

/*
POST /comics.

Request:
  - Body: title, description, author, year, coverImage, images

Response:
  - 200: Comic (with generated _id)
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) createComic(writer http.ResponseWriter, request *http.Request) {
	var input createComicRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comic, err := handler.service.Create(request.Context(), CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Author:      input.Author,
		Year:        input.Year,
		CoverImage:  input.CoverImage,
		Images:      input.Images,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comic)
}

/*
PUT /comics/{id}.

Request:
  - Body: any of title, description, author, year, coverImage

Response:
  - 200: Comic (after update)
  - 404: Comic not found
*/
func (handler *Handler) updateComic(writer http.ResponseWriter, request *http.Request) {
	var input updateComicRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comic, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), Patch(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comic)
}

/*
DELETE /comics/{id}.

Response:
  - 200: {message}
  - 404: Comic not found
*/
func (handler *Handler) deleteComic(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, msgDeleted)
}
