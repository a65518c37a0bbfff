// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/yomira-cms/internal/platform/request"
	"github.com/taibuivan/yomira-cms/internal/platform/respond"
	"github.com/taibuivan/yomira-cms/internal/platform/sec"
)

// # Handler Implementation

// Handler manages the HTTP interface for accounts, registration and login.
type Handler struct {
	service *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the account endpoints.
//
// The two registration routes differ only in the role they assign.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listUsers)
	router.Get("/{id}", handler.getUser)
	router.Put("/{id}", handler.updateUser)
	router.Delete("/{id}", handler.deleteUser)

	router.Post("/user", handler.register(sec.RoleUser))
	router.Post("/admin", handler.register(sec.RoleAdmin))
	router.Post("/login", handler.login)

	return router
}

// # Request DTOs

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Role     *int   `json:"role"`
}

// # Account Endpoints

/*
GET /users.

Response:
  - 200: []User
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

/*
GET /users/{id}.

Response:
  - 200: User
  - 404: User not found
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

/*
POST /users/user and POST /users/admin.

Request:
  - Body: username, password, email, fullname

Response:
  - 200: {exists: true} when the username is taken
  - 200: {exists: false, savedUser} on creation
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) register(role sec.Role) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input registerRequest
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		registration, err := handler.service.Register(request.Context(), RegisterInput(input), role)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, registration)
	}
}

/*
POST /users/login.

Request:
  - Body: username, password

Response:
  - 200: LoginResult (success, unknown account or wrong password)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), LoginInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
PUT /users/{id}.

Request:
  - Body: username, password, email, fullname, role (all required)

Response:
  - 200: User (after update)
  - 400: VALIDATION_ERROR
  - 404: User not found
*/
func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	var input updateUserRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), UpdateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

/*
DELETE /users/{id}.

Response:
  - 200: {message}
  - 404: User not found
*/
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, msgDeleted)
}
