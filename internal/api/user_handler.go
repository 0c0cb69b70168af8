package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forgetting-curve/api/internal/api/shared"
	"github.com/forgetting-curve/api/internal/service"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles POST /users requests.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, []shared.FieldError{
			{Loc: []string{"body"}, Msg: "invalid JSON body"},
		})
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.ValidationDetails(err))
		return
	}

	_, err := h.userService.CreateUser(r.Context(), req.Nickname, req.FirstName, req.LastName, req.Age, req.Job)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusSuccess)
}

// ListUsers handles GET /users requests.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, userToResponse(user))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetUser handles GET /users/{nickname} requests.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")

	user, err := h.userService.GetUser(r.Context(), nickname)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// UpdateUser handles PUT /users/{nickname} requests.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, []shared.FieldError{
			{Loc: []string{"body"}, Msg: "invalid JSON body"},
		})
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.ValidationDetails(err))
		return
	}

	if _, err := h.userService.UpdateUser(r.Context(), nickname, req.Age, req.Job); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusSuccess)
}

// DeleteUser handles DELETE /users/{nickname} requests. Deleting a user
// also removes every information record they own.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")

	if err := h.userService.DeleteUser(r.Context(), nickname); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusSuccess)
}
