package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/forgetting-curve/api/internal/api/shared"
	"github.com/forgetting-curve/api/internal/service"
)

// InformationHandler handles information-related HTTP requests. Every
// route is nested under the owning user's nickname.
type InformationHandler struct {
	informationService service.InformationService
}

// NewInformationHandler creates a new InformationHandler.
func NewInformationHandler(informationService service.InformationService) *InformationHandler {
	return &InformationHandler{informationService: informationService}
}

// CreateInformation handles POST /users/{nickname}/information requests.
// The five review checkpoints are derived from the server's current time.
func (h *InformationHandler) CreateInformation(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")

	var req CreateInformationRequest
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

	_, err := h.informationService.CreateInformation(r.Context(), nickname, req.Information, req.Explanation)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusSuccess)
}

// ListInformation handles GET /users/{nickname}/information requests.
func (h *InformationHandler) ListInformation(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")

	items, err := h.informationService.ListInformation(r.Context(), nickname)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := make([]InformationResponse, 0, len(items))
	for _, item := range items {
		response = append(response, informationToResponse(item))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// DeleteInformation handles DELETE /users/{nickname}/information/{id}
// requests. The id is only looked up under the given nickname, so one
// user can never delete another user's record.
func (h *InformationHandler) DeleteInformation(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithValidationError(w, r, []shared.FieldError{
			shared.PathFieldError("id", "must be an integer"),
		})
		return
	}

	if err := h.informationService.DeleteInformation(r.Context(), nickname, id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusSuccess)
}
