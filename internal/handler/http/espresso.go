package http

import (
	"encoding/json"
	"net/http"

	"github.com/brewhr/brewhr-backend-go/internal/domain/espresso"
	"github.com/brewhr/brewhr-backend-go/internal/handler/http/response"
)

type EspressoHandler interface {
	LogPull(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type espressoHandlerImpl struct {
	espressoService espresso.EspressoService
}

func NewEspressoHandler(espressoService espresso.EspressoService) EspressoHandler {
	return &espressoHandlerImpl{espressoService: espressoService}
}

func (h *espressoHandlerImpl) LogPull(w http.ResponseWriter, r *http.Request) {
	var req espresso.CreatePullRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.espressoService.LogPull(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pull logged", result)
}

func (h *espressoHandlerImpl) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	result, err := h.espressoService.Leaderboard(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
