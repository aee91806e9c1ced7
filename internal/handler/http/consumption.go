package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brewhr/brewhr-backend-go/internal/domain/consumption"
	"github.com/brewhr/brewhr-backend-go/internal/handler/http/response"
)

type ConsumptionHandler interface {
	Log(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Allowance(w http.ResponseWriter, r *http.Request)
}

type consumptionHandlerImpl struct {
	consumptionService consumption.ConsumptionService
}

func NewConsumptionHandler(consumptionService consumption.ConsumptionService) ConsumptionHandler {
	return &consumptionHandlerImpl{consumptionService: consumptionService}
}

func (h *consumptionHandlerImpl) Log(w http.ResponseWriter, r *http.Request) {
	var req consumption.CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.consumptionService.Log(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Consumption logged", result)
}

func (h *consumptionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := consumption.ListFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.BadRequest(w, "from must be an RFC3339 timestamp", nil)
			return
		}
		filter.From = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.BadRequest(w, "to must be an RFC3339 timestamp", nil)
			return
		}
		filter.To = &t
	}

	result, err := h.consumptionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

func (h *consumptionHandlerImpl) Allowance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	now := time.Now()
	month := queryInt(r, "month", int(now.Month()))
	year := queryInt(r, "year", now.Year())

	result, err := h.consumptionService.Allowance(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
