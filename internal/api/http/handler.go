package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/rental"
	"rent-a-tool/internal/service"
)

const (
	maxBodyBytes   = 1 << 20
	jsonDateLayout = "2006-01-02"
)

// Handler serves the checkout API
type Handler struct {
	svc      service.CheckoutService
	metrics  *Metrics
	validate *validator.Validate
}

func NewHandler(svc service.CheckoutService, metrics *Metrics) *Handler {
	return &Handler{
		svc:      svc,
		metrics:  metrics,
		validate: validator.New(),
	}
}

type checkoutRequest struct {
	ToolCode        string `json:"tool_code" validate:"required"`
	RentalDays      int    `json:"rental_days"`
	DiscountPercent int    `json:"discount_percent"`
	CheckoutDate    string `json:"checkout_date" validate:"required"`
}

type agreementResponse struct {
	ToolCode          string `json:"tool_code"`
	ToolType          string `json:"tool_type"`
	ToolBrand         string `json:"tool_brand"`
	RentalDays        int    `json:"rental_days"`
	CheckoutDate      string `json:"checkout_date"`
	DueDate           string `json:"due_date"`
	DailyRentalCharge string `json:"daily_rental_charge"`
	ChargeDays        int    `json:"charge_days"`
	PreDiscountCharge string `json:"pre_discount_charge"`
	DiscountPercent   int    `json:"discount_percent"`
	DiscountAmount    string `json:"discount_amount"`
	FinalCharge       string `json:"final_charge"`
	Report            string `json:"report"`
}

func newAgreementResponse(a *rental.Agreement) agreementResponse {
	return agreementResponse{
		ToolCode:          a.Code().String(),
		ToolType:          a.Type().String(),
		ToolBrand:         a.Brand().String(),
		RentalDays:        a.RentalDays(),
		CheckoutDate:      a.CheckoutDate().Format(jsonDateLayout),
		DueDate:           a.DueDate().Format(jsonDateLayout),
		DailyRentalCharge: a.DailyCharge().StringFixed(2),
		ChargeDays:        a.ChargeableDays(),
		PreDiscountCharge: a.PreDiscountCharge().StringFixed(2),
		DiscountPercent:   a.DiscountPercent(),
		DiscountAmount:    a.DiscountAmount().StringFixed(2),
		FinalCharge:       a.FinalCharge().StringFixed(2),
		Report:            a.String(),
	}
}

type toolsResponse struct {
	Tools []domain.Tool `json:"tools"`
}

// ListTools handles GET /api/v1/tools
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.svc.ListTools(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if tools == nil {
		tools = []domain.Tool{}
	}
	writeJSON(w, http.StatusOK, toolsResponse{Tools: tools})
}

// GetTool handles GET /api/v1/tools/{code}
func (h *Handler) GetTool(w http.ResponseWriter, r *http.Request) {
	tool, err := h.svc.GetTool(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// Checkout handles POST /api/v1/checkouts
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.metrics.observeCheckout(req.ToolCode, outcomeInvalid, nil)
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.metrics.observeCheckout(req.ToolCode, outcomeInvalid, nil)
		writeError(w, r, http.StatusBadRequest, "tool_code and checkout_date are required")
		return
	}

	checkoutDate, err := rental.ParseCheckoutDate(req.CheckoutDate)
	if err != nil {
		h.metrics.observeCheckout(req.ToolCode, outcomeInvalid, nil)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	agreement, err := h.svc.Checkout(r.Context(), service.CheckoutRequest{
		Code:            req.ToolCode,
		RentalDays:      req.RentalDays,
		DiscountPercent: req.DiscountPercent,
		CheckoutDate:    checkoutDate,
	})
	if err != nil {
		h.metrics.observeCheckout(req.ToolCode, outcomeFor(statusFor(err)), nil)
		writeServiceError(w, r, err)
		return
	}

	h.metrics.observeCheckout(agreement.Code().String(), outcomeSuccess, agreement)
	writeJSON(w, http.StatusCreated, newAgreementResponse(agreement))
}

// ReturnTool handles POST /api/v1/tools/{code}/return
func (h *Handler) ReturnTool(w http.ResponseWriter, r *http.Request) {
	tool, err := h.svc.ReturnTool(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterRoutes registers the checkout API endpoints
func RegisterRoutes(router *mux.Router, h *Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/tools", h.ListTools).Methods("GET")
	api.HandleFunc("/tools/{code}", h.GetTool).Methods("GET")
	api.HandleFunc("/tools/{code}/return", h.ReturnTool).Methods("POST")
	api.HandleFunc("/checkouts", h.Checkout).Methods("POST")
	router.HandleFunc("/healthz", h.Health).Methods("GET")
}
