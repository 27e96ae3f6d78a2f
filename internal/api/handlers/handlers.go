package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dvloznov/savings-projector/internal/api/middleware"
	"github.com/dvloznov/savings-projector/internal/domain"
	"github.com/dvloznov/savings-projector/internal/pipeline"
	"github.com/rs/zerolog"
)

// TransactionsHandler serves the transaction enrichment, validation and
// filter endpoints.
type TransactionsHandler struct {
	engine *pipeline.Engine
	log    zerolog.Logger
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(engine *pipeline.Engine, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{
		engine: engine,
		log:    log,
	}
}

// Parse handles POST /blackrock/challenge/v1/transactions:parse
func (h *TransactionsHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var transactions []domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transactions); err != nil {
		h.log.Warn().Err(err).Msg("Rejected parse request")
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, h.engine.Enrich(transactions))
}

// validatorRequest mirrors the validator endpoint schema: the wage travels
// with the enriched transactions but plays no part in validation.
type validatorRequest struct {
	Wage         float64                      `json:"wage"`
	Transactions []domain.EnrichedTransaction `json:"transactions"`
}

// Validate handles POST /blackrock/challenge/v1/transactions:validator
func (h *TransactionsHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn().Err(err).Msg("Rejected validator request")
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, h.engine.Validate(req.Transactions))
}

// filterRequest mirrors the filter endpoint schema.
type filterRequest struct {
	Q            []domain.OverridePeriod   `json:"q"`
	P            []domain.BonusPeriod      `json:"p"`
	K            []domain.EvaluationPeriod `json:"k"`
	Transactions []domain.Transaction      `json:"transactions"`
}

// Filter handles POST /blackrock/challenge/v1/transactions:filter
func (h *TransactionsHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn().Err(err).Msg("Rejected filter request")
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.engine.FilterByPeriods(req.Transactions, req.Q, req.P, req.K)
	middleware.WriteJSON(w, http.StatusOK, result)
}

// ReturnsHandler serves the returns projection endpoints.
type ReturnsHandler struct {
	engine *pipeline.Engine
	log    zerolog.Logger
}

// NewReturnsHandler creates a new returns handler.
func NewReturnsHandler(engine *pipeline.Engine, log zerolog.Logger) *ReturnsHandler {
	return &ReturnsHandler{
		engine: engine,
		log:    log,
	}
}

// returnsRequest mirrors the returns endpoints schema. Inflation is a
// percentage, e.g. 5.5 for 5.5%.
type returnsRequest struct {
	Age          int                       `json:"age"`
	Wage         float64                   `json:"wage"`
	Inflation    float64                   `json:"inflation"`
	Q            []domain.OverridePeriod   `json:"q"`
	P            []domain.BonusPeriod      `json:"p"`
	K            []domain.EvaluationPeriod `json:"k"`
	Transactions []domain.Transaction      `json:"transactions"`
}

// NPS handles POST /blackrock/challenge/v1/returns:nps
func (h *ReturnsHandler) NPS(w http.ResponseWriter, r *http.Request) {
	h.project(w, r, pipeline.PresetNPS)
}

// Index handles POST /blackrock/challenge/v1/returns:index
func (h *ReturnsHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.project(w, r, pipeline.PresetIndex)
}

func (h *ReturnsHandler) project(w http.ResponseWriter, r *http.Request, preset pipeline.Preset) {
	var req returnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn().Err(err).Str("preset", preset.Name).Msg("Rejected returns request")
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.engine.CalculateReturns(pipeline.ReturnsInput{
		Transactions:      req.Transactions,
		OverridePeriods:   req.Q,
		BonusPeriods:      req.P,
		EvaluationPeriods: req.K,
		Age:               req.Age,
		Wage:              req.Wage,
		InflationPercent:  req.Inflation,
	}, preset)

	middleware.WriteJSON(w, http.StatusOK, result)
}
