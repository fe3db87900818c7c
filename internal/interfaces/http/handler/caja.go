package handler

import (
	"strconv"

	treasuryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CajaHandler exposes the cash register endpoints
type CajaHandler struct {
	BaseHandler
	ledger *treasuryapp.CashLedgerService
}

// NewCajaHandler creates a new CajaHandler
func NewCajaHandler(ledger *treasuryapp.CashLedgerService) *CajaHandler {
	return &CajaHandler{ledger: ledger}
}

// Estado returns the current cash balance
func (h *CajaHandler) Estado(c *gin.Context) {
	snapshot, err := h.ledger.Balance(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.EstadoCajaResponse{
		IDCaja:       snapshot.CashRegisterID,
		MontoTotal:   snapshot.Amount,
		Inicializada: snapshot.Initialized,
	})
}

// Movimiento applies a signed manual movement to the balance
func (h *CajaHandler) Movimiento(c *gin.Context) {
	var req dto.MovimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	result, err := h.ledger.ApplyMovement(c.Request.Context(), treasuryapp.ApplyMovementInput{
		Amount:         req.MontoTrx,
		MovementTypeID: req.IDTipoTrx,
		Description:    req.DescripcionTrx,
		Actor:          req.IDUsuario,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.MovimientoResponse{
		IDTransaccion: result.LedgerEntryID,
		MontoAnterior: result.PreviousBalance,
		MontoNuevo:    result.NewBalance,
	})
}

// ResumenDiario returns today's income and expense totals
func (h *CajaHandler) ResumenDiario(c *gin.Context) {
	summary, err := h.ledger.DailySummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ResumenDiarioResponse{
		IngresosHoy: summary.IncomeToday,
		EgresosHoy:  summary.ExpenseToday,
	})
}

// UltimosMovimientos returns the most recent journal entries, newest first
func (h *CajaHandler) UltimosMovimientos(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.ledger.RecentEntries(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FromLedgerEntries(entries))
}

// Transacciones returns the full journal, newest first
func (h *CajaHandler) Transacciones(c *gin.Context) {
	entries, err := h.ledger.Entries(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FromLedgerEntries(entries))
}

// TransaccionByID returns a single journal entry
func (h *CajaHandler) TransaccionByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "invalid transaction ID")
		return
	}

	entry, err := h.ledger.EntryByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FromLedgerEntry(*entry))
}

// TiposTransaccion returns the movement type catalog
func (h *CajaHandler) TiposTransaccion(c *gin.Context) {
	types, err := h.ledger.MovementTypes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.TipoTransaccionResponse, 0, len(types))
	for _, t := range types {
		out = append(out, dto.TipoTransaccionResponse{
			IDTipoTrx:   t.ID,
			Codigo:      string(t.Code),
			Descripcion: t.Description,
		})
	}
	h.Success(c, out)
}

// RegisterRoutes registers the cash register routes
func (h *CajaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	caja := rg.Group("/caja")
	{
		caja.GET("/estado", h.Estado)
		caja.POST("/movimiento", h.Movimiento)
		caja.GET("/resumen-diario", h.ResumenDiario)
		caja.GET("/ultimos-movimientos", h.UltimosMovimientos)
	}

	rg.GET("/transacciones-caja", h.Transacciones)
	rg.GET("/transacciones-caja/:id", h.TransaccionByID)
	rg.GET("/tipos-transaccion", h.TiposTransaccion)
}
