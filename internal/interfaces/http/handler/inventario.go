package handler

import (
	"strconv"

	inventoryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/inventory"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// InventarioHandler exposes the stock endpoints
type InventarioHandler struct {
	BaseHandler
	allocations *inventoryapp.AllocationService
}

// NewInventarioHandler creates a new InventarioHandler
func NewInventarioHandler(allocations *inventoryapp.AllocationService) *InventarioHandler {
	return &InventarioHandler{allocations: allocations}
}

// General returns the general pool snapshot
func (h *InventarioHandler) General(c *gin.Context) {
	snapshot, err := h.allocations.GeneralSnapshot(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FromGeneralStock(snapshot))
}

// List returns every beneficiary holding
func (h *InventarioHandler) List(c *gin.Context) {
	holdings, err := h.allocations.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FromBeneficiaryStocks(holdings))
}

// PorBeneficiario returns one beneficiary's holding
func (h *InventarioHandler) PorBeneficiario(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "invalid beneficiary ID")
		return
	}

	holding, err := h.allocations.BeneficiarySnapshot(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FromBeneficiaryStock(holding))
}

// Inicializar creates an empty holding for a beneficiary
func (h *InventarioHandler) Inicializar(c *gin.Context) {
	var req dto.InicializarInventarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	holding, err := h.allocations.Initialize(c.Request.Context(), req.IDBeneficiario, req.IDUsuario)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.FromBeneficiaryStock(holding))
}

// Entregar moves units from the general pool to a beneficiary
func (h *InventarioHandler) Entregar(c *gin.Context) {
	var req dto.EntregaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	result, err := h.allocations.Allocate(c.Request.Context(), inventoryapp.AllocateInput{
		BeneficiaryID: req.IDBeneficiario,
		Quantity:      req.Cantidad,
		Actor:         req.IDUsuario,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.EntregaResponse{
		CantidadRestanteGeneral: result.GeneralRemaining,
		CantidadActual:          result.BeneficiaryNewTotal,
	})
}

// RegisterRoutes registers the stock routes
func (h *InventarioHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inventario-general", h.General)

	inventario := rg.Group("/inventario")
	{
		inventario.GET("", h.List)
		inventario.GET("/beneficiario/:id", h.PorBeneficiario)
		inventario.POST("", h.Inicializar)
		inventario.POST("/entregar", h.Entregar)
	}
}
