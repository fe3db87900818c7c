package handler

import (
	"strconv"

	salesapp "github.com/Odalissj/OperacionPollitoPF/internal/application/sales"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// VentaHandler exposes the sale endpoints
type VentaHandler struct {
	BaseHandler
	sales *salesapp.SaleService
}

// NewVentaHandler creates a new VentaHandler
func NewVentaHandler(sales *salesapp.SaleService) *VentaHandler {
	return &VentaHandler{sales: sales}
}

// Crear records a sale and applies its proceeds split atomically
func (h *VentaHandler) Crear(c *gin.Context) {
	var req dto.VentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	result, err := h.sales.RecordSale(c.Request.Context(), salesapp.RecordSaleInput{
		BeneficiaryID: req.IDBeneficiario,
		Lines:         req.ToLineInputs(),
		DeclaredTotal: req.TotalVenta,
		Actor:         req.IDUsuario,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.VentaCreadaResponse{
		IDVenta:         result.SaleID,
		TotalVenta:      result.TotalAmount,
		MontoCaja:       result.CashPortion,
		ValorInventario: result.InventoryValue,
	})
}

// List returns all sales, newest first
func (h *VentaHandler) List(c *gin.Context) {
	list, err := h.sales.FindAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FromSales(list))
}

// ConDetalles returns one sale with its line items
func (h *VentaHandler) ConDetalles(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "invalid sale ID")
		return
	}

	sale, err := h.sales.FindWithLines(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FromSale(sale))
}

// RegisterRoutes registers the sale routes
func (h *VentaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ventas := rg.Group("/ventas")
	{
		ventas.POST("", h.Crear)
		ventas.GET("", h.List)
		ventas.GET("/:id", h.ConDetalles)
	}
}
