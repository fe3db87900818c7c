package handler

import (
	"strconv"

	donationapp "github.com/Odalissj/OperacionPollitoPF/internal/application/donation"
	"github.com/Odalissj/OperacionPollitoPF/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// DonacionHandler exposes the donation endpoints
type DonacionHandler struct {
	BaseHandler
	donations *donationapp.DonationService
}

// NewDonacionHandler creates a new DonacionHandler
func NewDonacionHandler(donations *donationapp.DonationService) *DonacionHandler {
	return &DonacionHandler{donations: donations}
}

// Crear stores a donation and credits the cash balance atomically
func (h *DonacionHandler) Crear(c *gin.Context) {
	var req dto.DonacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	record, err := h.donations.Create(c.Request.Context(), donationapp.CreateInput{
		DonorID: req.IDDonante,
		Amount:  req.Monto,
		Actor:   req.IDUsuario,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.FromDonation(record))
}

// List returns all donations, newest first
func (h *DonacionHandler) List(c *gin.Context) {
	list, err := h.donations.FindAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FromDonations(list))
}

// ByID returns one donation
func (h *DonacionHandler) ByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "invalid donation ID")
		return
	}

	record, err := h.donations.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FromDonation(record))
}

// Eliminar removes the donation record. The credit it produced stays in the
// ledger; corrections go through a manual movement.
func (h *DonacionHandler) Eliminar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "invalid donation ID")
		return
	}

	if err := h.donations.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers the donation routes
func (h *DonacionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	donaciones := rg.Group("/donaciones")
	{
		donaciones.POST("", h.Crear)
		donaciones.GET("", h.List)
		donaciones.GET("/:id", h.ByID)
		donaciones.DELETE("/:id", h.Eliminar)
	}
}
