package dto

import (
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// DetalleVentaRequest is one line item of a sale.
type DetalleVentaRequest struct {
	Cantidad    int64           `json:"cantidad" binding:"required,gt=0"`
	ValorUnidad decimal.Decimal `json:"valorUnidad" binding:"required"`
}

// VentaRequest records a sale. TotalVenta is what the caller claims the sale
// is worth; the engine recomputes it from the lines and rejects a mismatch.
// The actor field is idUsuarioIngresa on this endpoint, not idUsuarioIngreso.
type VentaRequest struct {
	IDBeneficiario int64                 `json:"idBeneficiarioVenta" binding:"required,gt=0"`
	TotalVenta     decimal.Decimal       `json:"TotalVenta" binding:"required"`
	Detalles       []DetalleVentaRequest `json:"detalles" binding:"required,min=1,dive"`
	IDUsuario      int64                 `json:"idUsuarioIngresa" binding:"required,gt=0"`
}

// VentaCreadaResponse reports a committed sale with its proceeds split.
type VentaCreadaResponse struct {
	IDVenta         int64           `json:"idVenta"`
	TotalVenta      decimal.Decimal `json:"TotalVenta"`
	MontoCaja       decimal.Decimal `json:"montoCaja"`
	ValorInventario decimal.Decimal `json:"valorInventario"`
}

// DetalleVentaResponse is one stored line item on the wire.
type DetalleVentaResponse struct {
	Cantidad    int64           `json:"cantidad"`
	ValorUnidad decimal.Decimal `json:"valorUnidad"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// VentaResponse is one sale on the wire, optionally with its lines.
type VentaResponse struct {
	IDVenta        int64                  `json:"idVenta"`
	IDBeneficiario int64                  `json:"idBeneficiarioVenta"`
	TotalVenta     decimal.Decimal        `json:"TotalVenta"`
	IDUsuario      int64                  `json:"idUsuarioIngresa"`
	FechaIngreso   time.Time              `json:"fechaIngreso"`
	Detalles       []DetalleVentaResponse `json:"detalles,omitempty"`
}

// FromSale maps a sale onto the wire shape.
func FromSale(s *sales.Sale) VentaResponse {
	resp := VentaResponse{
		IDVenta:        s.ID,
		IDBeneficiario: s.BeneficiaryID,
		TotalVenta:     s.TotalAmount,
		IDUsuario:      s.EnteredBy,
		FechaIngreso:   s.EnteredAt,
	}
	for _, line := range s.Lines {
		resp.Detalles = append(resp.Detalles, DetalleVentaResponse{
			Cantidad:    line.Quantity,
			ValorUnidad: line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}
	return resp
}

// FromSales maps a sales slice onto the wire shape.
func FromSales(list []sales.Sale) []VentaResponse {
	out := make([]VentaResponse, 0, len(list))
	for i := range list {
		out = append(out, FromSale(&list[i]))
	}
	return out
}

// ToLineInputs converts request lines to the domain input shape.
func (r VentaRequest) ToLineInputs() []sales.LineInput {
	lines := make([]sales.LineInput, 0, len(r.Detalles))
	for _, d := range r.Detalles {
		lines = append(lines, sales.LineInput{
			Quantity:  d.Cantidad,
			UnitPrice: d.ValorUnidad,
		})
	}
	return lines
}
