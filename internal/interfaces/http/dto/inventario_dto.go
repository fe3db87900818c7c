package dto

import (
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// InicializarInventarioRequest creates a zeroed holding for a beneficiary.
type InicializarInventarioRequest struct {
	IDBeneficiario int64 `json:"idBeneficiario" binding:"required,gt=0"`
	IDUsuario      int64 `json:"idUsuarioIngreso" binding:"required,gt=0"`
}

// EntregaRequest moves units from the general pool to a beneficiary.
type EntregaRequest struct {
	IDBeneficiario int64 `json:"idBeneficiario" binding:"required,gt=0"`
	Cantidad       int64 `json:"cantidad" binding:"required,gt=0"`
	IDUsuario      int64 `json:"idUsuarioIngreso" binding:"required,gt=0"`
}

// EntregaResponse reports a committed allocation.
type EntregaResponse struct {
	CantidadRestanteGeneral int64 `json:"cantidadRestanteGeneral"`
	CantidadActual          int64 `json:"cantidadActual"`
}

// InventarioGeneralResponse is the general pool on the wire.
type InventarioGeneralResponse struct {
	CantidadActual      int64     `json:"cantidadActual"`
	UltimaCantidadIngre int64     `json:"ultimaCantidadIngre"`
	FechaActualizacion  time.Time `json:"fechaActualizacion"`
}

// FromGeneralStock maps the pool onto the wire shape.
func FromGeneralStock(s *inventory.GeneralStock) InventarioGeneralResponse {
	return InventarioGeneralResponse{
		CantidadActual:      s.CurrentQuantity,
		UltimaCantidadIngre: s.LastIntakeQuantity,
		FechaActualizacion:  s.UpdatedAt,
	}
}

// InventarioResponse is one beneficiary holding on the wire.
type InventarioResponse struct {
	IDBeneficiario      int64           `json:"idBeneficiario"`
	CantidadInicial     int64           `json:"cantidadInicial"`
	CantidadVendida     int64           `json:"cantidadVendida"`
	CantidadConsumida   int64           `json:"cantidadConsumida"`
	CantidadActual      int64           `json:"cantidadActual"`
	UltimaCantidadIngre int64           `json:"ultimaCantidadIngre"`
	ValorTotal          decimal.Decimal `json:"valorTotal"`
	FechaActualizacion  time.Time       `json:"fechaActualizacion"`
}

// FromBeneficiaryStock maps one holding onto the wire shape.
func FromBeneficiaryStock(s *inventory.BeneficiaryStock) InventarioResponse {
	return InventarioResponse{
		IDBeneficiario:      s.BeneficiaryID,
		CantidadInicial:     s.InitialQuantity,
		CantidadVendida:     s.SoldQuantity,
		CantidadConsumida:   s.ConsumedQuantity,
		CantidadActual:      s.CurrentQuantity,
		UltimaCantidadIngre: s.LastIntakeQuantity,
		ValorTotal:          s.TotalValue,
		FechaActualizacion:  s.UpdatedAt,
	}
}

// FromBeneficiaryStocks maps a holdings slice onto the wire shape.
func FromBeneficiaryStocks(stocks []inventory.BeneficiaryStock) []InventarioResponse {
	out := make([]InventarioResponse, 0, len(stocks))
	for i := range stocks {
		out = append(out, FromBeneficiaryStock(&stocks[i]))
	}
	return out
}
