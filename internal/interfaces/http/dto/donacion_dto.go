package dto

import (
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/donation"
	"github.com/shopspring/decimal"
)

// DonacionRequest registers a donation credited to the cash balance.
type DonacionRequest struct {
	IDDonante int64           `json:"idDonante" binding:"required,gt=0"`
	Monto     decimal.Decimal `json:"monto" binding:"required"`
	IDUsuario int64           `json:"idUsuarioIngreso" binding:"required,gt=0"`
}

// DonacionResponse is one donation on the wire.
type DonacionResponse struct {
	IDDonacion   int64           `json:"idDonacion"`
	IDDonante    int64           `json:"idDonante"`
	Monto        decimal.Decimal `json:"monto"`
	FechaIngreso time.Time       `json:"fechaIngreso"`
	IDUsuario    int64           `json:"idUsuarioIngreso"`
}

// FromDonation maps a donation onto the wire shape.
func FromDonation(d *donation.Donation) DonacionResponse {
	return DonacionResponse{
		IDDonacion:   d.ID,
		IDDonante:    d.DonorID,
		Monto:        d.Amount,
		FechaIngreso: d.EnteredAt,
		IDUsuario:    d.EnteredBy,
	}
}

// FromDonations maps a donations slice onto the wire shape.
func FromDonations(list []donation.Donation) []DonacionResponse {
	out := make([]DonacionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromDonation(&list[i]))
	}
	return out
}
