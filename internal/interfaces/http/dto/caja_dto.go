package dto

import (
	"time"

	"github.com/Odalissj/OperacionPollitoPF/internal/domain/treasury"
	"github.com/shopspring/decimal"
)

// Wire field names stay Spanish to preserve the original API contract.

// MovimientoRequest is a manual cash movement. montoTrx is signed: positive
// credits the balance, negative debits it.
type MovimientoRequest struct {
	MontoTrx       decimal.Decimal `json:"montoTrx" binding:"required"`
	IDTipoTrx      int64           `json:"idTipoTrx" binding:"required,gt=0"`
	DescripcionTrx string          `json:"descripcionTrx" binding:"required"`
	IDUsuario      int64           `json:"idUsuarioIngreso" binding:"required,gt=0"`
}

// EstadoCajaResponse reports the current balance.
type EstadoCajaResponse struct {
	IDCaja       int64           `json:"idCaja"`
	MontoTotal   decimal.Decimal `json:"montoTotal"`
	Inicializada bool            `json:"inicializada"`
}

// MovimientoResponse reports a committed movement.
type MovimientoResponse struct {
	IDTransaccion int64           `json:"idTransaccion"`
	MontoAnterior decimal.Decimal `json:"montoAnterior"`
	MontoNuevo    decimal.Decimal `json:"montoNuevo"`
}

// TransaccionResponse is one journal entry on the wire.
type TransaccionResponse struct {
	IDTransaccion   int64           `json:"idTransaccion"`
	IDTipoTrx       int64           `json:"idTipoTrx"`
	MontoTrx        decimal.Decimal `json:"montoTrx"`
	SaldoResultante decimal.Decimal `json:"saldoResultante"`
	DescripcionTrx  string          `json:"descripcionTrx"`
	IDCaja          int64           `json:"idCaja"`
	IDUsuario       int64           `json:"idUsuarioIngreso"`
	FechaIngreso    time.Time       `json:"fechaIngreso"`
}

// FromLedgerEntry maps a journal entry onto the wire shape.
func FromLedgerEntry(e treasury.LedgerEntry) TransaccionResponse {
	return TransaccionResponse{
		IDTransaccion:   e.ID,
		IDTipoTrx:       e.MovementTypeID,
		MontoTrx:        e.Amount,
		SaldoResultante: e.ResultingBalance,
		DescripcionTrx:  e.Description,
		IDCaja:          e.CashRegisterID,
		IDUsuario:       e.EnteredBy,
		FechaIngreso:    e.EnteredAt,
	}
}

// FromLedgerEntries maps a journal slice onto the wire shape.
func FromLedgerEntries(entries []treasury.LedgerEntry) []TransaccionResponse {
	out := make([]TransaccionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromLedgerEntry(e))
	}
	return out
}

// ResumenDiarioResponse reports today's income and expense totals.
type ResumenDiarioResponse struct {
	IngresosHoy decimal.Decimal `json:"ingresosHoy"`
	EgresosHoy  decimal.Decimal `json:"egresosHoy"`
}

// TipoTransaccionResponse is one catalog row on the wire.
type TipoTransaccionResponse struct {
	IDTipoTrx   int64  `json:"idTipoTrx"`
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
}
