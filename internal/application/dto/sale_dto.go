package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// ErrSaleNotNumeric el campo sale falta o no es un número JSON.
var ErrSaleNotNumeric = errors.New("sale must be a number")

// UpdateSaleRequest cuerpo crudo de PUT /sale/:id. Se decodifica con
// RawMessage porque los campos opcionales no deben rechazar el cuerpo cuando
// llegan con un tipo equivocado: se degradan a 0, igual que hacía el API
// original con sus chequeos typeof.
type UpdateSaleRequest struct {
	Sale          json.RawMessage `json:"sale"`
	TotalExpenses json.RawMessage `json:"totalExpenses"`
	NetProfit     json.RawMessage `json:"netProfit"`
	Revenue       json.RawMessage `json:"revenue"`
}

// SaleUpdate valores ya validados: Value es obligatorio y numérico, el resto
// vale 0 cuando falta o no es numérico.
type SaleUpdate struct {
	Value         float64
	TotalExpenses float64
	NetProfit     float64
	Revenue       float64
}

// Parse valida el cuerpo. Devuelve ErrSaleNotNumeric si sale falta o no es
// un número.
func (r UpdateSaleRequest) Parse() (SaleUpdate, error) {
	value, ok := asNumber(r.Sale)
	if !ok {
		return SaleUpdate{}, ErrSaleNotNumeric
	}
	return SaleUpdate{
		Value:         value,
		TotalExpenses: numberOrZero(r.TotalExpenses),
		NetProfit:     numberOrZero(r.NetProfit),
		Revenue:       numberOrZero(r.Revenue),
	}, nil
}

// SaleEntryResponse una entrada del historial de ventas en respuestas.
type SaleEntryResponse struct {
	Value         float64   `json:"value"`
	Date          time.Time `json:"date"`
	TotalExpenses float64   `json:"totalExpenses"`
	NetProfit     float64   `json:"netProfit"`
	Revenue       float64   `json:"revenue"`
}

// SaleResponse salida de GET y PUT /sale/:id.
type SaleResponse struct {
	Success     bool                `json:"success"`
	Sale        string              `json:"sale"`
	SaleHistory []SaleEntryResponse `json:"saleHistory"`
}

var jsonNull = []byte("null")

func asNumber(raw json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return 0, false
	}
	return f, true
}

func numberOrZero(raw json.RawMessage) float64 {
	v, ok := asNumber(raw)
	if !ok {
		return 0
	}
	return v
}
