package entity

import (
	"strconv"
	"time"
)

// Roles válidos para User. "Finanaceiro" conserva la grafía histórica de los
// datos ya persistidos; corregirla rompería los logins existentes.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleGerente    = "Gerente"
	RoleFinanceiro = "Finanaceiro"
	RoleEngenharia = "Engenharia"
	RoleRH         = "RH"
	RoleComercial  = "Comercial"
	RoleCompras    = "Compras"
	RoleUnassigned = "null" // rol aún no asignado (valor por defecto al persistir)
)

// Roles lista los roles asignables (excluye RoleUnassigned).
var Roles = []string{
	RoleAdmin, RoleManager, RoleGerente, RoleFinanceiro,
	RoleEngenharia, RoleRH, RoleComercial, RoleCompras,
}

// ValidRole reporta si s es un rol asignable.
func ValidRole(s string) bool {
	for _, r := range Roles {
		if s == r {
			return true
		}
	}
	return false
}

// User representa un usuario del panel de ventas.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	LastLoginAt  *time.Time // presente por compatibilidad; ningún flujo lo escribe hoy
	Sale         string     // caché derivada: valores de SaleHistory unidos por coma
	SaleHistory  []SaleEntry
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SaleEntry es una entrada del libro de ventas de un usuario. El libro es
// append-only: ninguna entrada se edita ni se elimina.
type SaleEntry struct {
	Value         float64
	Date          time.Time
	TotalExpenses float64
	NetProfit     float64
	Revenue       float64
}

// AppendSale agrega una entrada al historial y extiende la caché Sale en la
// misma mutación, para que ambas se persistan en un solo write.
func (u *User) AppendSale(value, totalExpenses, netProfit, revenue float64, at time.Time) {
	text := FormatSaleValue(value)
	if u.Sale != "" {
		u.Sale = u.Sale + "," + text
	} else {
		u.Sale = text
	}
	u.SaleHistory = append(u.SaleHistory, SaleEntry{
		Value:         value,
		Date:          at,
		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		Revenue:       revenue,
	})
	u.UpdatedAt = at
}

// FormatSaleValue devuelve la representación decimal más corta del valor
// ("100", "1.5"), la misma que acumula la caché Sale.
func FormatSaleValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
