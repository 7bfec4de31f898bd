package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un empleado.
type Employee struct {
	ID       int64
	Name     string
	Position string // cargo
	Phone    string
	Email    string
	Salary   decimal.Decimal
	HiredAt  *time.Time // fecha de contratación (solo fecha)
}
