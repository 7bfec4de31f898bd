package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest body para POST /empleados. HiredAt en formato YYYY-MM-DD.
type CreateEmployeeRequest struct {
	Name     string          `json:"nombre"`
	Position string          `json:"cargo"`
	Phone    string          `json:"telefono"`
	Email    string          `json:"email"`
	Salary   decimal.Decimal `json:"salario"`
	HiredAt  string          `json:"fecha_contratacion"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID       int64           `json:"id_empleado"`
	Name     string          `json:"nombre"`
	Position string          `json:"cargo"`
	Phone    string          `json:"telefono"`
	Email    string          `json:"email"`
	Salary   decimal.Decimal `json:"salario"`
	HiredAt  *string         `json:"fecha_contratacion"`
}
