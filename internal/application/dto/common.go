package dto

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación de escrituras. ID solo en altas.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// FlexInt entero que acepta número JSON o string numérico: el cliente web envía
// los formularios con Object.fromEntries(FormData), así que todos los valores llegan como texto.
// El string vacío se decodifica como 0.
type FlexInt int64

// UnmarshalJSON implementa json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	// cast interpreta prefijos de base ("010" sería octal); los formularios envían decimal.
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimLeft(strings.TrimPrefix(s, "-"), "0")
	if digits == "" || strings.HasPrefix(digits, ".") {
		digits = "0" + digits
	}
	if neg {
		digits = "-" + digits
	}
	n, err := cast.ToInt64E(digits)
	if err != nil {
		return fmt.Errorf("valor entero inválido %q: %w", s, err)
	}
	*f = FlexInt(n)
	return nil
}

// Int64 devuelve el valor como int64.
func (f FlexInt) Int64() int64 { return int64(f) }

// Int devuelve el valor como int.
func (f FlexInt) Int() int { return int(f) }

// OptionalID devuelve nil para ids ausentes (nil, 0 o negativo); los identificadores empiezan en 1.
func OptionalID(f *FlexInt) *int64 {
	if f == nil || *f <= 0 {
		return nil
	}
	id := int64(*f)
	return &id
}
