package dto

// MaxBatchSKUs máximo de SKUs aceptados en una consulta por lote.
const MaxBatchSKUs = 200

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
