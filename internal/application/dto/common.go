package dto

// Response envoltura mínima que comparten todas las respuestas del API:
// success siempre presente, message en fallos y en la mayoría de los éxitos.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	// Error texto de la falla subyacente; solo en errores internos.
	Error string `json:"error,omitempty"`
}

// OK respuesta de éxito con mensaje.
func OK(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail respuesta de fallo con mensaje legible.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// Internal respuesta de fallo inesperado; expone el texto de la falla como en
// el API original.
func Internal(err error) Response {
	r := Response{Success: false, Message: "Internal server error"}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
