package handler

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
		Code:  code,
	}
}
