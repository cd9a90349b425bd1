package serverutils

// APIResponse is the uniform JSON envelope of every endpoint.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Code: 200, Message: message, Data: data}
}

func ErrorResponse(code int, message string) APIResponse[any] {
	return APIResponse[any]{Success: false, Code: code, Message: message}
}
