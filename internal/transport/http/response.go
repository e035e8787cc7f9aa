package http

// APIResponse is the uniform envelope for every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func successResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func messageResponse(message string, data interface{}) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

func errorResponse(err string) APIResponse {
	return APIResponse{Success: false, Error: err}
}
