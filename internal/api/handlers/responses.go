package handlers

type ErrorResponse struct {
	Error string `json:"error" example:"room code is required"`
}

type SuccessResponse struct {
	Message string `json:"message" example:"All events have been deleted"`
}
