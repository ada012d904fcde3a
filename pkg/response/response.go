package response

type ErrorResponse struct {
	Error string `json:"error"`
}

// FollowErrorResponse is returned when a follow request is refused.
type FollowErrorResponse struct {
	Code  string `json:"code" example:"ALREADY_FOLLOWING"`
	Error string `json:"error" example:"you already follow this user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
}
