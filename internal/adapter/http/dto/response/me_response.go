package response

import "propostas_api/internal/infrastructure/auth"

type MeResponse struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}

func FromSession(s *auth.Session) MeResponse {
	return MeResponse{UserID: s.UserID, Email: s.Email, Role: string(s.Role), IsAdmin: s.IsAdmin()}
}
