package response

import (
	"trainhub/internal/usecase/commands"
	"trainhub/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		UserID:      r.UserID.String(),
		Role:        r.Role.String(),
		DisplayName: r.DisplayName,
	}
}

type CurrentUserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
	LastLoginAt *int64 `json:"last_login_at,omitempty"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *CurrentUserResponse {
	resp := &CurrentUserResponse{
		ID:          v.ID.String(),
		Email:       v.Email,
		Role:        v.Role,
		DisplayName: v.DisplayName,
	}
	if v.LastLoginAt != nil {
		ts := v.LastLoginAt.Unix()
		resp.LastLoginAt = &ts
	}
	return resp
}
