package transport

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type SignOutRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenResponse carries the issued tokens. Guest sessions get no refresh
// token; they last as long as the access token does.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Mode         string `json:"mode"`
	UserID       string `json:"userId"`
	Name         string `json:"name,omitempty"`
}
