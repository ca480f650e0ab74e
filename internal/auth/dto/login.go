package dto

// LoginInput arrives form-encoded on POST /token, OAuth2
// password-flow style; JSON is accepted as well.
type LoginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}
