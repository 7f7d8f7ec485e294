package model

// Session is the result of a successful login.
type Session struct {
	User         User
	AccessToken  string
	RefreshToken string
}
