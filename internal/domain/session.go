package domain

// Session is the per-browser authentication state carried by the session cookie.
type Session struct {
	LoggedIn  bool
	UserEmail string
	UserName  string
}

func (s Session) Authenticated() bool {
	return s.LoggedIn && s.UserEmail != ""
}
