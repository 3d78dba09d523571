package domain

// Session is the locally held proof of login used to authorize API calls.
// The three fields are always present together; a record missing any of
// them is treated as no session at all.
type Session struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Complete reports whether every session field is populated.
func (s Session) Complete() bool {
	return s.Token != "" && s.UserID != "" && s.Username != ""
}
