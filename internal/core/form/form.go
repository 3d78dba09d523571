// Package form holds the validated user-input forms of the client. Every
// form is checked locally before the corresponding request is sent, so the
// common rejections never cost a round-trip.
package form

// Login is the credential form for POST /auth/token.
type Login struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Register is the signup form for POST /auth/register.
type Register struct {
	Username  string `validate:"required,min=3,max=30"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
	Bio       string `validate:"max=300"`
	Interests []string
}

// CreateGroup is the form for POST /groups.
type CreateGroup struct {
	Name        string `validate:"required,min=2,max=50"`
	Description string `validate:"max=300"`
}

// JoinGroup carries an invite code. Codes are six characters from the
// server's unambiguous alphabet; they are upcased before sending.
type JoinGroup struct {
	InviteCode string `validate:"required,len=6,alphanum"`
}

// Activity is the proposal form for POST /activities.
type Activity struct {
	Title        string `validate:"required,min=2,max=80"`
	Description  string `validate:"max=300"`
	Emoji        string `validate:"max=8"`
	Difficulty   string `validate:"omitempty,oneof=easy medium hard"`
	DeadlineDays int    `validate:"gte=0,lte=30"`
}
