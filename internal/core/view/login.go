package view

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/form"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Login exchanges credentials for a token and persists the session. It has
// no data to load.
type Login struct {
	auth    ports.AuthClient
	session ports.SessionStore
	logger  zerolog.Logger

	Notice Notice
}

func NewLogin(auth ports.AuthClient, session ports.SessionStore, logger zerolog.Logger) *Login {
	return &Login{auth: auth, session: session, logger: logger}
}

// Submit validates the form, performs the token exchange, and saves the
// session. Returns true when the user is now authenticated.
func (v *Login) Submit(ctx context.Context, f form.Login) bool {
	if err := form.Validate(f); err != nil {
		v.Notice = errorNotice(err.Error())
		return false
	}

	res, err := v.auth.Token(ctx, ports.Credentials{Username: f.Username, Password: f.Password})
	if err != nil {
		v.Notice = errorNotice(Message(err))
		return false
	}

	sess := domain.Session{Token: res.AccessToken, UserID: res.UserID, Username: res.Username}
	if err := v.session.Save(sess); err != nil {
		v.logger.Error().Err(err).Msg("session save failed")
		v.Notice = errorNotice("Logged in, but the session could not be saved locally.")
		return false
	}

	v.logger.Info().Str("username", res.Username).Msg("logged in")
	return true
}

// Register creates an account and shows the outcome. The user still logs
// in afterwards; registration does not issue a token.
type Register struct {
	auth   ports.AuthClient
	users  ports.UserClient
	logger zerolog.Logger

	status Status
	err    error

	// Available is the interest catalog, shown so users know what they can
	// pick. Best-effort; signup works without it.
	Available []domain.Interest
	Notice    Notice
}

func NewRegister(auth ports.AuthClient, users ports.UserClient, logger zerolog.Logger) *Register {
	return &Register{auth: auth, users: users, logger: logger}
}

// Load fetches the interest catalog. The register form needs no other data
// and never enters an error state over it.
func (v *Register) Load(ctx context.Context) {
	v.status = StatusLoading
	v.err = nil

	interests, err := v.users.Interests(ctx)
	if err != nil {
		v.logger.Warn().Err(err).Msg("interest catalog unavailable")
	} else {
		v.Available = interests
	}
	v.status = StatusReady
}

func (v *Register) Status() Status { return v.status }
func (v *Register) Err() error     { return v.err }

// Submit validates the form and creates the account. Returns true on
// success so the caller can move to the login view.
func (v *Register) Submit(ctx context.Context, f form.Register) bool {
	if err := form.Validate(f); err != nil {
		v.Notice = errorNotice(err.Error())
		return false
	}

	user, err := v.auth.Register(ctx, ports.RegisterInput{
		Username:  f.Username,
		Email:     f.Email,
		Password:  f.Password,
		Bio:       f.Bio,
		Interests: f.Interests,
	})
	if err != nil {
		v.Notice = errorNotice(Message(err))
		return false
	}

	v.Notice = successNotice("Account " + user.Username + " created. You can log in now.")
	return true
}
