package mtbank

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zmsync/go-mtbank-sync/internal/common"
	"github.com/zmsync/go-mtbank-sync/internal/common/httpclient"
	"github.com/zmsync/go-mtbank-sync/internal/common/log"
)

// AuthState is one stage of the multi-step login handshake. Every step
// depends on the session context the previous step extracted, so the states
// advance strictly in order; any failed step ends in StateRejected.
type AuthState int

const (
	StateUnauthenticated AuthState = iota
	StatePhoneVerified
	StatePasswordVerified
	StateRoleConfirmed
	StateAuthenticated
	StateRejected
)

func (s AuthState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StatePhoneVerified:
		return "phone_verified"
	case StatePasswordVerified:
		return "password_verified"
	case StateRoleConfirmed:
		return "role_confirmed"
	case StateAuthenticated:
		return "authenticated"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// authContext is the session context threaded between handshake steps:
// cookies from response headers plus the contract record the role step
// posts back.
type authContext struct {
	cookies  string
	contract json.RawMessage
}

type Authenticator struct {
	client *Client
}

func NewAuthenticator(client *Client) *Authenticator {
	return &Authenticator{client: client}
}

// Login drives the handshake to completion and returns the usable Session.
// Failures are permanent InvalidPreferencesErrors except for transport-level
// ones, which stay temporary.
func (a *Authenticator) Login(ctx context.Context, creds Credentials) (Session, error) {
	if creds.Phone == "" || creds.Password == "" {
		return Session{}, common.NewInvalidPreferencesError(common.ErrMissingCredentials.Error())
	}

	state := StateUnauthenticated
	ac := &authContext{}

	for state != StateAuthenticated {
		next, err := a.transition(ctx, state, creds, ac)
		if err != nil {
			log.Warn(ctx, "login rejected", log.String("state", state.String()), log.Err(err))
			return Session{}, err
		}

		log.Debug(ctx, "login state advanced",
			log.String("from", state.String()),
			log.String("to", next.String()))
		state = next
	}

	return Session{Cookie: ac.cookies}, nil
}

// transition runs the single step leaving state and returns the next state.
// A returned error means StateRejected.
func (a *Authenticator) transition(ctx context.Context, state AuthState, creds Credentials, ac *authContext) (AuthState, error) {
	switch state {
	case StateUnauthenticated:
		return a.verifyPhone(ctx, creds, ac)
	case StatePhoneVerified:
		return a.checkPassword(ctx, creds, ac)
	case StatePasswordVerified:
		return a.confirmRole(ctx, ac)
	case StateRoleConfirmed:
		return StateAuthenticated, nil
	default:
		return StateRejected, fmt.Errorf("no transition from state %s", state)
	}
}

func (a *Authenticator) verifyPhone(ctx context.Context, creds Credentials, ac *authContext) (AuthState, error) {
	res, headers, err := a.client.postJSON(ctx, pathUserIdentityByPhone,
		phoneIdentityRequest{PhoneNumber: creds.Phone, LoginWay: "1"},
		"",
		httpclient.SanitizeOptions{
			RequestBodyKeys:  []string{"phoneNumber"},
			ResponseBodyKeys: []string{"phone"},
		})
	if err != nil {
		return StateRejected, err
	}

	// identity check gates on who you are, not on data availability: any
	// bank-side rejection here means the phone number is wrong
	if class, _ := classify(res); class != ClassSuccess {
		return StateRejected, common.NewInvalidPreferencesError("Неверный номер телефона")
	}

	ac.cookies = extractSessionCookies(headers)
	return StatePhoneVerified, nil
}

func (a *Authenticator) checkPassword(ctx context.Context, creds Credentials, ac *authContext) (AuthState, error) {
	res, headers, err := a.client.postJSON(ctx, pathCheckPassword,
		checkPasswordRequest{Password: creds.Password, Version: a.client.cfg.AppVersion},
		ac.cookies,
		httpclient.SanitizeOptions{RequestBodyKeys: []string{"password"}})
	if err != nil {
		return StateRejected, err
	}

	if class, cerr := classify(res); class != ClassSuccess {
		if class == ClassPermanentAuthFailure {
			return StateRejected, cerr
		}
		return StateRejected, common.NewInvalidPreferencesError("Неверный пароль")
	}

	var data checkPasswordData
	if err := json.Unmarshal(res.Data, &data); err != nil || len(data.UserInfo.DboContracts) == 0 {
		return StateRejected, common.NewTemporaryError(common.ErrMissingContracts.Error())
	}

	ac.cookies = extractSessionCookies(headers)
	ac.contract = data.UserInfo.DboContracts[0]
	return StatePasswordVerified, nil
}

func (a *Authenticator) confirmRole(ctx context.Context, ac *authContext) (AuthState, error) {
	res, _, err := a.client.postJSON(ctx, pathUserRole, ac.contract, ac.cookies,
		httpclient.SanitizeOptions{})
	if err != nil {
		return StateRejected, err
	}

	if class, _ := classify(res); class != ClassSuccess {
		return StateRejected, common.NewInvalidPreferencesError("bad request")
	}

	return StateRoleConfirmed, nil
}
