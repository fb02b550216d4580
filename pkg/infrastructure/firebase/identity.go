package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
)

const (
	signInURL       = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"
	refreshTokenURL = "https://securetoken.googleapis.com/v1/token"
)

// identityProvider implements model.IdentityProvider against Firebase Auth.
// Administrative calls go through the Admin SDK; password sign-in and token
// refresh are only exposed by the Identity Toolkit REST API and need the web
// API key.
type identityProvider struct {
	auth       *auth.Client
	apiKey     string
	httpClient *http.Client
}

func NewIdentityProvider(ctx context.Context, app *firebase.App, apiKey string) (model.IdentityProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "init firebase auth client")
	}
	return &identityProvider{
		auth:       client,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}, nil
}

func (p *identityProvider) CreateUser(ctx context.Context, name, email, password, phoneNo string) (string, error) {
	params := (&auth.UserToCreate{}).
		DisplayName(name).
		Email(email).
		Password(password).
		PhoneNumber(phoneNo)

	record, err := p.auth.CreateUser(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "create auth user")
	}
	return record.UID, nil
}

func (p *identityProvider) SignIn(ctx context.Context, email, password string) (*model.Credentials, error) {
	var result struct {
		IDToken      string `json:"idToken"`
		RefreshToken string `json:"refreshToken"`
		ExpiresIn    string `json:"expiresIn"`
	}

	err := p.post(ctx, signInURL, map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &result)
	if err != nil {
		if isCredentialsError(err) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	return &model.Credentials{
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}, nil
}

func (p *identityProvider) Refresh(ctx context.Context, refreshToken string) (*model.Credentials, error) {
	var result struct {
		IDToken      string `json:"id_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    string `json:"expires_in"`
	}

	err := p.post(ctx, refreshTokenURL, map[string]interface{}{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	}, &result)
	if err != nil {
		if strings.Contains(err.Error(), "INVALID_REFRESH_TOKEN") {
			return nil, model.ErrInvalidRefreshToken
		}
		return nil, err
	}

	return &model.Credentials{
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}, nil
}

func (p *identityProvider) VerifyToken(ctx context.Context, idToken string) (*model.AuthToken, error) {
	token, err := p.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		log.WithError(err).Debug("bearer token rejected")
		return nil, model.ErrInvalidBearerToken
	}

	email, _ := token.Claims["email"].(string)
	return &model.AuthToken{UID: token.UID, Email: email}, nil
}

func (p *identityProvider) RevokeTokens(ctx context.Context, uid string) error {
	return errors.Wrapf(p.auth.RevokeRefreshTokens(ctx, uid), "revoke refresh tokens of %s", uid)
}

func (p *identityProvider) DeleteUser(ctx context.Context, uid string) error {
	return errors.Wrapf(p.auth.DeleteUser(ctx, uid), "delete auth user %s", uid)
}

// post sends a JSON request to an Identity Toolkit endpoint and decodes the
// response into out. API errors surface as plain errors carrying the
// provider's message code.
func (p *identityProvider) post(ctx context.Context, url string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode identity request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"?key="+p.apiKey, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build identity request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "call identity provider")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read identity response")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return errors.New(apiErr.Error.Message)
		}
		return errors.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	return errors.Wrap(json.Unmarshal(data, out), "decode identity response")
}

func isCredentialsError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "EMAIL_NOT_FOUND") ||
		strings.Contains(msg, "INVALID_PASSWORD") ||
		strings.Contains(msg, "INVALID_LOGIN_CREDENTIALS")
}
