package api

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"

	"github.com/whenmeet/availability-backend/internal/config"
	"github.com/whenmeet/availability-backend/internal/model"
)

const maxBodyBytes = 1 << 20

func (a *Api) writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(payload, '\n'))

	return nil
}

// readJSON decodes a single JSON value into dst, translating decoder
// failures into messages safe to echo back to the client. Unknown fields,
// oversized bodies and trailing data are all rejected.
func (a *Api) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var invalidErr *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("body has malformed JSON at character %d", syntaxErr.Offset)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body has malformed JSON")

		case errors.As(err, &typeErr):
			if typeErr.Field != "" {
				return fmt.Errorf("body has wrong JSON type for field %q", typeErr.Field)
			}
			return fmt.Errorf("body has wrong JSON type at character %d", typeErr.Offset)

		case errors.Is(err, io.EOF):
			return errors.New("body is empty")

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body has unknown field %s", field)

		case err.Error() == "http: request body too large":
			return fmt.Errorf("body exceeds %d bytes", maxBodyBytes)

		case errors.As(err, &invalidErr):
			panic(err)

		default:
			return err
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must hold a single JSON value")
	}

	return nil
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateRandomString draws n characters from the token alphabet using the
// api's random source.
func (a *Api) generateRandomString(n int) (string, error) {
	alphabetLen := big.NewInt(int64(len(tokenAlphabet)))

	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(a.randSource, alphabetLen)
		if err != nil {
			return "", err
		}
		out[i] = tokenAlphabet[idx.Int64()]
	}

	return string(out), nil
}

type tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// generateTokens issues the access/refresh pair for a signed-in user,
// regenerating the refresh token on the rare store collision.
func (a *Api) generateTokens(ctx context.Context, id int64) (*tokens, error) {
	accessToken, err := a.jwts.CreateToken(id)
	if err != nil {
		return nil, err
	}

	for {
		refreshToken, err := a.generateRandomString(config.SessionTokenLength())
		if err != nil {
			return nil, err
		}

		err = a.refreshTokens.Add(ctx, refreshToken, id)
		if errors.Is(err, model.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return &tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
	}
}

func mapSlice[A any, B any](from []A, mapFn func(A) (B, error)) ([]B, error) {
	res := make([]B, len(from))
	for i, el := range from {
		var err error
		res[i], err = mapFn(el)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
