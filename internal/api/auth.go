package api

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/http"

	"github.com/gerow/go-color"
	"github.com/whenmeet/availability-backend/internal/config"
	"github.com/whenmeet/availability-backend/internal/model"
	"github.com/whenmeet/availability-backend/internal/pkg/validator"
)

// participant display colors, assigned round-robin-by-chance on sign up
var palette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#008080",
}

func (a *Api) signInHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Username string `json:"username"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(req.Username != "", "username", "username must be provided")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	user, err := a.users.GetUserByUsername(r.Context(), a.db, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			userColor, err := a.pickColor()
			if err != nil {
				a.serverErrorResponse(w, r, err)
				return
			}

			userCreate := &model.UserCreate{
				Username: req.Username,
				Color:    userColor,
			}
			id, err := a.users.CreateUser(r.Context(), a.db, userCreate)
			if err != nil {
				a.serverErrorResponse(w, r, err)
				return
			}

			user = &model.User{ID: id, UserCreate: *userCreate}
		} else {
			a.serverErrorResponse(w, r, err)
			return
		}
	}

	tokens, err := a.generateTokens(r.Context(), user.ID)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, tokens, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	input := &struct {
		RefreshToken string `json:"refresh_token"`
	}{}

	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	id, err := a.refreshTokens.Get(r.Context(), input.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.unauthorizedResponse(w, r, errors.New("no such session"))
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	accessToken, err := a.jwts.CreateToken(id)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	newRefreshToken := ""
	for {
		newRefreshToken, err = a.generateRandomString(config.SessionTokenLength())
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}

		if err := a.refreshTokens.Refresh(r.Context(), input.RefreshToken, newRefreshToken); err != nil {
			if errors.Is(err, model.ErrAlreadyExists) {
				continue
			}
			a.serverErrorResponse(w, r, err)
			return
		}

		break
	}

	if err := a.writeJSON(w, http.StatusOK, &tokens{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) logoutUserHandler(w http.ResponseWriter, r *http.Request) {
	input := &struct {
		RefreshToken string `json:"refresh_token"`
	}{}

	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.refreshTokens.Delete(r.Context(), input.RefreshToken); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.unauthorizedResponse(w, r, errors.New("no such session"))
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) pickColor() (color.RGB, error) {
	num, err := rand.Int(a.randSource, big.NewInt(int64(len(palette))))
	if err != nil {
		return color.RGB{}, err
	}

	return color.HTMLToRGB(palette[num.Int64()])
}
