package user

import (
	"fmt"

	"github.com/gerow/go-color"
	"github.com/whenmeet/availability-backend/internal/model"
)

type userDTO struct {
	ID       int64
	Username string
	Color    string
}

func mapToUser(dto *userDTO) (*model.User, error) {
	colorRGB, err := color.HTMLToRGB(dto.Color)
	if err != nil {
		return nil, fmt.Errorf("map color from %v", dto.Color)
	}

	return &model.User{
		ID: dto.ID,
		UserCreate: model.UserCreate{
			Username: dto.Username,
			Color:    colorRGB,
		},
	}, nil
}
