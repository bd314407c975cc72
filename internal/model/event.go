package model

import "time"

type EventCreate struct {
	Name      string
	Time      time.Time
	CreatorID int64
}

type Event struct {
	ID       int64
	UsersIDs []int64
	EventCreate
}
