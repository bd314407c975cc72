package model

import "time"

type RuleCreate struct {
	EventID int64
	UserID  int64
	Name    string
	Choice  Choice
	Rule    string // encoded, e.g. "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,TH"
}

type Rule struct {
	ID        int64
	CreatedAt time.Time
	RuleCreate
}
