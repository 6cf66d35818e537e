package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is a single multiple-choice question. CorrectAns must be a member
// of Options; definitions that break this are tolerated and simply never
// score (no active validation, matching the stored document shape).
type Question struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	CorrectAns string   `json:"correctAns"`
}

// Quiz is a quiz definition with its full question bank. Sessions draw a
// shuffled subset from it; the definition itself is read-only at play time.
type Quiz struct {
	gorm.Model
	Title     string         `json:"title" gorm:"not null"`
	Questions datatypes.JSON `json:"quiz"`
	IsDeleted bool           `json:"-" gorm:"default:false"`
}
