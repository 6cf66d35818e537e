package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Topic is one page of chapter content. Topics are authored once and never
// mutated by the application.
type Topic struct {
	Topic   string `json:"topic"`
	Explain string `json:"explain"`
	Code    string `json:"code,omitempty"`
	Example string `json:"example,omitempty"`
}

// Chapter is an element of a course's ordered chapter list. The order of the
// list defines the unlock sequence and is never reordered after creation.
// Completed flips to true exactly once, when a learner finishes every topic.
type Chapter struct {
	ChapterName string  `json:"chapterName"`
	Completed   bool    `json:"completed"`
	Content     []Topic `json:"content,omitempty"`
}

// Course is a catalog course definition. Chapters are stored as a JSON
// document column so the authored shape survives round trips unchanged.
type Course struct {
	gorm.Model
	Title        string         `json:"courseTitle" gorm:"uniqueIndex;not null"`
	Description  string         `json:"description"`
	Type         string         `json:"type"`
	Category     string         `json:"category"`
	Image        string         `json:"image"`
	ChapterCount int            `json:"noOfChapter" gorm:"default:0"`
	Chapters     datatypes.JSON `json:"chapters"`
	Status       string         `json:"status" gorm:"default:'ACTIVE'"` // DRAFT, ACTIVE, INACTIVE
	IsDeleted    bool           `json:"-" gorm:"default:false"`
}
