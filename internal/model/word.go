package model

import (
	"time"
)

// Word is a stored vocabulary entry with its usage counters.
type Word struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Word            string    `gorm:"uniqueIndex;not null" json:"word"`
	Meaning         string    `json:"meaning"`
	Phonetic        string    `json:"phonetic"`
	PartOfSpeech    string    `json:"partOfSpeech"`
	ExampleSentence string    `json:"exampleSentence"`
	SelectionCount  int       `gorm:"default:1" json:"selectionCount"`
	PrintCount      int       `gorm:"default:0" json:"printCount"`
	RecitationCount int       `gorm:"default:0" json:"recitationCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Word) TableName() string {
	return "words"
}

// Statistics aggregates the counters across the whole store.
type Statistics struct {
	TotalWords       int64 `json:"totalWords"`
	TotalSelections  int64 `json:"totalSelections"`
	TotalPrints      int64 `json:"totalPrints"`
	TotalRecitations int64 `json:"totalRecitations"`
}
