package progress

import (
	"codelearn/models"
	"encoding/json"

	"gorm.io/datatypes"
)

// Report summarizes completion across a chapter list. Display-only; the
// chapter list itself stays authoritative.
type Report struct {
	Completed int     `json:"completedChapters"`
	Total     int     `json:"totalChapters"`
	Fraction  float64 `json:"fraction"`
}

// CanAccess reports whether the chapter at index is unlocked. Chapter 0 is
// always accessible; chapter i>0 requires chapter i-1 to be completed. Only
// the immediately preceding chapter is checked, so a record with gaps in its
// completion sequence is read leniently rather than rejected.
func CanAccess(chapters []models.Chapter, index int) bool {
	if index < 0 || index >= len(chapters) {
		return false
	}
	if index == 0 {
		return true
	}
	return chapters[index-1].Completed
}

// Complete marks the named chapter completed and returns the updated list.
// Matching is by chapter name; an unknown name is a no-op. Completion is
// monotonic: re-completing an already-completed chapter changes nothing.
// The second return value reports whether any chapter actually flipped.
func Complete(chapters []models.Chapter, chapterName string) ([]models.Chapter, bool) {
	updated := make([]models.Chapter, len(chapters))
	copy(updated, chapters)

	changed := false
	for i := range updated {
		if updated[i].ChapterName == chapterName && !updated[i].Completed {
			updated[i].Completed = true
			changed = true
		}
	}
	return updated, changed
}

// Summarize computes the completion report for a chapter list.
func Summarize(chapters []models.Chapter) Report {
	total := len(chapters)
	completed := 0
	for _, ch := range chapters {
		if ch.Completed {
			completed++
		}
	}

	fraction := float64(0)
	if total > 0 {
		fraction = float64(completed) / float64(total)
	}

	return Report{Completed: completed, Total: total, Fraction: fraction}
}

// DecodeChapters unpacks a stored chapters JSON column. A null or empty
// column decodes to an empty list rather than an error.
func DecodeChapters(raw datatypes.JSON) ([]models.Chapter, error) {
	if len(raw) == 0 {
		return []models.Chapter{}, nil
	}
	var chapters []models.Chapter
	if err := json.Unmarshal(raw, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// EncodeChapters packs a chapter list back into a JSON column value.
func EncodeChapters(chapters []models.Chapter) (datatypes.JSON, error) {
	raw, err := json.Marshal(chapters)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
