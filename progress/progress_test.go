package progress

import (
	"codelearn/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chapterList(names ...string) []models.Chapter {
	chapters := make([]models.Chapter, len(names))
	for i, name := range names {
		chapters[i] = models.Chapter{ChapterName: name}
	}
	return chapters
}

func TestCanAccessFirstChapterAlways(t *testing.T) {
	chapters := chapterList("Intro", "Loops", "Functions")
	assert.True(t, CanAccess(chapters, 0))

	// Even a fully unstarted record unlocks chapter 0.
	assert.False(t, CanAccess(chapters, 1))
	assert.False(t, CanAccess(chapters, 2))
}

func TestCanAccessRequiresPreviousCompleted(t *testing.T) {
	chapters := chapterList("Intro", "Loops", "Functions")

	updated, changed := Complete(chapters, "Intro")
	require.True(t, changed)

	assert.True(t, CanAccess(updated, 1))
	assert.False(t, CanAccess(updated, 2))
}

func TestCanAccessReadLenient(t *testing.T) {
	// A corrupted record with a later chapter done but an earlier one not is
	// tolerated: only the immediately preceding chapter is consulted.
	chapters := chapterList("A", "B", "C", "D")
	chapters[2].Completed = true

	assert.True(t, CanAccess(chapters, 0))
	assert.False(t, CanAccess(chapters, 2))
	assert.True(t, CanAccess(chapters, 3))
}

func TestCanAccessOutOfRange(t *testing.T) {
	chapters := chapterList("Intro")
	assert.False(t, CanAccess(chapters, -1))
	assert.False(t, CanAccess(chapters, 1))
}

func TestCompleteIsIdempotent(t *testing.T) {
	chapters := chapterList("Intro", "Loops")

	once, changed := Complete(chapters, "Loops")
	require.True(t, changed)

	twice, changedAgain := Complete(once, "Loops")
	assert.False(t, changedAgain)
	assert.Equal(t, once, twice)
}

func TestCompleteUnknownChapterIsNoop(t *testing.T) {
	chapters := chapterList("Intro", "Loops")

	updated, changed := Complete(chapters, "NoSuchChapter")
	assert.False(t, changed)
	assert.Equal(t, chapters, updated)
}

func TestCompleteDoesNotMutateInput(t *testing.T) {
	chapters := chapterList("Intro", "Loops")
	_, _ = Complete(chapters, "Intro")
	assert.False(t, chapters[0].Completed)
}

func TestSummarize(t *testing.T) {
	chapters := chapterList("A", "B", "C", "D")
	chapters[0].Completed = true
	chapters[1].Completed = true

	report := Summarize(chapters)
	assert.Equal(t, 2, report.Completed)
	assert.Equal(t, 4, report.Total)
	assert.InDelta(t, 0.5, report.Fraction, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	report := Summarize(nil)
	assert.Equal(t, 0, report.Completed)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, float64(0), report.Fraction)
}

func TestSummarizeFullCompletion(t *testing.T) {
	chapters := chapterList("A", "B")
	for i := range chapters {
		chapters[i].Completed = true
	}
	report := Summarize(chapters)
	assert.Equal(t, float64(1), report.Fraction)
}

func TestSummarizeFractionBounds(t *testing.T) {
	for done := 0; done <= 5; done++ {
		chapters := chapterList("a", "b", "c", "d", "e")
		for i := 0; i < done; i++ {
			chapters[i].Completed = true
		}
		report := Summarize(chapters)
		assert.GreaterOrEqual(t, report.Fraction, float64(0))
		assert.LessOrEqual(t, report.Fraction, float64(1))
		assert.Equal(t, done == 5, report.Fraction == 1)
	}
}

func TestChapterCodecRoundTrip(t *testing.T) {
	chapters := []models.Chapter{
		{
			ChapterName: "Intro",
			Completed:   true,
			Content: []models.Topic{
				{Topic: "Variables", Explain: "Boxes for values", Code: "x := 1"},
			},
		},
		{ChapterName: "Loops"},
	}

	raw, err := EncodeChapters(chapters)
	require.NoError(t, err)

	decoded, err := DecodeChapters(raw)
	require.NoError(t, err)
	assert.Equal(t, chapters, decoded)
}

func TestDecodeChaptersEmptyColumn(t *testing.T) {
	decoded, err := DecodeChapters(nil)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestExampleScenarioSequentialUnlock(t *testing.T) {
	chapters := chapterList("Intro", "Loops", "Functions")

	assert.True(t, CanAccess(chapters, 0))
	assert.False(t, CanAccess(chapters, 1))

	chapters, _ = Complete(chapters, "Intro")
	assert.True(t, CanAccess(chapters, 1))
	assert.False(t, CanAccess(chapters, 2))
}
