// file: internals/features/schedules/service/generator_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekCount(t *testing.T) {
	start := date(2026, 3, 2)

	assert.Equal(t, 2, WeekCount(start, start.AddDate(0, 0, 14)), "exactly 14 days is 2 weeks")
	assert.Equal(t, 1, WeekCount(start, start.AddDate(0, 0, 7)))
	assert.Equal(t, 2, WeekCount(start, start.AddDate(0, 0, 8)), "a partial week rounds up")
	assert.Equal(t, 1, WeekCount(start, start.AddDate(0, 0, 1)))
	assert.Equal(t, 0, WeekCount(start, start))
	assert.Equal(t, 0, WeekCount(start, start.AddDate(0, 0, -3)))
}

func TestWeekCount_PartialDayRoundsUp(t *testing.T) {
	start := date(2026, 3, 2)

	assert.Equal(t, 2, WeekCount(start, start.AddDate(0, 0, 7).Add(2*time.Hour)), "7 days + 2 hours spills into a second week")
	assert.Equal(t, 1, WeekCount(start, start.Add(2*time.Hour)), "any positive span is at least one week")
	assert.Equal(t, 2, WeekCount(start, start.AddDate(0, 0, 14).Add(-time.Minute)), "just under 14 days stays 2 weeks")
}

func TestBuildWeekSpans_Contiguous(t *testing.T) {
	start := date(2026, 3, 2)
	spans := BuildWeekSpans(start, 3)
	require.Len(t, spans, 3)

	for i, span := range spans {
		assert.Equal(t, i+1, span.Number)
		assert.Equal(t, start.AddDate(0, 0, 7*i), span.StartDate)
		assert.Equal(t, span.StartDate.AddDate(0, 0, 6), span.EndDate)
	}
	// next week starts the day after the previous one ends
	assert.Equal(t, spans[0].EndDate.AddDate(0, 0, 1), spans[1].StartDate)
}

func ref(lessonID uuid.UUID, lessonName string, order int) AssignmentRef {
	return AssignmentRef{
		AssignmentID: uuid.New(),
		LessonID:     lessonID,
		LessonName:   lessonName,
		TopicOrder:   order,
	}
}

func TestDistributeRoundRobin_OneTopicPerLessonPerWeek(t *testing.T) {
	math := uuid.New()
	turkish := uuid.New()

	refs := []AssignmentRef{
		ref(math, "Matematik", 1),
		ref(math, "Matematik", 2),
		ref(turkish, "Türkçe", 1),
		ref(turkish, "Türkçe", 2),
	}

	placements := DistributeRoundRobin(refs, 2)
	require.Len(t, placements, 4)

	byWeek := map[int][]Placement{}
	for _, p := range placements {
		byWeek[p.WeekNumber] = append(byWeek[p.WeekNumber], p)
	}
	require.Len(t, byWeek[1], 2, "one topic per lesson in week 1")
	require.Len(t, byWeek[2], 2)

	// per-week order is dense from 1
	for week := 1; week <= 2; week++ {
		orders := []int{}
		for _, p := range byWeek[week] {
			orders = append(orders, p.TopicOrder)
		}
		assert.ElementsMatch(t, []int{1, 2}, orders)
	}
}

func TestDistributeRoundRobin_RespectsTopicOrderWithinLesson(t *testing.T) {
	math := uuid.New()
	first := ref(math, "Matematik", 1)
	second := ref(math, "Matematik", 2)

	// shuffled input still places topic 1 before topic 2
	placements := DistributeRoundRobin([]AssignmentRef{second, first}, 2)
	require.Len(t, placements, 2)
	assert.Equal(t, first.AssignmentID, placements[0].AssignmentID)
	assert.Equal(t, 1, placements[0].WeekNumber)
	assert.Equal(t, second.AssignmentID, placements[1].AssignmentID)
	assert.Equal(t, 2, placements[1].WeekNumber)
}

func TestDistributeRoundRobin_MoreTopicsThanWeeks(t *testing.T) {
	math := uuid.New()
	refs := []AssignmentRef{
		ref(math, "Matematik", 1),
		ref(math, "Matematik", 2),
		ref(math, "Matematik", 3),
	}

	placements := DistributeRoundRobin(refs, 2)
	// one per week; the third topic stays unplaced
	require.Len(t, placements, 2)
	assert.Equal(t, 1, placements[0].WeekNumber)
	assert.Equal(t, 2, placements[1].WeekNumber)
}

func TestDistributeRoundRobin_DeterministicLessonOrder(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	refA := ref(a, "Biyoloji", 1)
	refB := ref(b, "Tarih", 1)

	p1 := DistributeRoundRobin([]AssignmentRef{refB, refA}, 1)
	p2 := DistributeRoundRobin([]AssignmentRef{refA, refB}, 1)
	require.Len(t, p1, 2)
	require.Equal(t, p1, p2)
	// alphabetical by lesson name
	assert.Equal(t, refA.AssignmentID, p1[0].AssignmentID)
	assert.Equal(t, 1, p1[0].TopicOrder)
	assert.Equal(t, refB.AssignmentID, p1[1].AssignmentID)
	assert.Equal(t, 2, p1[1].TopicOrder)
}

func TestDistributeRoundRobin_Empty(t *testing.T) {
	assert.Nil(t, DistributeRoundRobin(nil, 3))
	assert.Nil(t, DistributeRoundRobin([]AssignmentRef{ref(uuid.New(), "X", 1)}, 0))
}
