// file: internals/features/schedules/service/generator.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// WeekSpan: one contiguous 7-day bucket of a schedule.
type WeekSpan struct {
	Number    int
	StartDate time.Time
	EndDate   time.Time
}

// AssignmentRef: the subset of an assignment the distributor needs -
// its id, the owning lesson of its topic, and the topic's order.
type AssignmentRef struct {
	AssignmentID uuid.UUID
	LessonID     uuid.UUID
	LessonName   string
	TopicOrder   int
}

// Placement: assignment placed into a week with a dense per-week order.
type Placement struct {
	WeekNumber   int
	AssignmentID uuid.UUID
	TopicOrder   int
}

// WeekCount: ceil((end-start)/7days). A partial trailing day counts as a
// full day, so a 14-day range is exactly 2 weeks and 7 days + 2 hours is 2.
func WeekCount(start, end time.Time) int {
	const day = 24 * time.Hour
	span := end.Sub(start)
	if span <= 0 {
		return 0
	}
	days := int((span + day - 1) / day)
	return (days + 6) / 7
}

// BuildWeekSpans produces n contiguous 7-day spans from start.
func BuildWeekSpans(start time.Time, n int) []WeekSpan {
	spans := make([]WeekSpan, 0, n)
	for i := 0; i < n; i++ {
		ws := start.AddDate(0, 0, 7*i)
		spans = append(spans, WeekSpan{
			Number:    i + 1,
			StartDate: ws,
			EndDate:   ws.AddDate(0, 0, 6),
		})
	}
	return spans
}

// DistributeRoundRobin groups the assignments by their topic's owning lesson,
// sorts each group by topic order, then fills week after week taking one
// topic per lesson group (each group advances its own cursor) until every
// group is exhausted or weeks run out. Per-week topic order is dense from 1.
func DistributeRoundRobin(refs []AssignmentRef, weekCount int) []Placement {
	if weekCount <= 0 || len(refs) == 0 {
		return nil
	}

	byLesson := make(map[uuid.UUID][]AssignmentRef)
	for _, r := range refs {
		byLesson[r.LessonID] = append(byLesson[r.LessonID], r)
	}

	// deterministic group order: lesson name, then id as tiebreaker
	lessonIDs := make([]uuid.UUID, 0, len(byLesson))
	for id := range byLesson {
		lessonIDs = append(lessonIDs, id)
		group := byLesson[id]
		sort.Slice(group, func(i, j int) bool {
			return group[i].TopicOrder < group[j].TopicOrder
		})
	}
	sort.Slice(lessonIDs, func(i, j int) bool {
		a, b := byLesson[lessonIDs[i]][0], byLesson[lessonIDs[j]][0]
		if a.LessonName != b.LessonName {
			return a.LessonName < b.LessonName
		}
		return lessonIDs[i].String() < lessonIDs[j].String()
	})

	cursors := make(map[uuid.UUID]int, len(byLesson))
	placements := make([]Placement, 0, len(refs))

	for week := 1; week <= weekCount; week++ {
		order := 1
		placed := false
		for _, lid := range lessonIDs {
			group := byLesson[lid]
			cur := cursors[lid]
			if cur >= len(group) {
				continue
			}
			placements = append(placements, Placement{
				WeekNumber:   week,
				AssignmentID: group[cur].AssignmentID,
				TopicOrder:   order,
			})
			cursors[lid] = cur + 1
			order++
			placed = true
		}
		if !placed {
			break // every group exhausted
		}
	}
	return placements
}
