// file: internals/features/lessons/service/lesson_color_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kocluk_backend/internals/constants"
)

func TestPickLessonColor_EmptyUsed(t *testing.T) {
	assert.Equal(t, "blue", PickLessonColor(nil))
}

func TestPickLessonColor_SkipsTaken(t *testing.T) {
	got := PickLessonColor([]string{"blue", "green"})
	assert.Equal(t, "red", got)
}

func TestPickLessonColor_OrderIndependent(t *testing.T) {
	got := PickLessonColor([]string{"green", "blue", "purple"})
	assert.Equal(t, "red", got)
}

func TestPickLessonColor_AllTakenFallsBackToFirst(t *testing.T) {
	got := PickLessonColor(constants.LessonColors)
	assert.Equal(t, constants.LessonColors[0], got)
}

func TestPickLessonColor_DuplicatesInUsed(t *testing.T) {
	got := PickLessonColor([]string{"blue", "blue", "blue"})
	assert.Equal(t, "green", got)
}
