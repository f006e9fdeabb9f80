// file: internals/features/lessons/service/lesson_color.go
package service

import (
	"gorm.io/gorm"

	"kocluk_backend/internals/constants"
	lessonModel "kocluk_backend/internals/features/lessons/model"
)

// PickLessonColor walks the palette in order and returns the first color not
// in used; when every color is taken it falls back to the first entry.
func PickLessonColor(used []string) string {
	taken := make(map[string]struct{}, len(used))
	for _, c := range used {
		taken[c] = struct{}{}
	}
	for _, c := range constants.LessonColors {
		if _, ok := taken[c]; !ok {
			return c
		}
	}
	return constants.LessonColors[0]
}

// AutoAssignColor loads the teacher's current colors and picks the next one.
func AutoAssignColor(db *gorm.DB, teacherID interface{}) (string, error) {
	var used []string
	if err := db.Model(&lessonModel.LessonModel{}).
		Where("lesson_teacher_id = ?", teacherID).
		Pluck("lesson_color", &used).Error; err != nil {
		return "", err
	}
	return PickLessonColor(used), nil
}
