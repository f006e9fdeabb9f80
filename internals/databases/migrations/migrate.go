// file: internals/databases/migrations/migrate.go
package migrations

import (
	"log"

	"gorm.io/gorm"

	assignmentModel "kocluk_backend/internals/features/assignments/model"
	lessonModel "kocluk_backend/internals/features/lessons/model"
	resourceModel "kocluk_backend/internals/features/resources/model"
	scheduleModel "kocluk_backend/internals/features/schedules/model"
	studentModel "kocluk_backend/internals/features/students/model"
	authModel "kocluk_backend/internals/features/users/auth/model"
	userModel "kocluk_backend/internals/features/users/user/model"
)

// Run applies the schema at startup: AutoMigrate for tables/indexes/FKs plus
// a handful of idempotent raw statements AutoMigrate cannot express.
// Replaces the one-shot HTTP migration endpoints of the previous system.
func Run(db *gorm.DB) error {
	log.Println("[MIGRATE] schema migration başlıyor...")

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&studentModel.StudentModel{},
		&lessonModel.LessonModel{},
		&lessonModel.LessonTopicModel{},
		&resourceModel.ResourceModel{},
		&resourceModel.ResourceLessonModel{},
		&resourceModel.ResourceTopicModel{},
		&assignmentModel.StudentAssignmentModel{},
		&assignmentModel.StudentProgressModel{},
		&scheduleModel.WeeklyScheduleModel{},
		&scheduleModel.WeeklyScheduleWeekModel{},
		&scheduleModel.WeeklyScheduleTopicModel{},
	); err != nil {
		return err
	}

	// Postgres-only statements; each is idempotent and skipped silently on
	// other dialects (tests run on sqlite).
	if db.Dialector.Name() == "postgres" {
		raw := []string{
			// topic listing per lesson in order is the hottest read path
			`CREATE INDEX IF NOT EXISTS idx_lesson_topics_lesson_order
			   ON lesson_topics (lesson_topic_lesson_id, lesson_topic_order)`,
			// expired/revoked refresh tokens are swept by hash lookup + expiry
			`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_expires_at
			   ON refresh_tokens (refresh_token_expires_at)`,
		}
		for _, stmt := range raw {
			if err := db.Exec(stmt).Error; err != nil {
				return err
			}
		}
	}

	log.Println("[MIGRATE] schema migration tamam.")
	return nil
}
