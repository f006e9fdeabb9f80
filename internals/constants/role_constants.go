// file: internals/constants/role_constants.go
package constants

// Account roles. Teachers own all tenant data; the super admin manages
// teacher accounts and bypasses ownership checks.
const (
	RoleTeacher    = "TEACHER"
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleStudent    = "STUDENT"
)

// Exam tracks a lesson can target.
const (
	ExamTypeTYT = "TYT"
	ExamTypeAYT = "AYT"
)

// LessonColors: the fixed palette, walked in order when a lesson is created
// without an explicit color.
var LessonColors = []string{"blue", "green", "red", "purple", "orange", "pink", "yellow"}
