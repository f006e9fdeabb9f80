// file: internals/databases/seeders/super_admin_seeder.go
package seeders

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"kocluk_backend/internals/configs"
	"kocluk_backend/internals/constants"
	userModel "kocluk_backend/internals/features/users/user/model"
	helper "kocluk_backend/internals/helpers"
)

// SeedSuperAdmin creates the super-admin account from env on first boot.
// Idempotent: an existing account with the same email is left untouched.
func SeedSuperAdmin(db *gorm.DB) {
	email := configs.GetEnv("SUPER_ADMIN_EMAIL")
	password := configs.GetEnv("SUPER_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[SEED] SUPER_ADMIN_EMAIL/PASSWORD tanımlı değil, seeder atlandı")
		return
	}

	var existing userModel.UserModel
	err := db.Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED] süper yönetici sorgusu başarısız: %v", err)
		return
	}

	hash, err := helper.HashPassword(password)
	if err != nil {
		log.Printf("[SEED] parola hash hatası: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserName:     configs.GetEnv("SUPER_ADMIN_NAME", "Süper Yönetici"),
		UserEmail:    email,
		UserPassword: &hash,
		UserRole:     constants.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED] süper yönetici oluşturulamadı: %v", err)
		return
	}
	log.Printf("[SEED] süper yönetici oluşturuldu: %s", email)
}
