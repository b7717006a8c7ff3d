package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=6"`
	Role      string    `gorm:"type:varchar(20);not null;default:'santri'" json:"role" validate:"required,oneof=admin guru ortu santri muhafizh guest"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	WhatsApp  string    `gorm:"size:20" json:"whatsapp"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "santri"
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi pesan yang lebih jelas
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			return errors.New(fieldErr.Field() + " wajib diisi.")
		case "min":
			return errors.New(fieldErr.Field() + " harus minimal " + fieldErr.Param() + " karakter.")
		case "max":
			return errors.New(fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter.")
		case "oneof":
			return errors.New(fieldErr.Field() + " harus salah satu dari: " + fieldErr.Param() + ".")
		}
	}
	return err
}
