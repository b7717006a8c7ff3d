// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	model "kdm_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUEST: Create (oleh admin)
   ========================================================= */

type CreateUserRequest struct {
	UserName string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin guru ortu santri muhafizh guest"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	WhatsApp string `json:"whatsapp"  validate:"omitempty,max=20"`
}

func (r *CreateUserRequest) ToModel(hashedPassword string) *model.UserModel {
	return &model.UserModel{
		UserName: r.UserName,
		Password: hashedPassword,
		Role:     r.Role,
		FullName: r.FullName,
		WhatsApp: r.WhatsApp,
		IsActive: true,
	}
}

/* =========================================================
   REQUEST: Update
   ========================================================= */

type UpdateUserRequest struct {
	Role     *string `json:"role"      validate:"omitempty,oneof=admin guru ortu santri muhafizh guest"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	WhatsApp *string `json:"whatsapp"  validate:"omitempty,max=20"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateUserRequest) ApplyTo(u *model.UserModel) {
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.FullName != nil {
		u.FullName = *r.FullName
	}
	if r.WhatsApp != nil {
		u.WhatsApp = *r.WhatsApp
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	WhatsApp string `json:"whatsapp"`
	IsActive bool   `json:"is_active"`
}

func FromModel(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		UserName: u.UserName,
		Role:     u.Role,
		FullName: u.FullName,
		WhatsApp: u.WhatsApp,
		IsActive: u.IsActive,
	}
}

func FromModels(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromModel(&users[i]))
	}
	return out
}
