// AngelaMos | 2026
// dto.go

package auth

import (
	"github.com/carterperez-dev/farrior-homes-api/internal/user"
)

type RegisterRequest struct {
	ProfileImage    string `json:"profileImage"    validate:"omitempty,url"`
	Name            string `json:"name"            validate:"required,min=1,max=100"`
	Email           string `json:"email"           validate:"required,email,max=255"`
	Phone           string `json:"phone"           validate:"required,min=7,max=20"`
	HomeAddress     string `json:"homeAddress"     validate:"required,max=255"`
	OfficeAddress   string `json:"officeAddress"   validate:"required,max=255"`
	Password        string `json:"password"        validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	WebsiteLink     string `json:"websiteLink"     validate:"omitempty,url"`
	FacebookLink    string `json:"facebookLink"    validate:"omitempty,url"`
	InstagramLink   string `json:"instagramLink"   validate:"omitempty,url"`
	TwitterLink     string `json:"twitterLink"     validate:"omitempty,url"`
	LinkedinLink    string `json:"linkedinLink"    validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type AuthResponse struct {
	AccessToken string     `json:"accessToken"`
	User        *user.User `json:"user"`
}
