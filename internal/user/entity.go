// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"            json:"_id"`
	ProfileImage  string             `bson:"profileImage,omitempty"   json:"profileImage,omitempty"`
	Name          string             `bson:"name"                     json:"name"`
	Email         string             `bson:"email"                    json:"email"`
	Phone         string             `bson:"phone,omitempty"          json:"phone"`
	HomeAddress   string             `bson:"homeAddress"              json:"homeAddress"`
	OfficeAddress string             `bson:"officeAddress"            json:"officeAddress"`
	Password      string             `bson:"password,omitempty"       json:"-"`
	GoogleID      string             `bson:"googleId,omitempty"       json:"googleId,omitempty"`
	WebsiteLink   string             `bson:"websiteLink,omitempty"    json:"websiteLink,omitempty"`
	FacebookLink  string             `bson:"facebookLink,omitempty"   json:"facebookLink,omitempty"`
	InstagramLink string             `bson:"instagramLink,omitempty"  json:"instagramLink,omitempty"`
	TwitterLink   string             `bson:"twitterLink,omitempty"    json:"twitterLink,omitempty"`
	LinkedinLink  string             `bson:"linkedinLink,omitempty"   json:"linkedinLink,omitempty"`
	Role          string             `bson:"role"                     json:"role"`
	IsSubscribed  bool               `bson:"isSubscribed"             json:"isSubscribed"`
	IsSuspended   bool               `bson:"isSuspended"              json:"isSuspended"`
	CreatedAt     time.Time          `bson:"createdAt"                json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"                json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPassword is false for federated-only accounts created through Google
// sign-in.
func (u *User) HasPassword() bool {
	return u.Password != ""
}
