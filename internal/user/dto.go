// AngelaMos | 2026
// dto.go

package user

type UpdateProfileRequest struct {
	ProfileImage  *string `json:"profileImage"  validate:"omitempty,url"`
	Name          *string `json:"name"          validate:"omitempty,min=1,max=100"`
	Phone         *string `json:"phone"         validate:"omitempty,min=7,max=20"`
	HomeAddress   *string `json:"homeAddress"   validate:"omitempty,max=255"`
	OfficeAddress *string `json:"officeAddress" validate:"omitempty,max=255"`
	WebsiteLink   *string `json:"websiteLink"   validate:"omitempty,url"`
	FacebookLink  *string `json:"facebookLink"  validate:"omitempty,url"`
	InstagramLink *string `json:"instagramLink" validate:"omitempty,url"`
	TwitterLink   *string `json:"twitterLink"   validate:"omitempty,url"`
	LinkedinLink  *string `json:"linkedinLink"  validate:"omitempty,url"`
}

type ListUsersResponse struct {
	Users      []User `json:"users"`
	Pagination any    `json:"pagination"`
}
