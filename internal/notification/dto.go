// AngelaMos | 2026
// dto.go

package notification

type CreateNotificationRequest struct {
	Receiver     string `json:"receiver"     validate:"required,len=24,hexadecimal"`
	Sender       string `json:"sender"       validate:"omitempty,len=24,hexadecimal"`
	Message      string `json:"message"      validate:"required,min=1,max=2000"`
	Type         string `json:"type"         validate:"required,oneof=ALERT REMINDER ACTIVITY LIVE MARKET DOCUMENT_REMINDERS USER_REPORT MODERATION"`
	RedirectLink string `json:"redirectLink" validate:"omitempty,url"`
}

type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Pagination    any            `json:"pagination"`
}

type CreateSettingRequest struct {
	Name   string `json:"name"   validate:"required,oneof=ALERT REMINDER ACTIVITY LIVE MARKET DOCUMENT_REMINDERS USER_REPORT MODERATION"`
	Status *bool  `json:"status" validate:"required"`
}

type UpdateSettingRequest struct {
	Status *bool `json:"status" validate:"required"`
}
