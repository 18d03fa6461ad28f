// AngelaMos | 2026
// dto.go

package maintenance

import (
	"time"
)

type CreateMaintenanceRequest struct {
	Amenities    string    `json:"amenities"    validate:"required,min=1,max=200"`
	Task         string    `json:"task"         validate:"required,min=1,max=200"`
	ReminderDate time.Time `json:"reminderDate" validate:"required"`
	Description  string    `json:"description"  validate:"omitempty,max=2000"`
}

type UpdateMaintenanceRequest struct {
	Amenities    *string    `json:"amenities"    validate:"omitempty,min=1,max=200"`
	Task         *string    `json:"task"         validate:"omitempty,min=1,max=200"`
	ReminderDate *time.Time `json:"reminderDate"`
	Description  *string    `json:"description"  validate:"omitempty,max=2000"`
	Status       *string    `json:"status"       validate:"omitempty,oneof=PENDING DONE"`
}

type ListMaintenancesResponse struct {
	Maintenances []Maintenance `json:"maintenances"`
	Pagination   any           `json:"pagination"`
}
