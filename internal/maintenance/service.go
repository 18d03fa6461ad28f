// AngelaMos | 2026
// service.go

package maintenance

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateMaintenanceRequest,
) (*Maintenance, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	maintenance := &Maintenance{
		User:         uid,
		Amenities:    req.Amenities,
		Task:         req.Task,
		ReminderDate: req.ReminderDate,
		Description:  req.Description,
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, maintenance); err != nil {
		return nil, fmt.Errorf("create maintenance: %w", err)
	}

	return maintenance, nil
}

func (s *Service) List(
	ctx context.Context,
	userID string,
	page core.PageQuery,
) ([]Maintenance, core.Pagination, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, core.Pagination{}, err
	}

	maintenances, total, err := s.repo.List(ctx, ListMaintenancesParams{
		Page: page,
		User: uid,
	})
	if err != nil {
		return nil, core.Pagination{}, fmt.Errorf(
			"list maintenances: %w",
			err,
		)
	}

	return maintenances, core.NewPagination(page, total, len(maintenances)), nil
}

func (s *Service) Get(
	ctx context.Context,
	userID, id string,
) (*Maintenance, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, oid, uid)
}

func (s *Service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateMaintenanceRequest,
) (*Maintenance, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Amenities != nil {
		fields["amenities"] = *req.Amenities
	}
	if req.Task != nil {
		fields["task"] = *req.Task
	}
	if req.ReminderDate != nil {
		fields["reminderDate"] = *req.ReminderDate
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		return nil, core.BadRequestError("no fields to update")
	}

	return s.repo.UpdateFields(ctx, oid, uid, fields)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	uid, err := parseUserID(userID)
	if err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, oid, uid)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, core.BadRequestError(
			"invalid maintenance id",
		)
	}
	return oid, nil
}

func parseUserID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, core.BadRequestError("invalid user id")
	}
	return oid, nil
}
