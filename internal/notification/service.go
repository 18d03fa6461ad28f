// AngelaMos | 2026
// service.go

package notification

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/farrior-homes-api/internal/authz"
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
	identity authz.Identity,
	req CreateNotificationRequest,
) (*Notification, error) {
	if err := authz.Require(identity, authz.CapNotificationsSend); err != nil {
		return nil, err
	}

	receiver, err := primitive.ObjectIDFromHex(req.Receiver)
	if err != nil {
		return nil, core.BadRequestError("invalid receiver id")
	}

	notification := &Notification{
		Receiver:     receiver,
		Message:      req.Message,
		Type:         req.Type,
		RedirectLink: req.RedirectLink,
	}

	if req.Sender != "" {
		sender, err := primitive.ObjectIDFromHex(req.Sender)
		if err != nil {
			return nil, core.BadRequestError("invalid sender id")
		}
		notification.Sender = &sender
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	return notification, nil
}

// List returns the caller's own notifications only.
func (s *Service) List(
	ctx context.Context,
	identity authz.Identity,
	page core.PageQuery,
) ([]Notification, core.Pagination, error) {
	receiver, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return nil, core.Pagination{}, core.BadRequestError(
			"invalid user id",
		)
	}

	notifications, total, err := s.repo.ListForReceiver(ctx, receiver, page)
	if err != nil {
		return nil, core.Pagination{}, fmt.Errorf(
			"list notifications: %w",
			err,
		)
	}

	return notifications, core.NewPagination(
		page,
		total,
		len(notifications),
	), nil
}

func (s *Service) Get(
	ctx context.Context,
	identity authz.Identity,
	id string,
) (*Notification, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	notification, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if notification.Receiver.Hex() != identity.UserID &&
		!authz.Advisory(identity, authz.CapNotificationsSend) {
		return nil, core.ForbiddenError("")
	}

	return notification, nil
}

func (s *Service) Delete(
	ctx context.Context,
	identity authz.Identity,
	id string,
) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	notification, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	if err := authz.RequireOwnerOr(
		identity,
		notification.Receiver.Hex(),
		authz.CapNotificationsSend,
	); err != nil {
		return err
	}

	return s.repo.Delete(ctx, oid)
}

func (s *Service) CreateSetting(
	ctx context.Context,
	identity authz.Identity,
	req CreateSettingRequest,
) (*Setting, error) {
	if err := authz.Require(identity, authz.CapSettingsManage); err != nil {
		return nil, err
	}

	setting := &Setting{
		Name:   req.Name,
		Status: *req.Status,
	}

	if err := s.repo.CreateSetting(ctx, setting); err != nil {
		return nil, err
	}

	return setting, nil
}

func (s *Service) ListSettings(ctx context.Context) ([]Setting, error) {
	return s.repo.ListSettings(ctx)
}

func (s *Service) UpdateSetting(
	ctx context.Context,
	identity authz.Identity,
	id string,
	req UpdateSettingRequest,
) (*Setting, error) {
	if err := authz.Require(identity, authz.CapSettingsManage); err != nil {
		return nil, err
	}

	oid, err := parseSettingID(id)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateSetting(ctx, oid, *req.Status)
}

func (s *Service) DeleteSetting(
	ctx context.Context,
	identity authz.Identity,
	id string,
) error {
	if err := authz.Require(identity, authz.CapSettingsManage); err != nil {
		return err
	}

	oid, err := parseSettingID(id)
	if err != nil {
		return err
	}

	return s.repo.DeleteSetting(ctx, oid)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, core.BadRequestError(
			"invalid notification id",
		)
	}
	return oid, nil
}

func parseSettingID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, core.BadRequestError(
			"invalid notification setting id",
		)
	}
	return oid, nil
}
