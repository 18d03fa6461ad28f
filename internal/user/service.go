// AngelaMos | 2026
// service.go

package user

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

func (s *Service) List(
	ctx context.Context,
	page core.PageQuery,
) ([]User, core.Pagination, error) {
	users, total, err := s.repo.List(ctx, ListUsersParams{
		Page:   page,
		Search: page.Search,
	})
	if err != nil {
		return nil, core.Pagination{}, fmt.Errorf("list users: %w", err)
	}

	return users, core.NewPagination(page, total, len(users)), nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, oid)
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	id string,
	req UpdateProfileRequest,
) (*User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	setIfPresent(fields, "profileImage", req.ProfileImage)
	setIfPresent(fields, "name", req.Name)
	setIfPresent(fields, "phone", req.Phone)
	setIfPresent(fields, "homeAddress", req.HomeAddress)
	setIfPresent(fields, "officeAddress", req.OfficeAddress)
	setIfPresent(fields, "websiteLink", req.WebsiteLink)
	setIfPresent(fields, "facebookLink", req.FacebookLink)
	setIfPresent(fields, "instagramLink", req.InstagramLink)
	setIfPresent(fields, "twitterLink", req.TwitterLink)
	setIfPresent(fields, "linkedinLink", req.LinkedinLink)

	if len(fields) == 0 {
		return nil, core.BadRequestError("no fields to update")
	}

	return s.repo.UpdateFields(ctx, oid, fields)
}

func (s *Service) ToggleSuspend(ctx context.Context, id string) (*User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	return s.repo.SetSuspended(ctx, oid, !current.IsSuspended)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, oid)
}

// ParseID maps a malformed hex id to a 400 instead of letting it surface as
// a decode error deeper down.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, core.BadRequestError("invalid user id")
	}
	return oid, nil
}

func setIfPresent(fields bson.M, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}
