// AngelaMos | 2026
// service.go

package property

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
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
	req CreatePropertyRequest,
) (*Property, error) {
	owner, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return nil, core.BadRequestError("invalid owner id")
	}

	property := &Property{
		Owner:           owner,
		PropertyName:    req.PropertyName,
		Address:         req.Address,
		PropertyType:    req.PropertyType,
		Status:          StatusPending,
		Overview:        req.Overview,
		KeyFeatures:     req.KeyFeatures,
		Bedrooms:        req.Bedrooms,
		Bathrooms:       req.Bathrooms,
		SquareFeet:      req.SquareFeet,
		LotSize:         req.LotSize,
		Price:           req.Price,
		YearBuilt:       req.YearBuilt,
		MoreDetails:     req.MoreDetails,
		Photos:          req.Photos,
		LocationMapLink: req.LocationMapLink,
	}
	if property.Photos == nil {
		property.Photos = []string{}
	}
	if req.IsPosted != nil {
		property.IsPosted = *req.IsPosted
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	return property, nil
}

// List is public; visibility widens to unposted drafts only when the caller
// holds moderation capability. That check is advisory, never a gate.
func (s *Service) List(
	ctx context.Context,
	identity authz.Identity,
	page core.PageQuery,
) ([]Property, core.Pagination, error) {
	postedOnly := !authz.Advisory(identity, authz.CapModerateProperties)

	properties, total, err := s.repo.List(ctx, ListPropertiesParams{
		Page:       page,
		PostedOnly: postedOnly,
	})
	if err != nil {
		return nil, core.Pagination{}, fmt.Errorf("list properties: %w", err)
	}

	return properties, core.NewPagination(page, total, len(properties)), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Property, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, oid)
}

func (s *Service) Update(
	ctx context.Context,
	identity authz.Identity,
	id string,
	req UpdatePropertyRequest,
) (*Property, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if err := authz.RequireOwnerOr(
		identity,
		current.Owner.Hex(),
		authz.CapModerateProperties,
	); err != nil {
		return nil, err
	}

	fields := bson.M{}
	setIfPresent(fields, "propertyName", req.PropertyName)
	setIfPresent(fields, "address", req.Address)
	setIfPresent(fields, "propertyType", req.PropertyType)
	setIfPresent(fields, "status", req.Status)
	setIfPresent(fields, "overview", req.Overview)
	setIfPresent(fields, "keyFeatures", req.KeyFeatures)
	setIfPresent(fields, "moreDetails", req.MoreDetails)
	setIfPresent(fields, "locationMapLink", req.LocationMapLink)
	if req.Bedrooms != nil {
		fields["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		fields["bathrooms"] = *req.Bathrooms
	}
	if req.SquareFeet != nil {
		fields["squareFeet"] = *req.SquareFeet
	}
	if req.LotSize != nil {
		fields["lotSize"] = *req.LotSize
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.YearBuilt != nil {
		fields["yearBuilt"] = *req.YearBuilt
	}
	if req.Photos != nil {
		fields["photos"] = *req.Photos
	}
	if req.IsPosted != nil {
		fields["isPosted"] = *req.IsPosted
	}

	if len(fields) == 0 {
		return nil, core.BadRequestError("no fields to update")
	}

	return s.repo.UpdateFields(ctx, oid, fields)
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

	current, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	if err := authz.RequireOwnerOr(
		identity,
		current.Owner.Hex(),
		authz.CapModerateProperties,
	); err != nil {
		return err
	}

	return s.repo.Delete(ctx, oid)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, core.BadRequestError(
			"invalid property id",
		)
	}
	return oid, nil
}

func setIfPresent(fields bson.M, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}
