// AngelaMos | 2026
// service.go

package catalog

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
	req CreateOfferingRequest,
) (*Offering, error) {
	if err := authz.Require(identity, authz.CapCatalogManage); err != nil {
		return nil, err
	}

	description, err := normalizeDescription(req.Description)
	if err != nil {
		return nil, err
	}

	offering := &Offering{
		Title:       req.Title,
		SubTitle:    req.SubTitle,
		Description: description,
	}

	if err := s.repo.Create(ctx, offering); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	return offering, nil
}

func (s *Service) List(
	ctx context.Context,
	page core.PageQuery,
) ([]Offering, core.Pagination, error) {
	offerings, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, core.Pagination{}, fmt.Errorf("list services: %w", err)
	}

	return offerings, core.NewPagination(page, total, len(offerings)), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Offering, error) {
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
	req UpdateOfferingRequest,
) (*Offering, error) {
	if err := authz.Require(identity, authz.CapCatalogManage); err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.SubTitle != nil {
		fields["subTitle"] = *req.SubTitle
	}
	if req.Description != nil {
		description, err := normalizeDescription(*req.Description)
		if err != nil {
			return nil, err
		}
		fields["description"] = description
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
	if err := authz.Require(identity, authz.CapCatalogManage); err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, oid)
}

// normalizeDescription assigns fresh ObjectIDs to items that arrive without
// one so the client can address individual bullets later.
func normalizeDescription(
	items []DescriptionItemInput,
) ([]DescriptionItem, error) {
	if len(items) > maxDescriptionItems {
		return nil, core.BadRequestError(
			fmt.Sprintf(
				"description cannot have more than %d items",
				maxDescriptionItems,
			),
		)
	}

	normalized := make([]DescriptionItem, 0, len(items))
	for _, item := range items {
		id := primitive.NewObjectID()
		if item.ID != "" {
			parsed, err := primitive.ObjectIDFromHex(item.ID)
			if err != nil {
				return nil, core.BadRequestError(
					"invalid description item id",
				)
			}
			id = parsed
		}

		normalized = append(normalized, DescriptionItem{
			ID:   id,
			Text: item.Text,
		})
	}

	return normalized, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, core.BadRequestError(
			"invalid service id",
		)
	}
	return oid, nil
}
