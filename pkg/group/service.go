package group

import (
	"context"

	"github.com/ritrovo/ritrovo/pkg/model"

	"github.com/gosimple/slug"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(groupRepository groupRepository) *service {
	return &service{
		groupRepository,
	}
}

type groupRepository interface {
	findAll(ctx context.Context) ([]model.Group, error)
	findBySlug(ctx context.Context, slug string) (*model.Group, error)
	create(ctx context.Context, group *model.Group) error
}

type service struct {
	groupRepository groupRepository
}

func (s *service) FindAll(ctx context.Context) ([]model.Group, error) {
	return s.groupRepository.findAll(ctx)
}

func (s *service) FindBySlug(ctx context.Context, groupSlug string) (*model.Group, error) {
	return s.groupRepository.findBySlug(ctx, groupSlug)
}

// Create stores a new group and its bars in one go. The bar count is fixed at
// three by the creation form; bars keep the submitted order.
func (s *service) Create(ctx context.Context, name string, barNames []string) (*model.Group, error) {
	bars := make([]model.Bar, len(barNames))
	for i, barName := range barNames {
		bars[i] = model.Bar{Name: barName}
	}

	group := &model.Group{
		Name: name,
		Slug: slug.Make(name),
		Bars: bars,
	}

	err := s.groupRepository.create(ctx, group)
	if err != nil {
		return nil, err
	}

	return group, nil
}
