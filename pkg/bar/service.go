// Package bar reads venues. Bars are only ever written as part of group
// creation, so there is no create path here.
package bar

import (
	"context"

	"github.com/ritrovo/ritrovo/pkg/model"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(barRepository barRepository) *service {
	return &service{
		barRepository,
	}
}

type barRepository interface {
	findByID(ctx context.Context, id uint) (*model.Bar, error)
	findByGroup(ctx context.Context, groupID uint) ([]model.Bar, error)
}

type service struct {
	barRepository barRepository
}

func (s *service) FindByID(ctx context.Context, id uint) (*model.Bar, error) {
	return s.barRepository.findByID(ctx, id)
}

func (s *service) FindByGroup(ctx context.Context, groupID uint) ([]model.Bar, error) {
	return s.barRepository.findByGroup(ctx, groupID)
}
