package bar

import (
	"context"
	"errors"
	"fmt"

	"github.com/ritrovo/ritrovo/internal/errdef"
	"github.com/ritrovo/ritrovo/pkg/model"

	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{
		db: db,
	}
}

func (r repository) findByID(ctx context.Context, id uint) (*model.Bar, error) {
	var bar *model.Bar
	err := r.db.
		WithContext(ctx).
		First(&bar, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("bar %d doesn't exist", id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find bar: %v", err)
	}

	return bar, nil
}

func (r repository) findByGroup(ctx context.Context, groupID uint) ([]model.Bar, error) {
	var bars []model.Bar
	// id order matches creation order, which is the submitted order
	err := r.db.
		WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("id").
		Find(&bars).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find bars of group %d: %v", groupID, err)
	}

	return bars, nil
}
