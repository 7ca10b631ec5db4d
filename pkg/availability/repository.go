package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

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

func (r repository) create(ctx context.Context, availability *model.Availability) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Create(&availability).Error
}

func (r repository) findByID(ctx context.Context, id uint) (*model.Availability, error) {
	var availability *model.Availability
	err := r.db.
		WithContext(ctx).
		Preload("User").
		First(&availability, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("availability %d doesn't exist", id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find availability: %v", err)
	}

	return availability, nil
}

// findByGroupAndDate scopes through the bar, never through the user's group.
// The bar is the single source of truth for which group a row belongs to.
func (r repository) findByGroupAndDate(ctx context.Context, groupID uint, date time.Time) ([]model.Availability, error) {
	var availabilities []model.Availability
	err := r.db.
		WithContext(ctx).
		Joins("JOIN bars ON bars.id = availabilities.bar_id").
		Where("bars.group_id = ? AND availabilities.date = ?", groupID, date.Format("2006-01-02")).
		Preload("User").
		Preload("Bar").
		Order("availabilities.start_time").
		Find(&availabilities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find availabilities of group %d: %v", groupID, err)
	}

	return availabilities, nil
}

func (r repository) delete(ctx context.Context, id uint) error {
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Delete(&model.Availability{}, id).Error
}
