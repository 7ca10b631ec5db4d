package group

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

func (r repository) findAll(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.
		WithContext(ctx).
		Order("name").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all groups: %v", err)
	}

	return groups, nil
}

func (r repository) findBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group *model.Group
	err := r.db.
		WithContext(ctx).
		Where("groups.slug = ?", slug).
		First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("group %q doesn't exist", slug)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find group: %v", err)
	}

	return group, nil
}

func (r repository) create(ctx context.Context, group *model.Group) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Create(&group).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewConflict("group %q already exists", group.Name)
	}

	return err
}
