package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/ritrovo/ritrovo/internal/errdef"
	"github.com/ritrovo/ritrovo/pkg/model"

	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(ctx context.Context, u *model.User) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	// the unique index on (group_id, nickname) resolves the lookup-then-create
	// race between two concurrent registrations
	err := r.db.WithContext(ctx).Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewConflict("nickname %q is already taken in this group", u.Nickname)
	}

	return err
}

func (r repository) findByNickname(ctx context.Context, groupID uint, nickname string) (*model.User, error) {
	var u *model.User
	err := r.db.
		WithContext(ctx).
		Where("group_id = ? AND nickname = ?", groupID, nickname).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user %q in group %d", nickname, groupID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %v", err)
	}
	return u, nil
}
