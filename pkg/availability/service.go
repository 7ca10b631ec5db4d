package availability

import (
	"context"
	"log/slog"
	"time"

	"github.com/ritrovo/ritrovo/internal/errdef"
	"github.com/ritrovo/ritrovo/pkg/model"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, availabilityRepository availabilityRepository, groupService groupService, barService barService, userService userService) *service {
	return &service{
		logger:                 logger,
		availabilityRepository: availabilityRepository,
		groupService:           groupService,
		barService:             barService,
		userService:            userService,
	}
}

type availabilityRepository interface {
	create(ctx context.Context, availability *model.Availability) error
	findByID(ctx context.Context, id uint) (*model.Availability, error)
	findByGroupAndDate(ctx context.Context, groupID uint, date time.Time) ([]model.Availability, error)
	delete(ctx context.Context, id uint) error
}

type groupService interface {
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
}

type barService interface {
	FindByID(ctx context.Context, id uint) (*model.Bar, error)
}

type userService interface {
	FindByNickname(ctx context.Context, groupID uint, nickname string) (*model.User, error)
}

type service struct {
	logger                 *slog.Logger
	availabilityRepository availabilityRepository
	groupService           groupService
	barService             barService
	userService            userService
}

// Submit stores one availability window. The submitted bar must belong to the
// target group; a bar from another group reads as not existing at all. An
// identity whose user no longer exists in the group answers Unauthorized so
// the handler can send the caller back to the login form. The resolved user
// must also be the one the session was issued for; a same-named user in
// another group is not the caller.
func (s *service) Submit(ctx context.Context, groupSlug string, identity model.Identity, barID uint, dateLiteral, startTime, endTime string) (*model.Availability, error) {
	group, err := s.groupService.FindBySlug(ctx, groupSlug)
	if err != nil {
		return nil, err
	}

	user, err := s.userService.FindByNickname(ctx, group.ID, identity.Nickname)
	if err != nil {
		if errdef.IsNotFound(err) {
			return nil, errdef.NewUnauthorized("no user %q in group %q", identity.Nickname, group.Name)
		}
		return nil, err
	}
	if user.ID != identity.UserID {
		return nil, errdef.NewUnauthorized("session was not issued for group %q", group.Name)
	}

	bar, err := s.barService.FindByID(ctx, barID)
	if err != nil {
		return nil, err
	}
	if bar.GroupID != group.ID {
		return nil, errdef.NewNotFound("bar %d doesn't exist in group %q", barID, group.Name)
	}

	date, err := time.Parse("2006-01-02", dateLiteral)
	if err != nil {
		return nil, errdef.NewBadRequest("invalid date %q: expected YYYY-MM-DD", dateLiteral)
	}

	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return nil, errdef.NewBadRequest("invalid start time %q: expected HH:MM", startTime)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return nil, errdef.NewBadRequest("invalid end time %q: expected HH:MM", endTime)
	}
	if !end.After(start) {
		return nil, errdef.NewBadRequest("end time %q is not after start time %q", endTime, startTime)
	}

	availability := &model.Availability{
		UserID:    user.ID,
		BarID:     bar.ID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}

	err = s.availabilityRepository.create(ctx, availability)
	if err != nil {
		return nil, err
	}

	return availability, nil
}

func (s *service) FindByGroupAndDate(ctx context.Context, groupID uint, date time.Time) ([]model.Availability, error) {
	return s.availabilityRepository.findByGroupAndDate(ctx, groupID, date)
}

// Delete removes the row only when it exists and belongs to the caller.
// Anything else is a silent no-op: the response never reveals whether the row
// existed or whose it was. The server log still records what happened.
func (s *service) Delete(ctx context.Context, identity model.Identity, id uint) error {
	availability, err := s.availabilityRepository.findByID(ctx, id)
	if err != nil {
		if errdef.IsNotFound(err) {
			s.logger.InfoContext(ctx, "ignoring delete of missing availability", "availabilityId", id)
			return nil
		}
		return err
	}

	if availability.UserID != identity.UserID {
		s.logger.InfoContext(ctx, "ignoring delete of foreign availability", "availabilityId", id, "ownerId", availability.UserID)
		return nil
	}

	return s.availabilityRepository.delete(ctx, id)
}
