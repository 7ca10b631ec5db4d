package availability

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ritrovo/ritrovo/internal/errdef"
	"github.com/ritrovo/ritrovo/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var marco = model.Identity{UserID: 9, Nickname: "marco", GroupSlug: "colleghi"}

func TestService_Submit(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("FindBySlug", "colleghi").
		Return(&model.Group{ID: 5, Name: "colleghi", Slug: "colleghi"}, nil)
	userService := &mockUserService{}
	userService.
		On("FindByNickname", uint(5), "marco").
		Return(&model.User{ID: 9, GroupID: 5, Nickname: "marco"}, nil)
	barService := &mockBarService{}
	barService.
		On("FindByID", uint(3)).
		Return(&model.Bar{ID: 3, GroupID: 5, Name: "Bar Sport"}, nil)
	repository := &mockAvailabilityRepository{}
	repository.
		On("create", mock.AnythingOfType("*model.Availability")).
		Return(nil)
	service := NewService(discard, repository, groupService, barService, userService)

	availability, err := service.Submit(context.Background(), "colleghi", marco, 3, "2024-06-01", "13:00", "14:00")

	require.NoError(t, err)
	assert.Equal(t, uint(9), availability.UserID)
	assert.Equal(t, uint(3), availability.BarID)
	assert.Equal(t, "13:00", availability.StartTime)
	assert.Equal(t, "14:00", availability.EndTime)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), availability.Date)
	repository.AssertExpectations(t)
}

func TestService_Submit_BarFromAnotherGroup(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("FindBySlug", "colleghi").
		Return(&model.Group{ID: 5, Name: "colleghi", Slug: "colleghi"}, nil)
	userService := &mockUserService{}
	userService.
		On("FindByNickname", uint(5), "marco").
		Return(&model.User{ID: 9, GroupID: 5, Nickname: "marco"}, nil)
	barService := &mockBarService{}
	barService.
		On("FindByID", uint(77)).
		Return(&model.Bar{ID: 77, GroupID: 6, Name: "Bar Altrui"}, nil)
	repository := &mockAvailabilityRepository{}
	service := NewService(discard, repository, groupService, barService, userService)

	_, err := service.Submit(context.Background(), "colleghi", marco, 77, "2024-06-01", "13:00", "14:00")

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
	repository.AssertNotCalled(t, "create", mock.Anything)
}

func TestService_Submit_EndBeforeStart(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("FindBySlug", "colleghi").
		Return(&model.Group{ID: 5, Name: "colleghi", Slug: "colleghi"}, nil)
	userService := &mockUserService{}
	userService.
		On("FindByNickname", uint(5), "marco").
		Return(&model.User{ID: 9, GroupID: 5, Nickname: "marco"}, nil)
	barService := &mockBarService{}
	barService.
		On("FindByID", uint(3)).
		Return(&model.Bar{ID: 3, GroupID: 5, Name: "Bar Sport"}, nil)
	repository := &mockAvailabilityRepository{}
	service := NewService(discard, repository, groupService, barService, userService)

	_, err := service.Submit(context.Background(), "colleghi", marco, 3, "2024-06-01", "14:00", "13:00")
	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))

	_, err = service.Submit(context.Background(), "colleghi", marco, 3, "2024-06-01", "14:00", "14:00")
	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))

	repository.AssertNotCalled(t, "create", mock.Anything)
}

func TestService_Submit_StaleIdentity(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("FindBySlug", "colleghi").
		Return(&model.Group{ID: 5, Name: "colleghi", Slug: "colleghi"}, nil)
	userService := &mockUserService{}
	userService.
		On("FindByNickname", uint(5), "marco").
		Return((*model.User)(nil), errdef.NewNotFound("failed to find user %q in group %d", "marco", 5))
	service := NewService(discard, &mockAvailabilityRepository{}, groupService, &mockBarService{}, userService)

	_, err := service.Submit(context.Background(), "colleghi", marco, 3, "2024-06-01", "13:00", "14:00")

	require.Error(t, err)
	assert.True(t, errdef.IsUnauthorized(err))
}

func TestService_Submit_SessionFromAnotherGroup(t *testing.T) {
	groupService := &mockGroupService{}
	groupService.
		On("FindBySlug", "rivali").
		Return(&model.Group{ID: 6, Name: "rivali", Slug: "rivali"}, nil)
	userService := &mockUserService{}
	// a different marco happens to exist in the target group
	userService.
		On("FindByNickname", uint(6), "marco").
		Return(&model.User{ID: 21, GroupID: 6, Nickname: "marco"}, nil)
	repository := &mockAvailabilityRepository{}
	service := NewService(discard, repository, groupService, &mockBarService{}, userService)

	_, err := service.Submit(context.Background(), "rivali", marco, 3, "2024-06-01", "13:00", "14:00")

	require.Error(t, err)
	assert.True(t, errdef.IsUnauthorized(err))
	repository.AssertNotCalled(t, "create", mock.Anything)
}

func TestService_FindByGroupAndDate(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []model.Availability{
		{ID: 1, UserID: 9, BarID: 3, StartTime: "13:00", EndTime: "14:00"},
		{ID: 2, UserID: 13, BarID: 3, StartTime: "18:00", EndTime: "19:30"},
	}
	repository := &mockAvailabilityRepository{}
	repository.
		On("findByGroupAndDate", uint(5), date).
		Return(rows, nil)
	groupService := &mockGroupService{}
	userService := &mockUserService{}
	service := NewService(discard, repository, groupService, &mockBarService{}, userService)

	availabilities, err := service.FindByGroupAndDate(context.Background(), 5, date)

	require.NoError(t, err)
	assert.Equal(t, rows, availabilities)
	// the bar-scoped repository query is the only source of dashboard rows
	repository.AssertExpectations(t)
	groupService.AssertNotCalled(t, "FindBySlug", mock.Anything)
	userService.AssertNotCalled(t, "FindByNickname", mock.Anything, mock.Anything)
}

func TestService_Delete_Owner(t *testing.T) {
	repository := &mockAvailabilityRepository{}
	repository.
		On("findByID", uint(4)).
		Return(&model.Availability{ID: 4, UserID: 9}, nil)
	repository.
		On("delete", uint(4)).
		Return(nil)
	service := NewService(discard, repository, &mockGroupService{}, &mockBarService{}, &mockUserService{})

	err := service.Delete(context.Background(), marco, 4)

	require.NoError(t, err)
	repository.AssertExpectations(t)
}

func TestService_Delete_NotOwner_SilentNoop(t *testing.T) {
	repository := &mockAvailabilityRepository{}
	repository.
		On("findByID", uint(4)).
		Return(&model.Availability{ID: 4, UserID: 13}, nil)
	service := NewService(discard, repository, &mockGroupService{}, &mockBarService{}, &mockUserService{})

	err := service.Delete(context.Background(), marco, 4)

	require.NoError(t, err)
	repository.AssertNotCalled(t, "delete", mock.Anything)
}

func TestService_Delete_Missing_SilentNoop(t *testing.T) {
	repository := &mockAvailabilityRepository{}
	repository.
		On("findByID", uint(404)).
		Return((*model.Availability)(nil), errdef.NewNotFound("availability %d doesn't exist", 404))
	service := NewService(discard, repository, &mockGroupService{}, &mockBarService{}, &mockUserService{})

	err := service.Delete(context.Background(), marco, 404)

	require.NoError(t, err)
	repository.AssertNotCalled(t, "delete", mock.Anything)
}

type mockAvailabilityRepository struct{ mock.Mock }

func (m *mockAvailabilityRepository) create(ctx context.Context, availability *model.Availability) error {
	called := m.Called(availability)
	return called.Error(0)
}

func (m *mockAvailabilityRepository) findByID(ctx context.Context, id uint) (*model.Availability, error) {
	called := m.Called(id)
	return called.Get(0).(*model.Availability), called.Error(1)
}

func (m *mockAvailabilityRepository) findByGroupAndDate(ctx context.Context, groupID uint, date time.Time) ([]model.Availability, error) {
	called := m.Called(groupID, date)
	return called.Get(0).([]model.Availability), called.Error(1)
}

func (m *mockAvailabilityRepository) delete(ctx context.Context, id uint) error {
	called := m.Called(id)
	return called.Error(0)
}

type mockGroupService struct{ mock.Mock }

func (m *mockGroupService) FindBySlug(ctx context.Context, slug string) (*model.Group, error) {
	called := m.Called(slug)
	return called.Get(0).(*model.Group), called.Error(1)
}

type mockBarService struct{ mock.Mock }

func (m *mockBarService) FindByID(ctx context.Context, id uint) (*model.Bar, error) {
	called := m.Called(id)
	return called.Get(0).(*model.Bar), called.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) FindByNickname(ctx context.Context, groupID uint, nickname string) (*model.User, error) {
	called := m.Called(groupID, nickname)
	return called.Get(0).(*model.User), called.Error(1)
}
