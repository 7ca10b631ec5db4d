package group

import (
	"context"
	"testing"

	"github.com/ritrovo/ritrovo/internal/errdef"
	"github.com/ritrovo/ritrovo/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	repository := &mockGroupRepository{}
	repository.
		On("create", mock.AnythingOfType("*model.Group")).
		Return(nil)
	service := NewService(repository)

	group, err := service.Create(context.Background(), "I Ragazzi del Giovedì", []string{"Bar Sport", "Da Gino", "Il Chiosco"})

	require.NoError(t, err)
	assert.Equal(t, "I Ragazzi del Giovedì", group.Name)
	assert.Equal(t, "i-ragazzi-del-giovedi", group.Slug)
	require.Len(t, group.Bars, 3)
	assert.Equal(t, "Bar Sport", group.Bars[0].Name)
	assert.Equal(t, "Da Gino", group.Bars[1].Name)
	assert.Equal(t, "Il Chiosco", group.Bars[2].Name)
	repository.AssertExpectations(t)
}

func TestService_Create_Conflict(t *testing.T) {
	repository := &mockGroupRepository{}
	repository.
		On("create", mock.AnythingOfType("*model.Group")).
		Return(errdef.NewConflict("group %q already exists", "colleghi"))
	service := NewService(repository)

	_, err := service.Create(context.Background(), "colleghi", []string{"a", "b", "c"})

	require.Error(t, err)
	assert.True(t, errdef.IsConflict(err))
	repository.AssertExpectations(t)
}

func TestService_FindBySlug_NotFound(t *testing.T) {
	repository := &mockGroupRepository{}
	repository.
		On("findBySlug", "nessuno").
		Return((*model.Group)(nil), errdef.NewNotFound("group %q doesn't exist", "nessuno"))
	service := NewService(repository)

	_, err := service.FindBySlug(context.Background(), "nessuno")

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
	repository.AssertExpectations(t)
}

type mockGroupRepository struct{ mock.Mock }

func (m *mockGroupRepository) findAll(ctx context.Context) ([]model.Group, error) {
	called := m.Called()
	return called.Get(0).([]model.Group), called.Error(1)
}

func (m *mockGroupRepository) findBySlug(ctx context.Context, slug string) (*model.Group, error) {
	called := m.Called(slug)
	return called.Get(0).(*model.Group), called.Error(1)
}

func (m *mockGroupRepository) create(ctx context.Context, group *model.Group) error {
	called := m.Called(group)
	return called.Error(0)
}
