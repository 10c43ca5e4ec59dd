package team

import (
	"context"
	"errors"
	"testing"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTeamStore struct{ mock.Mock }

func (m *mockTeamStore) Scan(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	teams, _ := args.Get(0).([]domain.Team)
	return teams, args.Error(1)
}
func (m *mockTeamStore) Get(ctx context.Context, teamID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID)
	if t, _ := args.Get(0).(*domain.Team); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSystemStore struct{ mock.Mock }

func (m *mockSystemStore) ListByTeam(ctx context.Context, teamID string) ([]domain.System, error) {
	args := m.Called(ctx, teamID)
	systems, _ := args.Get(0).([]domain.System)
	return systems, args.Error(1)
}

func TestList_EmptyIsNonNil(t *testing.T) {
	ts := &mockTeamStore{}
	ts.On("Scan", mock.Anything).Return(nil, nil)

	teams, err := NewService(ts, nil).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, teams)
}

func TestGet_WithSystems(t *testing.T) {
	ts := &mockTeamStore{}
	ss := &mockSystemStore{}
	ts.On("Get", mock.Anything, "t1").Return(&domain.Team{TeamID: "t1", Name: "Payments"}, nil)
	ss.On("ListByTeam", mock.Anything, "t1").Return([]domain.System{{SystemID: "s1", TeamID: "t1"}}, nil)

	d, err := NewService(ts, ss).Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Payments", d.Name)
	assert.Len(t, d.Systems, 1)
}

func TestGet_NotFound(t *testing.T) {
	ts := &mockTeamStore{}
	ts.On("Get", mock.Anything, "t1").Return(nil, domain.ErrNotFound)

	_, err := NewService(ts, nil).Get(context.Background(), "t1")
	var nf *domain.NotFoundFailure
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, domain.MissingTeam, nf.Resource)
}
