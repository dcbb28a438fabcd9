package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-employee-registry/internal/adapter"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/mock"
	"github.com/MKhiriev/go-employee-registry/models"
)

func newTestDashboardSvc(ctrl *gomock.Controller) (ClientDashboardService, *mock.MockBackendAdapter, *mock.MockClientSessionService) {
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockSession := mock.NewMockClientSessionService(ctrl)
	return NewClientDashboardService(mockAdapter, mockSession, logger.Nop()), mockAdapter, mockSession
}

func TestClientDashboardService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestDashboardSvc(ctrl)
	ctx := context.Background()
	expectActor(mockSession, testAdmin, true, true)

	mockAdapter.EXPECT().ListEmployees(ctx).Return([]models.Employee{
		{ID: "e1", Designation: "Developer"},
		{ID: "e2", Designation: "Developer"},
		{ID: "e3", Designation: "Manager"},
	}, nil)
	// 25 записей: CREATE на позициях 0, 5, 10, 15, 20
	mockAdapter.EXPECT().ListActivityLogs(ctx).Return(makeLogs(25), nil)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, map[string]int{"Developer": 2, "Manager": 1}, stats.ByDesignation)
	require.Len(t, stats.RecentAdditions, RecentAdditionsLimit)
	assert.Equal(t, "log20", stats.RecentAdditions[0].ID)
	assert.Equal(t, "log0", stats.RecentAdditions[4].ID)
	for _, l := range stats.RecentAdditions {
		assert.Equal(t, models.ActionCreate, l.Action)
	}
}

func TestClientDashboardService_Stats_LimitsRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestDashboardSvc(ctrl)
	ctx := context.Background()
	expectActor(mockSession, testAdmin, true, true)

	mockAdapter.EXPECT().ListEmployees(ctx).Return(nil, nil)
	mockAdapter.EXPECT().ListActivityLogs(ctx).Return(makeLogs(50), nil)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalEmployees)
	assert.Empty(t, stats.ByDesignation)
	assert.Len(t, stats.RecentAdditions, RecentAdditionsLimit)
	assert.Equal(t, "log45", stats.RecentAdditions[0].ID)
}

func TestClientDashboardService_Stats_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestDashboardSvc(ctrl)
	expectActor(mockSession, models.SessionUser{ID: "u2", Role: models.RoleEmployee}, true, false)

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestClientDashboardService_Stats_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestDashboardSvc(ctrl)
	ctx := context.Background()
	expectActor(mockSession, testAdmin, true, true)

	mockAdapter.EXPECT().ListEmployees(ctx).Return([]models.Employee{}, nil)
	mockAdapter.EXPECT().ListActivityLogs(ctx).Return(nil, adapter.ErrUnavailable)

	_, err := svc.Stats(ctx)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestDesignationLink(t *testing.T) {
	assert.Equal(t, "/?designation=Developer", DesignationLink("Developer"))
	assert.Equal(t, "/?designation=QA+Engineer", DesignationLink("QA Engineer"))
}
