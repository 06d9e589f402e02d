// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/employee-service/internal/logger"
	"github.com/MKhiriev/employee-service/internal/mock"
	"github.com/MKhiriev/employee-service/internal/store"
	"github.com/MKhiriev/employee-service/internal/validators"
	"github.com/MKhiriev/employee-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestEmployeeSvc builds the service with a mocked repository and the real
// validator.
func newTestEmployeeSvc(t *testing.T, ctrl *gomock.Controller) (EmployeeService, *mock.MockEmployeeRepository) {
	t.Helper()
	mockRepo := mock.NewMockEmployeeRepository(ctrl)
	svc := NewEmployeeService(mockRepo, validators.NewEmployeeValidator(), logger.Nop())
	return svc, mockRepo
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestEmployeeService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Employee{{ID: 1, Name: "John Doe", Role: "Developer"}}
	mockRepo.EXPECT().FindAll(ctx).Return(want, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestEmployeeService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	draft := models.EmployeeDraft{Name: "John Doe", Role: "Developer"}
	mockRepo.EXPECT().Create(ctx, draft).Return(models.Employee{ID: 1, Name: "John Doe", Role: "Developer"}, nil)

	employee, err := svc.Create(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, int64(1), employee.ID)
}

func TestEmployeeService_Create_ValidationFailure_SkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no EXPECT on the repository: the store must never be reached
	svc, _ := newTestEmployeeSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.EmployeeDraft{Name: "", Role: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyName)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestEmployeeService_Get_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindByID(ctx, int64(999)).Return(models.Employee{}, store.ErrEmployeeNotFound)

	_, err := svc.Get(ctx, 999)
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

// ── Replace ──────────────────────────────────────────────────────────────────

func TestEmployeeService_Replace_ExistingRecord_Updates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	draft := models.EmployeeDraft{Name: "John Doe", Role: "Manager"}
	mockRepo.EXPECT().Update(ctx, int64(1), draft).Return(models.Employee{ID: 1, Name: "John Doe", Role: "Manager"}, nil)

	employee, created, err := svc.Replace(ctx, 1, draft)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Manager", employee.Role)
}

func TestEmployeeService_Replace_MissingRecord_CreatesWithPathID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	draft := models.EmployeeDraft{Name: "John Doe", Role: "Developer"}
	gomock.InOrder(
		mockRepo.EXPECT().Update(ctx, int64(42), draft).Return(models.Employee{}, store.ErrEmployeeNotFound),
		mockRepo.EXPECT().CreateWithID(ctx, int64(42), draft).Return(models.Employee{ID: 42, Name: "John Doe", Role: "Developer"}, nil),
	)

	employee, created, err := svc.Replace(ctx, 42, draft)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(42), employee.ID)
}

func TestEmployeeService_Replace_LostCreateRace_RetriesUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	draft := models.EmployeeDraft{Name: "John Doe", Role: "Developer"}
	gomock.InOrder(
		mockRepo.EXPECT().Update(ctx, int64(42), draft).Return(models.Employee{}, store.ErrEmployeeNotFound),
		mockRepo.EXPECT().CreateWithID(ctx, int64(42), draft).Return(models.Employee{}, store.ErrEmployeeAlreadyExists),
		mockRepo.EXPECT().Update(ctx, int64(42), draft).Return(models.Employee{ID: 42, Name: "John Doe", Role: "Developer"}, nil),
	)

	employee, created, err := svc.Replace(ctx, 42, draft)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(42), employee.ID)
}

func TestEmployeeService_Replace_ValidationFailure_SkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestEmployeeSvc(t, ctrl)

	_, _, err := svc.Replace(context.Background(), 1, models.EmployeeDraft{Name: "John Doe", Role: "  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyRole)
}

func TestEmployeeService_Replace_UnexpectedStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	draft := models.EmployeeDraft{Name: "John Doe", Role: "Developer"}
	mockRepo.EXPECT().Update(ctx, int64(1), draft).Return(models.Employee{}, errors.New("connection lost"))

	_, _, err := svc.Replace(ctx, 1, draft)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestEmployeeService_Delete_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteByID(ctx, int64(5)).Return(nil)

	assert.NoError(t, svc.Delete(ctx, 5))
}
