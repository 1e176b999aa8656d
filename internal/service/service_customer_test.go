package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/mock"
	"github.com/MKhiriev/vidly/internal/store"
	"github.com/MKhiriev/vidly/internal/validators"
	"github.com/MKhiriev/vidly/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCustomerService_CRUD(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockCustomerRepository(ctrl)
	svc := NewCustomerService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Customer) (models.Customer, error) {
			return c, nil
		},
	)
	created, err := svc.Create(ctx, models.Customer{Name: "Jane Doe", Phone: "555-0100"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsGold)

	repo.EXPECT().GetByID(ctx, created.ID).Return(created, nil)
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	repo.EXPECT().Update(ctx, gomock.Any()).Return(models.Customer{}, store.ErrNotFound)
	_, err = svc.Update(ctx, created)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	repo.EXPECT().Delete(ctx, created.ID).Return(created, nil)
	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
}

func TestCustomerValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockCustomerService(ctrl)
	svc := NewCustomerValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Customer{Name: "Jane", Phone: "555-0100"})
	assert.ErrorIs(t, err, validators.ErrInvalidCustomerName)

	_, err = svc.Create(ctx, models.Customer{Name: "Jane Doe", Phone: "555"})
	assert.ErrorIs(t, err, validators.ErrInvalidPhone)

	_, err = svc.Delete(ctx, "abc")
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	inner.EXPECT().List(ctx).Return([]models.Customer{testCustomer}, nil)
	customers, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}
