package repository

import (
	"context"
	"testing"

	"pos_terminal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentTypeRepository(t *testing.T) {
	repo := NewPaymentTypeRepository(setupTestDB(t))
	ctx := context.Background()

	gcash := &models.PaymentType{Name: "GCash"}
	cash := &models.PaymentType{Name: "Cash"}
	require.NoError(t, repo.Create(ctx, gcash))
	require.NoError(t, repo.Create(ctx, cash))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Cash", all[0].Name)
	assert.Equal(t, "GCash", all[1].Name)

	got, err := repo.GetByID(ctx, gcash.ID)
	require.NoError(t, err)
	assert.Equal(t, "GCash", got.Name)

	require.NoError(t, repo.Delete(ctx, gcash.ID))
	_, err = repo.GetByID(ctx, gcash.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, gcash.ID), ErrNotFound)
}
