package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentTypeService_CreateAndList(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.paymentTypes.Create(ctx, "  GCash ")
	require.NoError(t, err)
	_, err = env.paymentTypes.Create(ctx, "Cash")
	require.NoError(t, err)

	_, err = env.paymentTypes.Create(ctx, "   ")
	assert.ErrorIs(t, err, ErrInvalidPaymentType)

	paymentTypes, err := env.paymentTypes.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, paymentTypes, 2)
	assert.Equal(t, "Cash", paymentTypes[0].Name)
	assert.Equal(t, "GCash", paymentTypes[1].Name)
}

func TestPaymentTypeService_Delete(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	pt, err := env.paymentTypes.Create(ctx, "Card")
	require.NoError(t, err)

	require.NoError(t, env.paymentTypes.Delete(ctx, pt.ID))
	assert.ErrorIs(t, env.paymentTypes.Delete(ctx, pt.ID), ErrPaymentTypeNotFound)

	_, err = env.paymentTypes.GetByID(ctx, pt.ID)
	assert.ErrorIs(t, err, ErrPaymentTypeNotFound)
}

func TestPaymentTypeService_EmptyListIsNotNil(t *testing.T) {
	env := setupServices(t)

	paymentTypes, err := env.paymentTypes.GetAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, paymentTypes)
}
