package service

import (
	"context"
	"testing"
	"time"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTankTransaction(t *testing.T) {
	repo := newStubTankRepo()
	svc := NewTankService(repo)

	resp, err := svc.Create(context.Background(), dto.TankTransactionRequest{
		Vehicle:       strPtr("Fendt 724"),
		StartDateTime: "2024-03-05 08:15:00",
		Quantity:      decimal.NewFromFloat(120.5),
		Meter:         decimal.NewFromInt(48211),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Vehicle)
	assert.Equal(t, "Fendt 724", *resp.Vehicle)
	assert.True(t, resp.Quantity.Equal(decimal.NewFromFloat(120.5)))
}

func TestCreateTankTransactionDuplicateStart(t *testing.T) {
	repo := newStubTankRepo()
	svc := NewTankService(repo)

	req := dto.TankTransactionRequest{
		Vehicle:       strPtr("Fendt 724"),
		StartDateTime: "2024-03-05 08:15:00",
		Quantity:      decimal.NewFromInt(100),
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	assert.Equal(t, "Tank transactie bestaat al op basis van start tijd tank beurt", apiErr.Detail)
}

func TestCreateTankTransactionInvalidStart(t *testing.T) {
	svc := NewTankService(newStubTankRepo())

	_, err := svc.Create(context.Background(), dto.TankTransactionRequest{
		StartDateTime: "05-03-2024",
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Ongeldige start tijd", apiErr.Detail)
}

func TestListExcludesSmallEquipment(t *testing.T) {
	repo := newStubTankRepo()
	svc := NewTankService(repo)

	require.NoError(t, repo.Create(context.Background(), &model.TankTransaction{
		Vehicle:       strPtr("Fendt 724"),
		StartDateTime: date(2024, time.March, 5),
		Quantity:      decimal.NewFromInt(100),
	}))
	require.NoError(t, repo.Create(context.Background(), &model.TankTransaction{
		Vehicle:       strPtr("Klein materiaal"),
		StartDateTime: date(2024, time.March, 6),
		Quantity:      decimal.NewFromInt(5),
	}))

	transactions, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Fendt 724", *transactions[0].Vehicle)
}

func TestListByVehicleNotFound(t *testing.T) {
	svc := NewTankService(newStubTankRepo())

	_, err := svc.ListByVehicle(context.Background(), "Fendt 724")
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Geen transacties voor Fendt 724 gevonden", apiErr.Detail)
}

func TestSummedQuantityPerDay(t *testing.T) {
	repo := newStubTankRepo()
	svc := NewTankService(repo)

	entries := []struct {
		vehicle  string
		start    time.Time
		quantity decimal.Decimal
	}{
		{"Fendt 724", time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC), decimal.NewFromFloat(100.9)},
		{"Fendt 724", time.Date(2024, time.March, 5, 16, 0, 0, 0, time.UTC), decimal.NewFromInt(50)},
		{"John Deere", time.Date(2024, time.March, 6, 9, 0, 0, 0, time.UTC), decimal.NewFromInt(80)},
		{"Klein materiaal", time.Date(2024, time.March, 6, 10, 0, 0, 0, time.UTC), decimal.NewFromInt(10)},
	}
	for i := range entries {
		require.NoError(t, repo.Create(context.Background(), &model.TankTransaction{
			Vehicle:       strPtr(entries[i].vehicle),
			StartDateTime: entries[i].start,
			Quantity:      entries[i].quantity,
		}))
	}

	sums, err := svc.SummedQuantityBetween(context.Background(), date(2024, time.March, 1), date(2024, time.March, 31))
	require.NoError(t, err)
	// Fractions are truncated per transaction; small equipment is excluded.
	assert.Equal(t, map[string]int{
		"2024-03-05": 150,
		"2024-03-06": 80,
	}, sums)
}
