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

type machinesFixture struct {
	svc         MachinesService
	machines    *stubMachineRepo
	maintenance *stubMaintenanceRepo
	tank        *stubTankRepo
	user        *model.User
}

func newMachinesFixture() *machinesFixture {
	f := &machinesFixture{
		machines:    newStubMachineRepo(),
		maintenance: newStubMaintenanceRepo(),
		tank:        newStubTankRepo(),
		user:        &model.User{ID: 1, Email: "monteur@example.com"},
	}
	f.svc = NewMachinesService(f.machines, f.maintenance, f.tank)
	return f
}

func TestCreateMachine(t *testing.T) {
	f := newMachinesFixture()

	resp, err := f.svc.Create(context.Background(), f.user, dto.MachineRequest{
		WorkNumber: "T-12",
		WorkName:   strPtr("Fendt 724"),
		Category:   strPtr("trekker"),
	})
	require.NoError(t, err)
	assert.Equal(t, "T-12", resp.WorkNumber)
	require.NotNil(t, resp.WorkName)
	assert.Equal(t, "Fendt 724", *resp.WorkName)

	stored, err := f.machines.FindByWorkNumber(context.Background(), "T-12")
	require.NoError(t, err)
	assert.Equal(t, "monteur@example.com", stored.CreatedBy)
}

func TestCreateMachineDuplicateWorkNumber(t *testing.T) {
	f := newMachinesFixture()

	_, err := f.svc.Create(context.Background(), f.user, dto.MachineRequest{WorkNumber: "T-12"})
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), f.user, dto.MachineRequest{WorkNumber: "T-12"})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	assert.Equal(t, "Machine met werknummer T-12 bestaat al", apiErr.Detail)
}

func TestUpdateMachineByWorkNumber(t *testing.T) {
	f := newMachinesFixture()

	_, err := f.svc.Create(context.Background(), f.user, dto.MachineRequest{
		WorkNumber: "T-12",
		WorkName:   strPtr("Fendt 724"),
	})
	require.NoError(t, err)

	resp, err := f.svc.UpdateByWorkNumber(context.Background(), f.user, dto.MachineRequest{
		WorkNumber:    "T-12",
		LicenceNumber: strPtr("AB-12-CD"),
	})
	require.NoError(t, err)
	// Untouched fields survive a partial update.
	require.NotNil(t, resp.WorkName)
	assert.Equal(t, "Fendt 724", *resp.WorkName)
	require.NotNil(t, resp.LicenceNumber)
	assert.Equal(t, "AB-12-CD", *resp.LicenceNumber)
}

func TestUpdateUnknownMachine(t *testing.T) {
	f := newMachinesFixture()

	_, err := f.svc.UpdateByWorkNumber(context.Background(), f.user, dto.MachineRequest{WorkNumber: "T-99"})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Machine met werknummer T-99 niet gevonden", apiErr.Detail)
}

func TestGetMachineBundlesIssuesAndTransactions(t *testing.T) {
	f := newMachinesFixture()

	created, err := f.svc.Create(context.Background(), f.user, dto.MachineRequest{
		WorkNumber: "T-12",
		WorkName:   strPtr("Fendt 724"),
	})
	require.NoError(t, err)

	require.NoError(t, f.maintenance.Create(context.Background(), &model.MaintenanceIssue{
		IssueDescription: strPtr("Lekkende hydrauliekslang"),
		Status:           strPtr("open"),
		CreatedBy:        "monteur@example.com",
		MachineID:        created.ID,
		UserID:           1,
	}))
	require.NoError(t, f.tank.Create(context.Background(), &model.TankTransaction{
		Vehicle:       strPtr("Fendt 724"),
		StartDateTime: date(2024, time.March, 5),
		Quantity:      decimal.NewFromInt(120),
	}))

	resp, err := f.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T-12", resp.Info.WorkNumber)
	require.Len(t, resp.MaintenanceIssues, 1)
	require.Len(t, resp.TankTransactions, 1)
}

func TestGetUnknownMachine(t *testing.T) {
	f := newMachinesFixture()

	_, err := f.svc.Get(context.Background(), 99)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Machine met ID 99 niet gevonden", apiErr.Detail)
}
