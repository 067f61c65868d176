package service

import (
	"time"

	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"
)

// Shared model→DTO mappers. Dates serialize as "2006-01-02", timestamps as
// RFC 3339, matching what the frontends already parse.

func fmtDate(t time.Time) string { return t.Format("2006-01-02") }

func fmtDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fmtDate(*t)
	return &s
}

func fmtTimestamp(t time.Time) string { return t.Format(time.RFC3339) }

func toRoleResponse(r model.Role) dto.RoleResponse {
	return dto.RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description}
}

func toAddressResponse(a *model.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		Street:     a.Street,
		Number:     a.Number,
		PostalCode: a.PostalCode,
		City:       a.City,
		Country:    a.Country,
	}
}

func toUserResponse(u *model.User) dto.UserResponse {
	roles := make([]dto.RoleResponse, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = toRoleResponse(r)
	}
	return dto.UserResponse{
		ID:              u.ID,
		CreatedAt:       fmtTimestamp(u.CreatedAt),
		LastModifiedAt:  fmtTimestamp(u.UpdatedAt),
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		DateOfBirth:     fmtDatePtr(u.DateOfBirth),
		Email:           u.Email,
		TelephoneNumber: u.TelephoneNumber,
		IsActive:        u.IsActive,
		Roles:           roles,
		Address:         toAddressResponse(u.Address),
	}
}

func toWorkingHoursResponse(w model.WorkingHours) dto.WorkingHoursResponse {
	return dto.WorkingHoursResponse{
		ID:             w.ID,
		Date:           fmtDate(w.Date),
		Hours:          w.Hours,
		HoursFormatted: w.HoursFormatted(),
		Milkings:       w.Milkings,
		Description:    w.Description,
		Submitted:      w.Submitted,
		CreatedBy:      w.CreatedBy,
		LastModifiedBy: w.LastModifiedBy,
	}
}

func toVakantieResponse(v model.Vakantie) dto.VakantieResponse {
	return dto.VakantieResponse{
		ID:        v.ID,
		StartDate: fmtDate(v.StartDate),
		EndDate:   fmtDate(v.EndDate),
		UserID:    v.UserID,
	}
}

func toMachineResponse(m *model.Machine) dto.MachineResponse {
	return dto.MachineResponse{
		ID:               m.ID,
		WorkNumber:       m.WorkNumber,
		WorkName:         m.WorkName,
		Category:         m.Category,
		Group:            m.Group,
		BrandName:        m.BrandName,
		TypeName:         m.TypeName,
		LicenceNumber:    m.LicenceNumber,
		ChassisNumber:    m.ChassisNumber,
		ConstructionYear: m.ConstructionYear,
		AscriptionCode:   m.AscriptionCode,
		InsuranceType:    m.InsuranceType,
	}
}

func toMaintenanceResponse(issue model.MaintenanceIssue) dto.MaintenanceResponse {
	resp := dto.MaintenanceResponse{
		ID:               issue.ID,
		CreatedAt:        fmtTimestamp(issue.CreatedAt),
		CreatedBy:        issue.CreatedBy,
		LastModifiedAt:   fmtTimestamp(issue.UpdatedAt),
		LastModifiedBy:   issue.LastModifiedBy,
		IssueDescription: issue.IssueDescription,
		Status:           issue.Status,
		Priority:         issue.Priority,
	}
	if issue.Machine != nil {
		m := toMachineResponse(issue.Machine)
		resp.Machine = &m
	}
	if issue.User != nil {
		u := toUserResponse(issue.User)
		resp.User = &u
	}
	return resp
}

func toTankTransactionResponse(t model.TankTransaction) dto.TankTransactionResponse {
	return dto.TankTransactionResponse{
		ID:                  t.ID,
		Vehicle:             t.Vehicle,
		Driver:              t.Driver,
		TransactionType:     t.TransactionType,
		AcquisitionMode:     t.AcquisitionMode,
		TransactionStatus:   t.TransactionStatus,
		StartDateTime:       fmtTimestamp(t.StartDateTime),
		TransactionNumber:   t.TransactionNumber,
		Product:             t.Product,
		Quantity:            t.Quantity,
		TransactionDuration: t.TransactionDuration,
		Meter:               t.Meter,
		MeterType:           t.MeterType,
	}
}
