package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/repository"
)

type VakantiesService interface {
	Create(ctx context.Context, user *model.User, req dto.VakantieRequest) (*dto.VakantieResponse, error)
	CreateForUser(ctx context.Context, admin *model.User, req dto.VakantieAdminRequest) (*dto.VakantieResponse, error)
	ListMine(ctx context.Context, userID uint) ([]dto.VakantieResponse, error)
	ListAll(ctx context.Context) ([]dto.VakantieWithUserResponse, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]dto.VakantieWithUserResponse, error)
	Delete(ctx context.Context, user *model.User, id uint) error

	Resources(ctx context.Context) ([]dto.ResourceResponse, error)
	CalendarEvents(ctx context.Context) ([]dto.CalendarEventResponse, error)
}

type vakantiesService struct {
	vakanties repository.VakantieRepository
	users     repository.UserRepository
}

func NewVakantiesService(vakanties repository.VakantieRepository, users repository.UserRepository) VakantiesService {
	return &vakantiesService{vakanties: vakanties, users: users}
}

// Create books a vacation for the logged-in user after the overlap check.
func (s *vakantiesService) Create(ctx context.Context, user *model.User, req dto.VakantieRequest) (*dto.VakantieResponse, error) {
	return s.create(ctx, user.ID, user.Email, req.StartDate, req.EndDate)
}

// CreateForUser books a vacation on behalf of another user; created_by tracks
// the admin who booked it.
func (s *vakantiesService) CreateForUser(ctx context.Context, admin *model.User, req dto.VakantieAdminRequest) (*dto.VakantieResponse, error) {
	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		return nil, apierror.BadRequest(fmt.Sprintf("De user met id %d bestaat niet", req.UserID))
	}
	return s.create(ctx, req.UserID, admin.Email, req.StartDate, req.EndDate)
}

func (s *vakantiesService) create(ctx context.Context, userID uint, createdBy, startDate, endDate string) (*dto.VakantieResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, apierror.BadRequest("Ongeldige datum")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, apierror.BadRequest("Ongeldige datum")
	}
	if start.After(end) {
		return nil, apierror.BadRequest("Van datum moet voor tot datum zijn")
	}

	existing, err := s.vakanties.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Touching endpoints count as overlap.
	for _, v := range existing {
		if !v.StartDate.After(end) && !v.EndDate.Before(start) {
			return nil, apierror.BadRequest(fmt.Sprintf(
				"De nieuwe vakantie overlapt met een bestaande vakantie van %s tot %s",
				fmtDate(v.StartDate), fmtDate(v.EndDate)))
		}
	}

	vakantie := &model.Vakantie{
		StartDate:      start,
		EndDate:        end,
		CreatedBy:      createdBy,
		LastModifiedBy: &createdBy,
		UserID:         userID,
	}
	if err := s.vakanties.Create(ctx, vakantie); err != nil {
		return nil, err
	}
	resp := toVakantieResponse(*vakantie)
	return &resp, nil
}

func (s *vakantiesService) ListMine(ctx context.Context, userID uint) ([]dto.VakantieResponse, error) {
	vakanties, err := s.vakanties.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VakantieResponse, len(vakanties))
	for i, v := range vakanties {
		resp[i] = toVakantieResponse(v)
	}
	return resp, nil
}

func (s *vakantiesService) ListAll(ctx context.Context) ([]dto.VakantieWithUserResponse, error) {
	vakanties, err := s.vakanties.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toVakantieWithUserResponses(vakanties), nil
}

func (s *vakantiesService) ListBetween(ctx context.Context, start, end time.Time) ([]dto.VakantieWithUserResponse, error) {
	vakanties, err := s.vakanties.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toVakantieWithUserResponses(vakanties), nil
}

// Delete removes a vacation; users may only remove their own.
func (s *vakantiesService) Delete(ctx context.Context, user *model.User, id uint) error {
	vakantie, err := s.vakanties.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound(fmt.Sprintf("De vakantie met id %d is niet gevonden", id))
	}
	if vakantie.UserID != user.ID {
		return apierror.Forbidden("Je mag alleen je eigen vakanties verwijderen")
	}
	return s.vakanties.Delete(ctx, vakantie)
}

// Resources lists every werknemer as a planner resource lane. Part-timers get
// group 2, everyone else group 1.
func (s *vakantiesService) Resources(ctx context.Context) ([]dto.ResourceResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	resources := []dto.ResourceResponse{}
	for i := range users {
		user := &users[i]
		if !user.HasRole("werknemer") {
			continue
		}
		groupID := 1
		if user.HasRole("part-time") {
			groupID = 2
		}
		resources = append(resources, dto.ResourceResponse{
			ID:      user.ID,
			Title:   user.FullName(),
			GroupID: groupID,
		})
	}
	return resources, nil
}

// CalendarEvents projects every vacation onto the planner calendar.
func (s *vakantiesService) CalendarEvents(ctx context.Context) ([]dto.CalendarEventResponse, error) {
	vakanties, err := s.vakanties.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]dto.CalendarEventResponse, len(vakanties))
	for i, v := range vakanties {
		events[i] = dto.CalendarEventResponse{
			ID:         v.ID,
			Start:      fmtDate(v.StartDate),
			End:        fmtDate(v.EndDate),
			ResourceID: v.UserID,
		}
	}
	return events, nil
}

func toVakantieWithUserResponses(vakanties []model.Vakantie) []dto.VakantieWithUserResponse {
	resp := make([]dto.VakantieWithUserResponse, len(vakanties))
	for i, v := range vakanties {
		entry := dto.VakantieWithUserResponse{
			ID:        v.ID,
			StartDate: fmtDate(v.StartDate),
			EndDate:   fmtDate(v.EndDate),
		}
		if v.User != nil {
			entry.User = toUserResponse(v.User)
		}
		resp[i] = entry
	}
	return resp
}
