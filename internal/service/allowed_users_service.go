package service

import (
	"context"
	"strings"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/repository"
	"github.com/vanozi/superleuk-backend/internal/worker"

	"github.com/rs/zerolog/log"
)

// EmailDispatcher enqueues mail jobs on Redis; satisfied by worker.Dispatcher.
type EmailDispatcher interface {
	EnqueueEmail(ctx context.Context, payload worker.EmailJobPayload) error
}

type AllowedUsersService interface {
	Create(ctx context.Context, req dto.AllowedUserRequest) (*dto.AllowedUserResponse, error)
	CreateAsync(ctx context.Context, req dto.AllowedUserRequest) (*dto.AllowedUserResponse, error)
	List(ctx context.Context) ([]dto.AllowedUserResponse, error)
	Get(ctx context.Context, id uint) (*dto.AllowedUserResponse, error)
	Update(ctx context.Context, id uint, req dto.AllowedUserRequest) (*dto.AllowedUserResponse, error)
	Delete(ctx context.Context, id uint) error
}

type allowedUsersService struct {
	repo       repository.AllowedUserRepository
	users      repository.UserRepository
	mailer     Mailer
	dispatcher EmailDispatcher
}

func NewAllowedUsersService(
	repo repository.AllowedUserRepository,
	users repository.UserRepository,
	mailer Mailer,
	dispatcher EmailDispatcher,
) AllowedUsersService {
	return &allowedUsersService{repo: repo, users: users, mailer: mailer, dispatcher: dispatcher}
}

// Create stores the invitation and sends the mail synchronously. When the
// mail cannot be delivered the invitation is rolled back so the admin sees
// the failure immediately and can retry.
func (s *allowedUsersService) Create(ctx context.Context, req dto.AllowedUserRequest) (*dto.AllowedUserResponse, error) {
	invitation, err := s.store(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendInvitation(invitation.Email); err != nil {
		_ = s.repo.Delete(ctx, invitation)
		log.Error().Err(err).Str("email", invitation.Email).Msg("invitation mail failed, rolled back")
		return nil, apierror.ErrInternal
	}

	resp := toAllowedUserResponse(invitation)
	return &resp, nil
}

// CreateAsync stores the invitation and enqueues the mail on the job queue.
// Delivery is best-effort: a full queue never fails the request.
func (s *allowedUsersService) CreateAsync(ctx context.Context, req dto.AllowedUserRequest) (*dto.AllowedUserResponse, error) {
	invitation, err := s.store(ctx, req)
	if err != nil {
		return nil, err
	}

	job := worker.EmailJobPayload{Kind: worker.EmailKindInvitation, ToEmail: invitation.Email}
	if err := s.dispatcher.EnqueueEmail(ctx, job); err != nil {
		log.Warn().Err(err).Str("email", invitation.Email).Msg("could not enqueue invitation mail")
	}

	resp := toAllowedUserResponse(invitation)
	return &resp, nil
}

func (s *allowedUsersService) store(ctx context.Context, req dto.AllowedUserRequest) (*model.AllowedUser, error) {
	emailAddr := strings.ToLower(req.Email)

	if _, err := s.repo.FindByEmail(ctx, emailAddr); err == nil {
		return nil, apierror.Conflict("Er is al een uitnodiging gestuurd naar dit e-mailadres")
	}
	if _, err := s.users.FindByEmail(ctx, emailAddr); err == nil {
		return nil, apierror.Conflict("Dit e-mailadres is al geregistreerd")
	}

	invitation := &model.AllowedUser{Email: emailAddr}
	if err := s.repo.Create(ctx, invitation); err != nil {
		return nil, err
	}
	return invitation, nil
}

func (s *allowedUsersService) List(ctx context.Context) ([]dto.AllowedUserResponse, error) {
	invitations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AllowedUserResponse, len(invitations))
	for i := range invitations {
		resp[i] = toAllowedUserResponse(&invitations[i])
	}
	return resp, nil
}

func (s *allowedUsersService) Get(ctx context.Context, id uint) (*dto.AllowedUserResponse, error) {
	invitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Uitnodiging niet gevonden")
	}
	resp := toAllowedUserResponse(invitation)
	return &resp, nil
}

// Update re-targets an invitation to a new address and re-sends the mail.
func (s *allowedUsersService) Update(ctx context.Context, id uint, req dto.AllowedUserRequest) (*dto.AllowedUserResponse, error) {
	invitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Uitnodiging niet gevonden")
	}

	emailAddr := strings.ToLower(req.Email)
	if existing, err := s.repo.FindByEmail(ctx, emailAddr); err == nil && existing.ID != invitation.ID {
		return nil, apierror.Conflict("Er is al een uitnodiging gestuurd naar dit e-mailadres")
	}
	if _, err := s.users.FindByEmail(ctx, emailAddr); err == nil {
		return nil, apierror.Conflict("Dit e-mailadres is al geregistreerd")
	}

	invitation.Email = emailAddr
	if err := s.repo.Update(ctx, invitation); err != nil {
		return nil, err
	}

	if err := s.mailer.SendInvitation(invitation.Email); err != nil {
		log.Warn().Err(err).Str("email", invitation.Email).Msg("could not re-send invitation mail")
	}

	resp := toAllowedUserResponse(invitation)
	return &resp, nil
}

func (s *allowedUsersService) Delete(ctx context.Context, id uint) error {
	invitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Uitnodiging niet gevonden")
	}
	return s.repo.Delete(ctx, invitation)
}

func toAllowedUserResponse(a *model.AllowedUser) dto.AllowedUserResponse {
	return dto.AllowedUserResponse{
		ID:             a.ID,
		CreatedAt:      fmtTimestamp(a.CreatedAt),
		LastModifiedAt: fmtTimestamp(a.UpdatedAt),
		Email:          a.Email,
	}
}
