package service

import (
	"context"
	"testing"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allowedFixture struct {
	svc        AllowedUsersService
	repo       *stubAllowedUserRepo
	users      *stubUserRepo
	mailer     *stubMailer
	dispatcher *stubDispatcher
}

func newAllowedFixture() *allowedFixture {
	f := &allowedFixture{
		repo:       newStubAllowedUserRepo(),
		users:      newStubUserRepo(),
		mailer:     &stubMailer{},
		dispatcher: &stubDispatcher{},
	}
	f.svc = NewAllowedUsersService(f.repo, f.users, f.mailer, f.dispatcher)
	return f
}

func TestCreateInvitationSendsMail(t *testing.T) {
	f := newAllowedFixture()

	resp, err := f.svc.Create(context.Background(), dto.AllowedUserRequest{Email: "Jan@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "jan@example.com", resp.Email)
	assert.Equal(t, []string{"jan@example.com"}, f.mailer.invitations)
}

func TestCreateInvitationTwiceConflicts(t *testing.T) {
	f := newAllowedFixture()

	_, err := f.svc.Create(context.Background(), dto.AllowedUserRequest{Email: "jan@example.com"})
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), dto.AllowedUserRequest{Email: "jan@example.com"})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	assert.Equal(t, "Er is al een uitnodiging gestuurd naar dit e-mailadres", apiErr.Detail)
}

func TestCreateInvitationForRegisteredEmail(t *testing.T) {
	f := newAllowedFixture()
	require.NoError(t, f.users.Create(context.Background(), &model.User{Email: "jan@example.com", IsActive: true}))

	_, err := f.svc.Create(context.Background(), dto.AllowedUserRequest{Email: "jan@example.com"})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	assert.Equal(t, "Dit e-mailadres is al geregistreerd", apiErr.Detail)
}

func TestCreateInvitationMailFailureRollsBack(t *testing.T) {
	f := newAllowedFixture()
	f.mailer.fail = true

	_, err := f.svc.Create(context.Background(), dto.AllowedUserRequest{Email: "jan@example.com"})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)

	invitations, err := f.repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, invitations)
}

func TestCreateAsyncEnqueuesJob(t *testing.T) {
	f := newAllowedFixture()

	resp, err := f.svc.CreateAsync(context.Background(), dto.AllowedUserRequest{Email: "jan@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "jan@example.com", resp.Email)
	assert.Empty(t, f.mailer.invitations)

	require.Len(t, f.dispatcher.jobs, 1)
	assert.Equal(t, worker.EmailKindInvitation, f.dispatcher.jobs[0].Kind)
	assert.Equal(t, "jan@example.com", f.dispatcher.jobs[0].ToEmail)
}

func TestCreateAsyncSurvivesQueueFailure(t *testing.T) {
	f := newAllowedFixture()
	f.dispatcher.fail = true

	resp, err := f.svc.CreateAsync(context.Background(), dto.AllowedUserRequest{Email: "jan@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "jan@example.com", resp.Email)

	// The invitation is stored even when the queue is unreachable.
	invitations, err := f.repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, invitations, 1)
}

func TestUpdateInvitationResendsMail(t *testing.T) {
	f := newAllowedFixture()

	created, err := f.svc.Create(context.Background(), dto.AllowedUserRequest{Email: "jan@example.com"})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), created.ID, dto.AllowedUserRequest{Email: "piet@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "piet@example.com", updated.Email)
	assert.Equal(t, []string{"jan@example.com", "piet@example.com"}, f.mailer.invitations)
}

func TestDeleteUnknownInvitation(t *testing.T) {
	f := newAllowedFixture()

	err := f.svc.Delete(context.Background(), 99)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Uitnodiging niet gevonden", apiErr.Detail)
}
