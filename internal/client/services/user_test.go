package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablomagana/recomenzar/internal/client/models"
)

type fakeUserAPI struct {
	user *models.User
	err  error
}

func (f *fakeUserAPI) Me(_ context.Context) (*models.User, error) {
	return f.user, f.err
}

func (f *fakeUserAPI) UpdateMe(_ context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := *f.user
	u.Nombre = req.Nombre
	return &u, nil
}

func (f *fakeUserAPI) ChangePassword(_ context.Context, _ models.ChangePasswordRequest) error {
	return f.err
}

type fakeSessionUpdater struct {
	updated []models.User
	err     error
}

func (f *fakeSessionUpdater) UpdateUser(_ context.Context, u models.User) error {
	f.updated = append(f.updated, u)
	return f.err
}

func TestProfile_WritesUserBackIntoSession(t *testing.T) {
	api := &fakeUserAPI{user: &models.User{ID: "u1", Email: "ana@example.com"}}
	session := &fakeSessionUpdater{}
	svc := NewUserService(api, session)

	user, err := svc.Profile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	require.Len(t, session.updated, 1)
	assert.Equal(t, "ana@example.com", session.updated[0].Email)
}

func TestUpdateProfile_UpdatesSessionWithReturnedUser(t *testing.T) {
	api := &fakeUserAPI{user: &models.User{ID: "u1", Nombre: "Ana"}}
	session := &fakeSessionUpdater{}
	svc := NewUserService(api, session)

	user, err := svc.UpdateProfile(context.Background(), models.UpdateProfileRequest{Nombre: "Ana María"})
	require.NoError(t, err)

	assert.Equal(t, "Ana María", user.Nombre)
	require.Len(t, session.updated, 1)
	assert.Equal(t, "Ana María", session.updated[0].Nombre)
}

func TestProfile_APIErrorLeavesSessionUntouched(t *testing.T) {
	api := &fakeUserAPI{err: errors.New("boom")}
	session := &fakeSessionUpdater{}
	svc := NewUserService(api, session)

	_, err := svc.Profile(context.Background())
	require.Error(t, err)
	assert.Empty(t, session.updated)
}
