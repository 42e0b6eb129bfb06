package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/storage"
)

func newTestService() (*Service, *storage.MemStore) {
	store := storage.NewMemStore()
	return NewService(store, model.StoredUser{}, nil), store
}

func TestLogin_SeedsAdminOnce(t *testing.T) {
	svc, store := newTestService()

	sess, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)
	assert.Equal(t, model.RoleAdmin, sess.Role)
	assert.NotEmpty(t, sess.Token)
	assert.True(t, store.Has(storage.KeyUsers))
	assert.True(t, store.Has(storage.KeySession))

	// Seeding happens only while the user store is absent.
	require.NoError(t, store.Write(storage.KeyUsers, []byte(`[]`)))
	_, err = svc.Login("admin", "admin123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Login("ghost", "admin123")
	assert.ErrorIs(t, err, ErrBadCredentials)

	// Username is trimmed, password is not.
	_, err = svc.Login("  admin  ", "admin123")
	assert.NoError(t, err)
	_, err = svc.Login("admin", " admin123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Login("admin", "admin123")
	require.NoError(t, err)

	_, err = svc.CurrentSession()
	require.NoError(t, err)

	require.NoError(t, svc.Logout())
	assert.False(t, store.Has(storage.KeySession))

	_, err = svc.CurrentSession()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCurrentSession_GarbageRecord(t *testing.T) {
	svc, store := newTestService()

	require.NoError(t, store.Write(storage.KeySession, []byte("not json")))
	_, err := svc.CurrentSession()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestService()

	// Requires a session.
	err := svc.ChangePassword("admin123", "longenough", "longenough")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.Login("admin", "admin123")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword("", "x", "x"), ErrPasswordFields)
	assert.ErrorIs(t, svc.ChangePassword("admin123", "short", "short"), ErrPasswordTooShort)
	assert.ErrorIs(t, svc.ChangePassword("admin123", "longenough", "different1"), ErrPasswordMismatch)
	assert.ErrorIs(t, svc.ChangePassword("nope", "longenough", "longenough"), ErrWrongPassword)

	require.NoError(t, svc.ChangePassword("admin123", "longenough", "longenough"))

	_, err = svc.Login("admin", "admin123")
	assert.ErrorIs(t, err, ErrBadCredentials)
	_, err = svc.Login("admin", "longenough")
	assert.NoError(t, err)
}

func TestCustomInitialAdmin(t *testing.T) {
	store := storage.NewMemStore()
	svc := NewService(store, model.StoredUser{Username: "hr", Password: "hunter22"}, nil)

	sess, err := svc.Login("hr", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, sess.Role)
}
