package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/storage"
)

func TestGet_Defaults(t *testing.T) {
	svc := NewService(storage.NewMemStore())

	p, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPreferences(), p)
	assert.Equal(t, model.ThemeSystem, p.Theme)
	assert.True(t, p.UseSystem)
	assert.True(t, p.EmailNotif)
	assert.False(t, p.CompactTable)
}

func TestPut_RoundTripAndThemeRules(t *testing.T) {
	svc := NewService(storage.NewMemStore())

	saved, err := svc.Put(model.Preferences{
		Theme:        model.ThemeDark,
		UseSystem:    false,
		CompactTable: true,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, saved.Theme)

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	// Following the system theme overrides an explicit mode.
	saved, err = svc.Put(model.Preferences{Theme: model.ThemeDark, UseSystem: true})
	require.NoError(t, err)
	assert.Equal(t, model.ThemeSystem, saved.Theme)

	// Unknown theme strings fall back.
	saved, err = svc.Put(model.Preferences{Theme: model.ThemeMode("neon")})
	require.NoError(t, err)
	assert.Equal(t, model.ThemeSystem, saved.Theme)
}

func TestGet_GarbageBlobFallsBackToDefaults(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Write(storage.KeyPrefs, []byte("))) nope")))

	svc := NewService(store)
	p, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPreferences(), p)
}

func TestRemoveAvatar(t *testing.T) {
	svc := NewService(storage.NewMemStore())

	_, err := svc.Put(model.Preferences{UseSystem: true, AvatarData: "data:image/png;base64,xyz"})
	require.NoError(t, err)

	p, err := svc.RemoveAvatar()
	require.NoError(t, err)
	assert.Empty(t, p.AvatarData)
}
