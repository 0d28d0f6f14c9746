package session

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/famousshop/internal/store"
	"github.com/dmitrijs2005/famousshop/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LoginLogout(t *testing.T) {
	s := store.NewMemoryStore()
	m := NewManager(s, nil)
	ctx := context.Background()

	require.NoError(t, m.Init(ctx))
	assert.False(t, m.IsLoggedIn())

	require.NoError(t, m.Login(ctx))
	assert.True(t, m.IsLoggedIn())

	v, ok, err := s.Get(ctx, "isLoggedIn")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	require.NoError(t, m.Logout(ctx))
	assert.False(t, m.IsLoggedIn())

	_, ok, err = s.Get(ctx, "isLoggedIn")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_LogoutWhenLoggedOut(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), nil)
	require.NoError(t, m.Logout(context.Background()))
	assert.False(t, m.IsLoggedIn())
}

func TestManager_InitReadsPersistedFlag(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   bool
	}{
		{"absent", nil, false},
		{"true", ptr("true"), true},
		{"false", ptr("false"), false},
		{"uppercase", ptr("TRUE"), false},
		{"garbage", ptr("1"), false},
		{"empty", ptr(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewMemoryStore()
			ctx := context.Background()
			if tt.stored != nil {
				require.NoError(t, s.Set(ctx, StoreKey, *tt.stored))
			}

			m := NewManager(s, nil)
			require.NoError(t, m.Init(ctx))
			assert.Equal(t, tt.want, m.IsLoggedIn())
		})
	}
}

func TestManager_SurvivesRestart(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	first := NewManager(s, nil)
	require.NoError(t, first.Login(ctx))

	second := NewManager(s, nil)
	require.NoError(t, second.Init(ctx))
	assert.True(t, second.IsLoggedIn())
}

func TestManager_StoreFailuresKeepMirror(t *testing.T) {
	s := storetest.NewFlakyStore()
	m := NewManager(s, nil)
	ctx := context.Background()

	s.FailSet = true
	require.ErrorIs(t, m.Login(ctx), store.ErrUnavailable)
	assert.False(t, m.IsLoggedIn())

	s.FailSet = false
	require.NoError(t, m.Login(ctx))

	s.FailRemove = true
	require.ErrorIs(t, m.Logout(ctx), store.ErrUnavailable)
	assert.True(t, m.IsLoggedIn())

	s.FailGet = true
	require.ErrorIs(t, m.Init(ctx), store.ErrUnavailable)
}

func ptr(s string) *string { return &s }
