package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fachebot/vid-summify/internal/api"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	session *model.Session
	err     error
}

func (m *memoryStore) LoadSession(ctx context.Context) (model.Session, bool, error) {
	if m.err != nil {
		return model.Session{}, false, m.err
	}
	if m.session == nil {
		return model.Session{}, false, nil
	}
	return *m.session, true, nil
}

func (m *memoryStore) SaveSession(ctx context.Context, s model.Session) error {
	if m.err != nil {
		return m.err
	}
	m.session = &s
	return nil
}

func (m *memoryStore) ClearSession(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.session = nil
	return nil
}

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, sub, email string, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"exp":   expires.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newTestManager(store Store) *Manager {
	m := NewManager(store)
	m.now = func() time.Time { return now }
	return m
}

func TestSignIn(t *testing.T) {
	store := &memoryStore{}
	m := newTestManager(store)

	var events []Event
	sub := m.OnChange(func(e Event, s fn.Option[model.Session]) { events = append(events, e) })
	defer sub.Close()

	token := signToken(t, "user-1", "a@example.com", now.Add(time.Hour))
	s, err := m.SignIn(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, "a@example.com", s.Email)
	require.NotNil(t, s.ExpiresAt)
	assert.Equal(t, now.Add(time.Hour).Unix(), s.ExpiresAt.Unix())

	require.NotNil(t, store.session)
	assert.Equal(t, token, store.session.AccessToken)
	assert.Equal(t, []Event{SignedIn}, events)

	got, err := m.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestSignIn_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		token func(t *testing.T) string
		want  error
	}{
		{"空令牌", func(t *testing.T) string { return "  " }, ErrInvalidToken},
		{"格式错误", func(t *testing.T) string { return "not-a-jwt" }, ErrInvalidToken},
		{"缺少用户", func(t *testing.T) string { return signToken(t, "", "a@b.c", now.Add(time.Hour)) }, ErrInvalidToken},
		{"已过期", func(t *testing.T) string { return signToken(t, "u", "a@b.c", now.Add(-time.Minute)) }, ErrTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			m := newTestManager(store)
			_, err := m.SignIn(context.Background(), tt.token(t))
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, store.session)
			assert.False(t, m.SignedIn())
		})
	}
}

func TestSignOut(t *testing.T) {
	store := &memoryStore{}
	m := newTestManager(store)
	_, err := m.SignIn(context.Background(), signToken(t, "u", "", now.Add(time.Hour)))
	require.NoError(t, err)

	var events []Event
	m.OnChange(func(e Event, s fn.Option[model.Session]) {
		events = append(events, e)
		assert.True(t, s.IsNone())
	})

	require.NoError(t, m.SignOut(context.Background()))
	assert.Nil(t, store.session)
	assert.Equal(t, []Event{SignedOut}, events)

	_, err = m.AccessToken(context.Background())
	assert.ErrorIs(t, err, api.ErrNoSession)
}

func TestInitialize(t *testing.T) {
	t.Run("恢复已保存的会话", func(t *testing.T) {
		store := &memoryStore{session: &model.Session{AccessToken: "tok", UserID: "u"}}
		m := newTestManager(store)
		require.NoError(t, m.Initialize(context.Background()))
		assert.True(t, m.SignedIn())
		assert.Equal(t, "u", m.Current().UnwrapOr(model.Session{}).UserID)
	})

	t.Run("没有会话", func(t *testing.T) {
		m := newTestManager(&memoryStore{})
		require.NoError(t, m.Initialize(context.Background()))
		assert.False(t, m.SignedIn())
	})

	t.Run("存储失败", func(t *testing.T) {
		m := newTestManager(&memoryStore{err: errors.New("locked")})
		assert.Error(t, m.Initialize(context.Background()))
	})
}

func TestSubscription_Close(t *testing.T) {
	m := newTestManager(&memoryStore{})
	calls := 0
	sub := m.OnChange(func(e Event, s fn.Option[model.Session]) { calls++ })

	require.NoError(t, m.SignOut(context.Background()))
	sub.Close()
	sub.Close()
	require.NoError(t, m.SignOut(context.Background()))
	assert.Equal(t, 1, calls)
}
