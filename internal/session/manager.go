package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fachebot/vid-summify/internal/api"
	"github.com/fachebot/vid-summify/internal/logger"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lightningnetwork/lnd/fn/v2"
)

var (
	ErrInvalidToken = errors.New("invalid access token")
	ErrTokenExpired = errors.New("access token expired")
)

// Event 会话变化事件
type Event int

const (
	SignedIn Event = iota
	SignedOut
)

func (e Event) String() string {
	if e == SignedIn {
		return "SIGNED_IN"
	}
	return "SIGNED_OUT"
}

// Store 会话持久化
type Store interface {
	LoadSession(ctx context.Context) (model.Session, bool, error)
	SaveSession(ctx context.Context, s model.Session) error
	ClearSession(ctx context.Context) error
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager 管理登录会话，并向订阅者发布会话变化
type Manager struct {
	store Store
	now   func() time.Time

	mu      sync.Mutex
	session fn.Option[model.Session]

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Event, fn.Option[model.Session])
}

func NewManager(store Store) *Manager {
	return &Manager{
		store:   store,
		now:     time.Now,
		session: fn.None[model.Session](),
		subs:    make(map[int]func(Event, fn.Option[model.Session])),
	}
}

// Initialize 恢复已保存的会话
func (m *Manager) Initialize(ctx context.Context) error {
	saved, ok, err := m.store.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("恢复会话失败: %w", err)
	}

	m.mu.Lock()
	if ok {
		m.session = fn.Some(saved)
	} else {
		m.session = fn.None[model.Session]()
	}
	m.mu.Unlock()

	if ok {
		logger.Debugf("[Session] 已恢复会话 (user=%s)", saved.UserID)
	}
	return nil
}

// Current 当前会话
func (m *Manager) Current() fn.Option[model.Session] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// SignedIn 是否已登录
func (m *Manager) SignedIn() bool {
	return m.Current().IsSome()
}

// AccessToken 返回当前访问令牌，未登录返回 api.ErrNoSession。过期由远端判定
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.IsNone() {
		return "", api.ErrNoSession
	}
	return m.session.UnwrapOr(model.Session{}).AccessToken, nil
}

// SignIn 使用访问令牌登录。令牌不在本地验签，只解析出用户信息
func (m *Manager) SignIn(ctx context.Context, token string) (model.Session, error) {
	s, err := m.parse(strings.TrimSpace(token))
	if err != nil {
		return model.Session{}, err
	}

	if err := m.store.SaveSession(ctx, s); err != nil {
		return model.Session{}, err
	}

	m.mu.Lock()
	m.session = fn.Some(s)
	m.mu.Unlock()

	logger.Infof("[Session] 用户已登录 (user=%s)", s.UserID)
	m.emit(SignedIn, fn.Some(s))
	return s, nil
}

// SignOut 退出登录
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.store.ClearSession(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	m.session = fn.None[model.Session]()
	m.mu.Unlock()

	logger.Infof("[Session] 用户已退出")
	m.emit(SignedOut, fn.None[model.Session]())
	return nil
}

func (m *Manager) parse(token string) (model.Session, error) {
	if token == "" {
		return model.Session{}, ErrInvalidToken
	}

	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return model.Session{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	s := model.Session{
		AccessToken: token,
		UserID:      c.Subject,
		Email:       c.Email,
	}
	if c.ExpiresAt != nil {
		expires := c.ExpiresAt.Time.UTC()
		s.ExpiresAt = &expires
		if s.Expired(m.now()) {
			return model.Session{}, ErrTokenExpired
		}
	}
	return s, nil
}

// Subscription 会话变化订阅句柄
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Close 取消订阅，可重复调用
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

// OnChange 订阅会话变化，调用方负责在作用域结束时 Close
func (m *Manager) OnChange(cb func(Event, fn.Option[model.Session])) *Subscription {
	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = cb
	m.subMu.Unlock()

	return &Subscription{cancel: func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}}
}

func (m *Manager) emit(event Event, s fn.Option[model.Session]) {
	m.subMu.Lock()
	cbs := make([]func(Event, fn.Option[model.Session]), 0, len(m.subs))
	for _, cb := range m.subs {
		cbs = append(cbs, cb)
	}
	m.subMu.Unlock()

	for _, cb := range cbs {
		cb(event, s)
	}
}
