package model

import (
	"context"
	"time"

	"github.com/fachebot/vid-summify/internal/ent"
	"github.com/fachebot/vid-summify/internal/ent/session"
)

// Session 已登录会话
type Session struct {
	AccessToken string
	UserID      string
	Email       string
	ExpiresAt   *time.Time
}

// Expired 判断会话是否已过期，未设置过期时间视为不过期
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

type SessionModel struct {
	client *ent.SessionClient
}

func NewSessionModel(client *ent.SessionClient) *SessionModel {
	return &SessionModel{client: client}
}

// LoadSession 读取最近保存的会话，没有时 ok 为 false
func (m *SessionModel) LoadSession(ctx context.Context) (Session, bool, error) {
	row, err := m.client.Query().
		Order(ent.Desc(session.FieldUpdateTime), ent.Desc(session.FieldID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	return Session{
		AccessToken: row.AccessToken,
		UserID:      row.UserID,
		Email:       row.Email,
		ExpiresAt:   row.ExpiresAt,
	}, true, nil
}

// SaveSession 保存会话，覆盖旧会话
func (m *SessionModel) SaveSession(ctx context.Context, s Session) error {
	if _, err := m.client.Delete().Exec(ctx); err != nil {
		return err
	}
	return m.client.Create().
		SetAccessToken(s.AccessToken).
		SetUserID(s.UserID).
		SetEmail(s.Email).
		SetNillableExpiresAt(s.ExpiresAt).
		Exec(ctx)
}

// ClearSession 删除已保存的会话
func (m *SessionModel) ClearSession(ctx context.Context) error {
	_, err := m.client.Delete().Exec(ctx)
	return err
}
