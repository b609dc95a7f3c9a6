package svc

import (
	"context"
	"fmt"
	"sync"

	"github.com/fachebot/vid-summify/internal/api"
	"github.com/fachebot/vid-summify/internal/config"
	"github.com/fachebot/vid-summify/internal/db"
	"github.com/fachebot/vid-summify/internal/form"
	"github.com/fachebot/vid-summify/internal/handoff"
	"github.com/fachebot/vid-summify/internal/logger"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/fachebot/vid-summify/internal/playback"
	"github.com/fachebot/vid-summify/internal/session"
	"github.com/fachebot/vid-summify/internal/speech"
	"github.com/fachebot/vid-summify/internal/summary"
	"github.com/lightningnetwork/lnd/fn/v2"
)

type ServiceContext struct {
	Config              *config.Config
	DB                  *db.DB
	SpeechSettingsModel *model.SpeechSettingsModel
	SessionModel        *model.SessionModel
	Session             *session.Manager
	APIClient           *api.Client
	Store               *summary.Store
	Engine              *speech.CommandEngine
	Playback            *playback.Controller
	Handoff             *handoff.EditHandoff
	Form                *form.Form

	mu  sync.Mutex
	sub *session.Subscription
}

func NewServiceContext(c *config.Config) (*ServiceContext, error) {
	// 打开本地数据库
	database, err := db.Open(c.Storage.Path)
	if err != nil {
		return nil, err
	}

	// 创建SOCKS5代理
	transport, err := api.NewTransport(&c.Sock5Proxy)
	if err != nil {
		database.Close()
		return nil, err
	}

	settingsModel := model.NewSpeechSettingsModel(database.Client.SpeechSetting)
	sessionModel := model.NewSessionModel(database.Client.Session)

	sessions := session.NewManager(sessionModel)
	client := api.NewClient(&c.API, transport, sessions)
	store := summary.NewStore(client)

	engine, err := speech.NewCommandEngine(context.Background(), c.Speech, speech.NewRunner(), settingsModel)
	if err != nil {
		database.Close()
		return nil, err
	}

	h := handoff.New()
	svcCtx := &ServiceContext{
		Config:              c,
		DB:                  database,
		SpeechSettingsModel: settingsModel,
		SessionModel:        sessionModel,
		Session:             sessions,
		APIClient:           client,
		Store:               store,
		Engine:              engine,
		Playback:            playback.NewController(engine),
		Handoff:             h,
		Form:                form.New(store, h),
	}
	return svcCtx, nil
}

// Start 恢复会话并订阅会话变化；退出登录时清空摘要并停止朗读
func (svcCtx *ServiceContext) Start(ctx context.Context) error {
	if err := svcCtx.Session.Initialize(ctx); err != nil {
		return fmt.Errorf("初始化会话失败: %w", err)
	}

	svcCtx.mu.Lock()
	defer svcCtx.mu.Unlock()
	if svcCtx.sub != nil {
		svcCtx.sub.Close()
	}
	svcCtx.sub = svcCtx.Session.OnChange(svcCtx.onSessionChange)
	return nil
}

func (svcCtx *ServiceContext) onSessionChange(event session.Event, s fn.Option[model.Session]) {
	logger.Debugf("[Service] 会话变化: %s", event)
	if event != session.SignedOut {
		return
	}

	svcCtx.Store.Reset()
	if err := svcCtx.Playback.Stop(context.Background()); err != nil {
		logger.Warnf("[Service] 停止朗读失败: %v", err)
	}
}

func (svcCtx *ServiceContext) Close() {
	svcCtx.mu.Lock()
	if svcCtx.sub != nil {
		svcCtx.sub.Close()
		svcCtx.sub = nil
	}
	svcCtx.mu.Unlock()

	if err := svcCtx.Playback.Stop(context.Background()); err != nil {
		logger.Errorf("停止朗读失败, %v", err)
	}
	if err := svcCtx.DB.Close(); err != nil {
		logger.Errorf("关闭数据库失败, %v", err)
	}
}
