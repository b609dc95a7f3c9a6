package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fachebot/vid-summify/internal/logger"
	"github.com/fachebot/vid-summify/internal/summary"
	"github.com/robfig/cron/v3"
)

// fetcher 刷新摘要列表
type fetcher interface {
	FetchAll(ctx context.Context) error
}

// sessionChecker 判断是否已登录
type sessionChecker interface {
	SignedIn() bool
}

// Refresher 按 cron 表达式定期刷新摘要列表，只在已登录时执行；失败不重试，等待下一次触发
type Refresher struct {
	cron    *cron.Cron
	store   fetcher
	session sessionChecker
	spec    string
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
}

func NewRefresher(store fetcher, session sessionChecker, spec string, timeout time.Duration) *Refresher {
	return &Refresher{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		store:   store,
		session: session,
		spec:    spec,
		timeout: timeout,
	}
}

// Start 启动调度器
func (s *Refresher) Start() error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mu.Unlock()

	_, err := s.cron.AddFunc(s.spec, s.refresh)
	if err != nil {
		return fmt.Errorf("注册刷新任务失败: %w", err)
	}

	s.cron.Start()
	logger.Infof("[Scheduler] 调度器已启动，刷新任务: %s", s.spec)
	return nil
}

// Stop 停止调度器，等待正在执行的刷新结束
func (s *Refresher) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Scheduler] 调度器已停止")
}

// RefreshNow 立即执行一次刷新
func (s *Refresher) RefreshNow() {
	s.refresh()
}

func (s *Refresher) refresh() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	select {
	case <-ctx.Done():
		logger.Infof("[Scheduler] 任务已取消，退出")
		return
	default:
	}

	if !s.session.SignedIn() {
		logger.Debugf("[Scheduler] 未登录，跳过刷新")
		return
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.store.FetchAll(ctx)
	switch {
	case err == nil:
		logger.Debugf("[Scheduler] 摘要列表已刷新，耗时 %s", time.Since(start))
	case errors.Is(err, summary.ErrSuperseded):
		logger.Debugf("[Scheduler] 刷新结果已被更新的请求取代")
	default:
		logger.Warnf("[Scheduler] 刷新摘要列表失败: %v", err)
	}
}
