package summary

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/fachebot/vid-summify/internal/logger"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/lightningnetwork/lnd/fn/v2"
)

var (
	// ErrSuperseded 响应到达时已有更新的请求或变更，结果被丢弃
	ErrSuperseded = errors.New("response superseded by a newer request")

	// ErrNotInCollection 远端更新成功，但本地集合中没有该摘要
	ErrNotInCollection = errors.New("summary not in local collection")
)

// summaryAPI 远端摘要服务（便于测试注入 mock）
type summaryAPI interface {
	ListSummaries(ctx context.Context) ([]model.Summary, error)
	GetSummary(ctx context.Context, id string) (model.Summary, error)
	CreateSummary(ctx context.Context, spec model.SummarySpec) (model.Summary, error)
	UpdateSummary(ctx context.Context, id string, spec model.SummarySpec) (model.Summary, error)
	DeleteSummary(ctx context.Context, id string) error
}

// State 对外发布的只读快照
type State struct {
	Summaries []model.Summary
	Current   fn.Option[model.Summary]
	Loading   bool
	Error     string // 为空表示没有错误
}

// Store 独占摘要集合与当前摘要，所有远端增删改查都经由它完成
type Store struct {
	api summaryAPI

	mu         sync.Mutex
	summaries  []model.Summary
	current    fn.Option[model.Summary]
	inflight   int
	errMsg     string
	listGen    uint64
	currentGen uint64
	fetching   string // 最近一次 FetchOne 请求的 id

	// pubMu 保证订阅者按状态变化的顺序收到快照
	pubMu  sync.Mutex
	subMu  sync.Mutex
	nextID int
	subs   map[int]func(State)
}

func NewStore(api summaryAPI) *Store {
	return &Store{
		api:       api,
		summaries: []model.Summary{},
		current:   fn.None[model.Summary](),
		subs:      make(map[int]func(State)),
	}
}

// Snapshot 返回当前状态的副本
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	items := make([]model.Summary, len(s.summaries))
	copy(items, s.summaries)
	return State{
		Summaries: items,
		Current:   s.current,
		Loading:   s.inflight > 0,
		Error:     s.errMsg,
	}
}

// Subscribe 注册状态监听，返回取消函数。回调中不能调用 Store 的变更方法
func (s *Store) Subscribe(cb func(State)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = cb
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) publish() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	state := s.Snapshot()

	s.subMu.Lock()
	cbs := make([]func(State), 0, len(s.subs))
	for _, cb := range s.subs {
		cbs = append(cbs, cb)
	}
	s.subMu.Unlock()

	for _, cb := range cbs {
		cb(state)
	}
}

// begin 标记命令开始：loading=true，清空错误
func (s *Store) begin() {
	s.mu.Lock()
	s.inflight++
	s.errMsg = ""
	s.mu.Unlock()
	s.publish()
}

// FetchAll 加载全部摘要，成功时整体替换集合
func (s *Store) FetchAll(ctx context.Context) error {
	var gen uint64
	s.mu.Lock()
	s.inflight++
	s.errMsg = ""
	s.listGen++
	gen = s.listGen
	s.mu.Unlock()
	s.publish()

	items, err := s.api.ListSummaries(ctx)

	s.mu.Lock()
	s.inflight--
	if gen != s.listGen {
		s.mu.Unlock()
		logger.Debugf("[SummaryStore] 丢弃过期的列表响应 (gen=%d)", gen)
		s.publish()
		return ErrSuperseded
	}
	if err != nil {
		s.errMsg = err.Error()
		s.mu.Unlock()
		logger.Errorf("[SummaryStore] 获取摘要列表失败: %v", err)
		s.publish()
		return err
	}
	s.summaries = normalize(items)
	count := len(s.summaries)
	s.mu.Unlock()

	logger.Debugf("[SummaryStore] 已加载 %d 条摘要", count)
	s.publish()
	return nil
}

// FetchOne 加载单条摘要并设为当前摘要
func (s *Store) FetchOne(ctx context.Context, id string) (model.Summary, error) {
	var gen uint64
	s.mu.Lock()
	s.inflight++
	s.errMsg = ""
	s.currentGen++
	gen = s.currentGen
	s.fetching = id
	s.mu.Unlock()
	s.publish()

	item, err := s.api.GetSummary(ctx, id)

	s.mu.Lock()
	s.inflight--
	if gen != s.currentGen {
		s.mu.Unlock()
		logger.Debugf("[SummaryStore] 丢弃过期的摘要响应 (id=%s, gen=%d)", id, gen)
		s.publish()
		return model.Summary{}, ErrSuperseded
	}
	s.fetching = ""
	if err != nil {
		s.errMsg = err.Error()
		s.mu.Unlock()
		logger.Errorf("[SummaryStore] 获取摘要失败 (id=%s): %v", id, err)
		s.publish()
		return model.Summary{}, err
	}
	s.current = fn.Some(item)
	s.mu.Unlock()

	s.publish()
	return item, nil
}

// Create 生成新摘要，成功后插入集合头部并设为当前摘要
func (s *Store) Create(ctx context.Context, spec model.SummarySpec) (model.Summary, error) {
	if err := spec.Validate(); err != nil {
		return model.Summary{}, err
	}

	s.begin()
	item, err := s.api.CreateSummary(ctx, spec)

	s.mu.Lock()
	s.inflight--
	if err != nil {
		s.errMsg = err.Error()
		s.mu.Unlock()
		logger.Errorf("[SummaryStore] 生成摘要失败: %v", err)
		s.publish()
		return model.Summary{}, err
	}

	items := make([]model.Summary, 0, len(s.summaries)+1)
	items = append(items, item)
	for _, existing := range s.summaries {
		if existing.ID != item.ID {
			items = append(items, existing)
		}
	}
	s.summaries = items
	s.current = fn.Some(item)
	s.listGen++
	s.currentGen++
	s.mu.Unlock()

	logger.Infof("[SummaryStore] 摘要已生成 (id=%s)", item.ID)
	s.publish()
	return item, nil
}

// Update 重新生成摘要，原位置替换；本地不存在时返回 ErrNotInCollection
func (s *Store) Update(ctx context.Context, id string, spec model.SummarySpec) (model.Summary, error) {
	if err := spec.Validate(); err != nil {
		return model.Summary{}, err
	}

	s.begin()
	item, err := s.api.UpdateSummary(ctx, id, spec)

	s.mu.Lock()
	s.inflight--
	if err != nil {
		s.errMsg = err.Error()
		s.mu.Unlock()
		logger.Errorf("[SummaryStore] 更新摘要失败 (id=%s): %v", id, err)
		s.publish()
		return model.Summary{}, err
	}

	// 更新不会改变 id 和创建时间
	item.ID = id
	found := false
	for i, existing := range s.summaries {
		if existing.ID == id {
			item.CreatedAt = existing.CreatedAt
			s.summaries[i] = item
			found = true
			break
		}
	}
	s.current.WhenSome(func(cur model.Summary) {
		if cur.ID == id {
			if !found {
				item.CreatedAt = cur.CreatedAt
			}
			s.current = fn.Some(item)
		}
	})
	s.invalidateCurrentLocked(id)
	s.listGen++
	s.mu.Unlock()

	s.publish()
	if !found {
		logger.Warnf("[SummaryStore] 已更新的摘要不在本地集合中 (id=%s)", id)
		return item, ErrNotInCollection
	}
	logger.Infof("[SummaryStore] 摘要已更新 (id=%s)", id)
	return item, nil
}

// Delete 删除摘要；若为当前摘要则清空当前摘要
func (s *Store) Delete(ctx context.Context, id string) error {
	s.begin()
	err := s.api.DeleteSummary(ctx, id)

	s.mu.Lock()
	s.inflight--
	if err != nil {
		s.errMsg = err.Error()
		s.mu.Unlock()
		logger.Errorf("[SummaryStore] 删除摘要失败 (id=%s): %v", id, err)
		s.publish()
		return err
	}

	items := make([]model.Summary, 0, len(s.summaries))
	for _, existing := range s.summaries {
		if existing.ID != id {
			items = append(items, existing)
		}
	}
	s.summaries = items
	s.invalidateCurrentLocked(id)
	s.current.WhenSome(func(cur model.Summary) {
		if cur.ID == id {
			s.current = fn.None[model.Summary]()
		}
	})
	s.listGen++
	s.mu.Unlock()

	logger.Infof("[SummaryStore] 摘要已删除 (id=%s)", id)
	s.publish()
	return nil
}

// invalidateCurrentLocked 变更涉及当前摘要或正在获取的摘要时，
// 使进行中的 FetchOne 响应失效；与两者无关的变更不影响它
func (s *Store) invalidateCurrentLocked(id string) {
	touches := s.fetching == id
	s.current.WhenSome(func(cur model.Summary) {
		if cur.ID == id {
			touches = true
		}
	})
	if touches {
		s.currentGen++
	}
}

// ClearError 清除错误信息
func (s *Store) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
	s.publish()
}

// SetCurrent 直接指定当前摘要（列表中点击进入详情）
func (s *Store) SetCurrent(item model.Summary) {
	s.mu.Lock()
	s.current = fn.Some(item)
	s.currentGen++
	s.mu.Unlock()
	s.publish()
}

// ClearCurrent 清空当前摘要
func (s *Store) ClearCurrent() {
	s.mu.Lock()
	s.current = fn.None[model.Summary]()
	s.currentGen++
	s.mu.Unlock()
	s.publish()
}

// Reset 会话结束时清空全部状态，仍在进行的请求结果会被丢弃
func (s *Store) Reset() {
	s.mu.Lock()
	s.summaries = []model.Summary{}
	s.current = fn.None[model.Summary]()
	s.errMsg = ""
	s.listGen++
	s.currentGen++
	s.mu.Unlock()
	s.publish()
}

// normalize 去除重复 id（保留首次出现），并按创建时间倒序
func normalize(items []model.Summary) []model.Summary {
	seen := make(map[string]bool, len(items))
	result := make([]model.Summary, 0, len(items))
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		result = append(result, item)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
