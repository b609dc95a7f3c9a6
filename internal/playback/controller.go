package playback

import (
	"context"
	"fmt"
	"sync"

	"github.com/fachebot/vid-summify/internal/logger"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/fachebot/vid-summify/internal/speech"
	"github.com/google/uuid"
)

// Status 朗读状态
type Status int

const (
	Idle Status = iota
	Speaking
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Speaking:
		return "Speaking"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// State 对外发布的朗读状态，Text 只在 Speaking 时有值
type State struct {
	Status Status
	Text   string
}

// Controller 全局唯一的朗读状态机，保证任意时刻最多一段朗读
type Controller struct {
	engine speech.Engine

	// cmdMu 串行化命令，mu 保护状态
	cmdMu sync.Mutex

	mu        sync.Mutex
	state     State
	utterance string
	voices    []model.Voice

	// pubMu 保证订阅者按状态变化的顺序收到状态
	pubMu  sync.Mutex
	subMu  sync.Mutex
	nextID int
	subs   map[int]func(State)
}

func NewController(engine speech.Engine) *Controller {
	return &Controller{
		engine: engine,
		subs:   make(map[int]func(State)),
	}
}

// Initialize 加载语音列表，失败只记录日志
func (c *Controller) Initialize(ctx context.Context) {
	if _, err := c.RefreshVoices(ctx); err != nil {
		logger.Warnf("[Playback] 加载语音列表失败: %v", err)
	}
	s := c.engine.Settings()
	logger.Debugf("[Playback] 朗读配置 rate=%.2f pitch=%.2f voice=%q", s.Rate, s.Pitch, s.VoiceID)
}

// State 返回当前状态
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsSpeaking 判断是否正在朗读指定文本
func (c *Controller) IsSpeaking(text string) bool {
	state := c.State()
	return state.Status == Speaking && state.Text == text
}

// Subscribe 注册状态监听，返回取消函数。回调中不能调用 Play 或 Stop
func (c *Controller) Subscribe(cb func(State)) (cancel func()) {
	c.subMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = cb
	c.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subMu.Lock()
			delete(c.subs, id)
			c.subMu.Unlock()
		})
	}
}

func (c *Controller) publish() {
	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	state := c.State()
	c.subMu.Lock()
	cbs := make([]func(State), 0, len(c.subs))
	for _, cb := range c.subs {
		cbs = append(cbs, cb)
	}
	c.subMu.Unlock()

	for _, cb := range cbs {
		cb(state)
	}
}

func (c *Controller) setState(state State, utterance string) {
	c.mu.Lock()
	changed := c.state != state
	c.state = state
	c.utterance = utterance
	c.mu.Unlock()

	if changed {
		c.publish()
	}
}

// Play 朗读文本。正在朗读同一文本时视为暂停（停止并回到 Idle）；
// 正在朗读其他文本时先停止旧朗读再开始新朗读
func (c *Controller) Play(ctx context.Context, text string) error {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()

	current := c.State()
	if current.Status == Speaking {
		stopErr := c.engine.Stop(ctx)
		c.setState(State{Status: Idle}, "")
		if stopErr != nil {
			logger.Errorf("[Playback] 停止朗读失败: %v", stopErr)
			return stopErr
		}
		if current.Text == text {
			logger.Debugf("[Playback] 暂停朗读")
			return nil
		}
	}

	id := uuid.NewString()
	c.setState(State{Status: Speaking, Text: text}, id)

	err := c.engine.Start(ctx, PlainText(text), func() { c.finished(id) })
	if err != nil {
		c.finished(id)
		logger.Errorf("[Playback] 启动朗读失败: %v", err)
		return err
	}

	logger.Debugf("[Playback] 开始朗读 (utterance=%s)", id)
	return nil
}

// Stop 停止朗读，Idle 时无操作
func (c *Controller) Stop(ctx context.Context) error {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()

	if c.State().Status == Idle {
		return nil
	}

	err := c.engine.Stop(ctx)
	c.setState(State{Status: Idle}, "")
	if err != nil {
		logger.Errorf("[Playback] 停止朗读失败: %v", err)
		return err
	}
	return nil
}

// finished 朗读结束回调，只处理当前这一段朗读
func (c *Controller) finished(id string) {
	c.mu.Lock()
	if c.utterance != id {
		c.mu.Unlock()
		return
	}
	c.state = State{Status: Idle}
	c.utterance = ""
	c.mu.Unlock()

	c.publish()
}

// Settings 当前朗读配置
func (c *Controller) Settings() model.SpeechSettings {
	return c.engine.Settings()
}

// SetRate 修改语速，只影响之后的朗读
func (c *Controller) SetRate(ctx context.Context, rate float64) error {
	return c.engine.SetRate(ctx, model.ClampRate(rate))
}

// SetPitch 修改音调，只影响之后的朗读
func (c *Controller) SetPitch(ctx context.Context, pitch float64) error {
	return c.engine.SetPitch(ctx, model.ClampPitch(pitch))
}

// SetVoice 修改语音，空字符串表示系统默认
func (c *Controller) SetVoice(ctx context.Context, voiceID string) error {
	return c.engine.SetVoice(ctx, voiceID)
}

// ListVoices 返回缓存的语音列表，缓存为空时从引擎加载
func (c *Controller) ListVoices(ctx context.Context) ([]model.Voice, error) {
	c.mu.Lock()
	cached := c.voices
	c.mu.Unlock()

	if cached != nil {
		return cached, nil
	}
	return c.RefreshVoices(ctx)
}

// RefreshVoices 重新从引擎加载语音列表
func (c *Controller) RefreshVoices(ctx context.Context) ([]model.Voice, error) {
	voices, err := c.engine.ListVoices(ctx)
	if err != nil {
		return nil, err
	}
	if voices == nil {
		voices = []model.Voice{}
	}

	c.mu.Lock()
	c.voices = voices
	c.mu.Unlock()
	return voices, nil
}
