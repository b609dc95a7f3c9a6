package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fachebot/vid-summify/internal/handoff"
	"github.com/fachebot/vid-summify/internal/logger"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/fachebot/vid-summify/internal/summary"
)

const (
	DefaultType   = model.SummaryTypeBrief
	DefaultLength = model.SummaryLengthMedium
)

// Mode 表单模式
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "Edit Summary"
	}
	return "Generate New Summary"
}

// summaryStore 表单提交所需的摘要命令
type summaryStore interface {
	Create(ctx context.Context, spec model.SummarySpec) (model.Summary, error)
	Update(ctx context.Context, id string, spec model.SummarySpec) (model.Summary, error)
}

// Fields 表单字段
type Fields struct {
	VideoURL string
	Type     model.SummaryType
	Length   model.SummaryLength
}

// Form 生成/编辑摘要的表单状态
type Form struct {
	store   summaryStore
	handoff *handoff.EditHandoff

	mu      sync.Mutex
	fields  Fields
	mode    Mode
	editID  string
	entered bool
}

func New(store summaryStore, h *handoff.EditHandoff) *Form {
	f := &Form{store: store, handoff: h}
	f.resetLocked()
	return f
}

// Enter 进入表单视图。每次进入只取一次交接的摘要，取到则切换为编辑模式
func (f *Form) Enter() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.entered {
		return false
	}
	f.entered = true

	pending := f.handoff.Consume()
	if pending.IsNone() {
		return false
	}

	item := pending.UnwrapOr(model.Summary{})
	f.fields = Fields{VideoURL: item.VideoURL, Type: item.Type, Length: item.Length}
	f.mode = ModeEdit
	f.editID = item.ID
	logger.Debugf("[Form] 编辑摘要 (id=%s)", item.ID)
	return true
}

// Leave 离开表单视图，下次 Enter 时重新检查交接
func (f *Form) Leave() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entered = false
}

func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// EditID 编辑模式下的摘要 id
func (f *Form) EditID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editID
}

func (f *Form) SetVideoURL(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.VideoURL = url
}

func (f *Form) SetType(t model.SummaryType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.Type = t
}

func (f *Form) SetLength(l model.SummaryLength) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.Length = l
}

// Paste 粘贴链接，返回 false 表示内容看起来不是 YouTube 链接（仍会填入）
func (f *Form) Paste(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}

	f.mu.Lock()
	f.fields.VideoURL = text
	f.mu.Unlock()
	return model.IsValidYouTubeURL(text)
}

// Submit 校验并提交。编辑模式走 Update，否则走 Create；成功后重置表单，失败保留输入
func (f *Form) Submit(ctx context.Context) (model.Summary, error) {
	f.mu.Lock()
	spec := model.SummarySpec{
		VideoURL: strings.TrimSpace(f.fields.VideoURL),
		Type:     f.fields.Type,
		Length:   f.fields.Length,
	}
	mode, editID := f.mode, f.editID
	f.mu.Unlock()

	if err := spec.Validate(); err != nil {
		return model.Summary{}, err
	}

	var (
		item model.Summary
		err  error
	)
	if mode == ModeEdit && editID != "" {
		item, err = f.store.Update(ctx, editID, spec)
		if errors.Is(err, summary.ErrNotInCollection) {
			logger.Debugf("[Form] 摘要已更新但不在本地列表中 (id=%s)", editID)
			err = nil
		}
	} else {
		item, err = f.store.Create(ctx, spec)
	}
	if err != nil {
		return model.Summary{}, err
	}

	f.Reset()
	return item, nil
}

// Reset 恢复为默认的新建模式
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

// Cancel 取消编辑
func (f *Form) Cancel() {
	f.Reset()
}

func (f *Form) resetLocked() {
	f.fields = Fields{Type: DefaultType, Length: DefaultLength}
	f.mode = ModeCreate
	f.editID = ""
}
