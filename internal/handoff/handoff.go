package handoff

import (
	"sync"

	"github.com/fachebot/vid-summify/internal/model"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// EditHandoff 单槽位、一次性的摘要传递，把摘要从任意视图交给编辑表单
type EditHandoff struct {
	mu      sync.Mutex
	pending fn.Option[model.Summary]
}

func New() *EditHandoff {
	return &EditHandoff{pending: fn.None[model.Summary]()}
}

// Request 写入待传递的摘要，覆盖尚未取走的旧值
func (h *EditHandoff) Request(summary model.Summary) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = fn.Some(summary)
}

// Consume 取出待传递的摘要并清空槽位
func (h *EditHandoff) Consume() fn.Option[model.Summary] {
	h.mu.Lock()
	defer h.mu.Unlock()
	pending := h.pending
	h.pending = fn.None[model.Summary]()
	return pending
}

// Pending 是否有尚未取走的摘要
func (h *EditHandoff) Pending() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending.IsSome()
}
