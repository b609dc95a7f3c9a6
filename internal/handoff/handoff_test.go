package handoff

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fachebot/vid-summify/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestConsume(t *testing.T) {
	t.Run("空槽位返回 None", func(t *testing.T) {
		h := New()
		assert.True(t, h.Consume().IsNone())
	})

	t.Run("只能取走一次", func(t *testing.T) {
		h := New()
		h.Request(model.Summary{ID: "a"})
		assert.True(t, h.Pending())

		got := h.Consume()
		require.True(t, got.IsSome())
		assert.Equal(t, "a", got.UnwrapOr(model.Summary{}).ID)

		assert.False(t, h.Pending())
		assert.True(t, h.Consume().IsNone())
	})

	t.Run("后写覆盖先写", func(t *testing.T) {
		h := New()
		h.Request(model.Summary{ID: "a"})
		h.Request(model.Summary{ID: "b"})
		assert.Equal(t, "b", h.Consume().UnwrapOr(model.Summary{}).ID)
	})
}

func TestConsume_Concurrent(t *testing.T) {
	h := New()
	h.Request(model.Summary{ID: "a"})

	var wg sync.WaitGroup
	var mu sync.Mutex
	hits := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if h.Consume().IsSome() {
				mu.Lock()
				hits++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, hits)
}

// TestHandoffModel 与单槽位模型比较任意 Request/Consume 序列
func TestHandoffModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := New()
		var want *string

		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "request") {
				id := fmt.Sprintf("s%d", rapid.IntRange(0, 5).Draw(t, "id"))
				h.Request(model.Summary{ID: id})
				want = &id
				continue
			}

			got := h.Consume()
			if want == nil {
				if got.IsSome() {
					t.Fatalf("expected none")
				}
				continue
			}
			if got.UnwrapOr(model.Summary{}).ID != *want {
				t.Fatalf("expected %s", *want)
			}
			want = nil
		}
	})
}
