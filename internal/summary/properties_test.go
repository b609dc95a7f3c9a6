package summary

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fachebot/vid-summify/internal/model"
	"pgregory.net/rapid"
)

// memoryAPI 内存版远端服务，用于属性测试
type memoryAPI struct {
	mu    sync.Mutex
	seq   int
	clock time.Time
	items map[string]model.Summary
}

func newMemoryAPI() *memoryAPI {
	return &memoryAPI{clock: baseTime, items: make(map[string]model.Summary)}
}

func (m *memoryAPI) ListSummaries(ctx context.Context) ([]model.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]model.Summary, 0, len(m.items))
	for _, item := range m.items {
		result = append(result, item)
	}
	return result, nil
}

func (m *memoryAPI) GetSummary(ctx context.Context, id string) (model.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return model.Summary{}, errors.New("Summary not found")
	}
	return item, nil
}

func (m *memoryAPI) CreateSummary(ctx context.Context, spec model.SummarySpec) (model.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.clock = m.clock.Add(time.Second)
	item := model.Summary{
		ID:        fmt.Sprintf("s%d", m.seq),
		VideoURL:  spec.VideoURL,
		Type:      spec.Type,
		Length:    spec.Length,
		Text:      "body",
		CreatedAt: m.clock,
	}
	m.items[item.ID] = item
	return item, nil
}

func (m *memoryAPI) UpdateSummary(ctx context.Context, id string, spec model.SummarySpec) (model.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return model.Summary{}, errors.New("Summary not found")
	}
	item.VideoURL = spec.VideoURL
	item.Type = spec.Type
	item.Length = spec.Length
	m.items[id] = item
	return item, nil
}

func (m *memoryAPI) DeleteSummary(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func drawSpec(t *rapid.T) model.SummarySpec {
	videoID := rapid.StringMatching(`[A-Za-z0-9_-]{11}`).Draw(t, "videoID")
	return model.SummarySpec{
		VideoURL: "https://youtu.be/" + videoID,
		Type:     rapid.SampledFrom(model.SummaryTypes).Draw(t, "type"),
		Length:   rapid.SampledFrom(model.SummaryLengths).Draw(t, "length"),
	}
}

// TestCollectionInvariants 任意增删改序列后 id 唯一，且按创建时间倒序
func TestCollectionInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		store := NewStore(newMemoryAPI())

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			items := store.Snapshot().Summaries
			op := rapid.IntRange(0, 2).Draw(t, "op")
			if len(items) == 0 {
				op = 0
			}

			switch op {
			case 0:
				if _, err := store.Create(ctx, drawSpec(t)); err != nil {
					t.Fatalf("create: %v", err)
				}
			case 1:
				target := rapid.SampledFrom(items).Draw(t, "update").ID
				if _, err := store.Update(ctx, target, drawSpec(t)); err != nil {
					t.Fatalf("update: %v", err)
				}
			case 2:
				target := rapid.SampledFrom(items).Draw(t, "delete").ID
				if err := store.Delete(ctx, target); err != nil {
					t.Fatalf("delete: %v", err)
				}
			}

			// PROPERTY: id 唯一，且最近创建的在前
			state := store.Snapshot()
			seen := make(map[string]bool)
			for j, item := range state.Summaries {
				if seen[item.ID] {
					t.Fatalf("duplicate id %s", item.ID)
				}
				seen[item.ID] = true
				if j > 0 && item.CreatedAt.After(state.Summaries[j-1].CreatedAt) {
					t.Fatalf("order violated at %d", j)
				}
			}
			if state.Loading {
				t.Fatalf("loading left set")
			}
		}
	})
}

// TestUpdateThenFetchOne 更新后重新获取，可变字段等于新参数，id 与创建时间不变
func TestUpdateThenFetchOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		store := NewStore(newMemoryAPI())

		created, err := store.Create(ctx, drawSpec(t))
		if err != nil {
			t.Fatal(err)
		}

		spec := drawSpec(t)
		if _, err := store.Update(ctx, created.ID, spec); err != nil {
			t.Fatal(err)
		}
		got, err := store.FetchOne(ctx, created.ID)
		if err != nil {
			t.Fatal(err)
		}

		if got.Spec() != spec {
			t.Fatalf("spec mismatch: got %+v want %+v", got.Spec(), spec)
		}
		if got.ID != created.ID || !got.CreatedAt.Equal(created.CreatedAt) {
			t.Fatalf("identity changed: %+v", got)
		}
	})
}

// TestDeleteCurrent 删除当前摘要清空当前，删除其他摘要不影响当前
func TestDeleteCurrent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		store := NewStore(newMemoryAPI())

		n := rapid.IntRange(1, 5).Draw(t, "n")
		for i := 0; i < n; i++ {
			if _, err := store.Create(ctx, drawSpec(t)); err != nil {
				t.Fatal(err)
			}
		}

		items := store.Snapshot().Summaries
		current := rapid.SampledFrom(items).Draw(t, "current")
		target := rapid.SampledFrom(items).Draw(t, "target")
		store.SetCurrent(current)

		if err := store.Delete(ctx, target.ID); err != nil {
			t.Fatal(err)
		}

		cur := store.Snapshot().Current
		if target.ID == current.ID {
			if cur.IsSome() {
				t.Fatalf("current should be cleared")
			}
		} else if cur.UnwrapOr(model.Summary{}).ID != current.ID {
			t.Fatalf("current changed unexpectedly")
		}
	})
}
