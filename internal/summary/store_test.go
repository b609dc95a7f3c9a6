package summary

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fachebot/vid-summify/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockAPI 模拟远端摘要服务
type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListSummaries(ctx context.Context) ([]model.Summary, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Summary)
	return items, args.Error(1)
}

func (m *mockAPI) GetSummary(ctx context.Context, id string) (model.Summary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Summary), args.Error(1)
}

func (m *mockAPI) CreateSummary(ctx context.Context, spec model.SummarySpec) (model.Summary, error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(model.Summary), args.Error(1)
}

func (m *mockAPI) UpdateSummary(ctx context.Context, id string, spec model.SummarySpec) (model.Summary, error) {
	args := m.Called(ctx, id, spec)
	return args.Get(0).(model.Summary), args.Error(1)
}

func (m *mockAPI) DeleteSummary(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var baseTime = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

func newSummary(id string, age time.Duration) model.Summary {
	return model.Summary{
		ID:        id,
		VideoURL:  "https://youtu.be/abc12345678",
		Type:      model.SummaryTypeBrief,
		Length:    model.SummaryLengthShort,
		Text:      "摘要 " + id,
		CreatedAt: baseTime.Add(-age),
	}
}

func ids(items []model.Summary) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.ID)
	}
	return result
}

func validSpec() model.SummarySpec {
	return model.SummarySpec{
		VideoURL: "https://youtu.be/abc12345678",
		Type:     model.SummaryTypeBrief,
		Length:   model.SummaryLengthShort,
	}
}

func seededStore(t *testing.T, items ...model.Summary) (*Store, *mockAPI) {
	t.Helper()
	api := new(mockAPI)
	api.On("ListSummaries", mock.Anything).Return(items, nil).Once()
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))
	return store, api
}

func TestFetchAll(t *testing.T) {
	t.Run("成功时整体替换并按时间倒序", func(t *testing.T) {
		store, api := seededStore(t, newSummary("old", 2*time.Hour), newSummary("new", 0), newSummary("mid", time.Hour))

		state := store.Snapshot()
		assert.Equal(t, []string{"new", "mid", "old"}, ids(state.Summaries))
		assert.False(t, state.Loading)
		assert.Empty(t, state.Error)
		api.AssertExpectations(t)
	})

	t.Run("重复id只保留一条", func(t *testing.T) {
		store, _ := seededStore(t, newSummary("a", 0), newSummary("a", time.Hour), newSummary("b", time.Minute))
		assert.Equal(t, []string{"a", "b"}, ids(store.Snapshot().Summaries))
	})

	t.Run("失败时保留原集合并记录错误", func(t *testing.T) {
		store, api := seededStore(t, newSummary("a", 0))
		api.On("ListSummaries", mock.Anything).Return(nil, errors.New("network unreachable")).Once()

		err := store.FetchAll(context.Background())
		require.Error(t, err)

		state := store.Snapshot()
		assert.Equal(t, []string{"a"}, ids(state.Summaries))
		assert.Equal(t, "network unreachable", state.Error)
		assert.False(t, state.Loading)
	})

	t.Run("新请求开始时清除旧错误", func(t *testing.T) {
		api := new(mockAPI)
		api.On("ListSummaries", mock.Anything).Return(nil, errors.New("boom")).Once()
		api.On("ListSummaries", mock.Anything).Return([]model.Summary{}, nil).Once()
		store := NewStore(api)

		require.Error(t, store.FetchAll(context.Background()))
		assert.Equal(t, "boom", store.Snapshot().Error)
		require.NoError(t, store.FetchAll(context.Background()))
		assert.Empty(t, store.Snapshot().Error)
	})
}

func TestFetchAll_StaleResponseDiscarded(t *testing.T) {
	api := new(mockAPI)
	release := make(chan struct{})
	started := make(chan struct{})

	api.On("ListSummaries", mock.Anything).Run(func(args mock.Arguments) {
		close(started)
		<-release
	}).Return([]model.Summary{newSummary("stale", 0)}, nil).Once()
	api.On("ListSummaries", mock.Anything).Return([]model.Summary{newSummary("fresh", 0)}, nil).Once()

	store := NewStore(api)

	var wg sync.WaitGroup
	var staleErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		staleErr = store.FetchAll(context.Background())
	}()

	<-started
	require.NoError(t, store.FetchAll(context.Background()))
	assert.True(t, store.Snapshot().Loading)

	close(release)
	wg.Wait()

	assert.ErrorIs(t, staleErr, ErrSuperseded)
	state := store.Snapshot()
	assert.Equal(t, []string{"fresh"}, ids(state.Summaries))
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
}

func TestFetchOne(t *testing.T) {
	t.Run("成功设为当前摘要", func(t *testing.T) {
		api := new(mockAPI)
		api.On("GetSummary", mock.Anything, "a").Return(newSummary("a", 0), nil)
		store := NewStore(api)

		got, err := store.FetchOne(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, "a", got.ID)

		cur, err := store.Snapshot().Current.UnwrapOrErr(errors.New("none"))
		require.NoError(t, err)
		assert.Equal(t, "a", cur.ID)
	})

	t.Run("失败保留原当前摘要", func(t *testing.T) {
		api := new(mockAPI)
		api.On("GetSummary", mock.Anything, "missing").Return(model.Summary{}, errors.New("Summary not found"))
		store := NewStore(api)
		store.SetCurrent(newSummary("a", 0))

		_, err := store.FetchOne(context.Background(), "missing")
		require.Error(t, err)

		state := store.Snapshot()
		assert.Equal(t, "Summary not found", state.Error)
		assert.Equal(t, "a", state.Current.UnwrapOr(model.Summary{}).ID)
	})
}

// fetchOneDuring 在 GetSummary(id) 阻塞期间执行 during，返回 FetchOne 的结果
func fetchOneDuring(t *testing.T, store *Store, api *mockAPI, id string, during func()) (model.Summary, error) {
	t.Helper()
	release := make(chan struct{})
	started := make(chan struct{})
	api.On("GetSummary", mock.Anything, id).Run(func(args mock.Arguments) {
		close(started)
		<-release
	}).Return(newSummary(id, 0), nil).Once()

	var (
		wg  sync.WaitGroup
		got model.Summary
		err error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		got, err = store.FetchOne(context.Background(), id)
	}()

	<-started
	during()
	close(release)
	wg.Wait()
	return got, err
}

func TestFetchOne_ConcurrentMutations(t *testing.T) {
	t.Run("删除无关摘要不影响进行中的获取", func(t *testing.T) {
		x, y := newSummary("x", 0), newSummary("y", time.Hour)
		store, api := seededStore(t, x, y)
		api.On("DeleteSummary", mock.Anything, "y").Return(nil)

		got, err := fetchOneDuring(t, store, api, "x", func() {
			require.NoError(t, store.Delete(context.Background(), "y"))
		})
		require.NoError(t, err)
		assert.Equal(t, "x", got.ID)

		state := store.Snapshot()
		assert.Equal(t, "x", state.Current.UnwrapOr(model.Summary{}).ID)
		assert.Equal(t, []string{"x"}, ids(state.Summaries))
	})

	t.Run("删除正在获取的摘要丢弃响应", func(t *testing.T) {
		x, y := newSummary("x", 0), newSummary("y", time.Hour)
		store, api := seededStore(t, x, y)
		api.On("DeleteSummary", mock.Anything, "x").Return(nil)

		_, err := fetchOneDuring(t, store, api, "x", func() {
			require.NoError(t, store.Delete(context.Background(), "x"))
		})
		assert.ErrorIs(t, err, ErrSuperseded)
		assert.True(t, store.Snapshot().Current.IsNone())
	})

	t.Run("更新无关摘要不影响进行中的获取", func(t *testing.T) {
		x, y := newSummary("x", 0), newSummary("y", time.Hour)
		store, api := seededStore(t, x, y)
		api.On("UpdateSummary", mock.Anything, "y", validSpec()).Return(newSummary("y", 0), nil)

		got, err := fetchOneDuring(t, store, api, "x", func() {
			_, err := store.Update(context.Background(), "y", validSpec())
			require.NoError(t, err)
		})
		require.NoError(t, err)
		assert.Equal(t, "x", store.Snapshot().Current.UnwrapOr(model.Summary{}).ID)
		assert.Equal(t, "x", got.ID)
	})

	t.Run("更新正在获取的摘要丢弃旧响应", func(t *testing.T) {
		x := newSummary("x", 0)
		store, api := seededStore(t, x)
		updated := newSummary("x", 0)
		updated.Text = "新摘要"
		api.On("UpdateSummary", mock.Anything, "x", validSpec()).Return(updated, nil)

		_, err := fetchOneDuring(t, store, api, "x", func() {
			_, err := store.Update(context.Background(), "x", validSpec())
			require.NoError(t, err)
		})
		assert.ErrorIs(t, err, ErrSuperseded)
		assert.Equal(t, []string{"x"}, ids(store.Snapshot().Summaries))
		assert.Equal(t, "新摘要", store.Snapshot().Summaries[0].Text)
	})

	t.Run("切换当前摘要丢弃响应", func(t *testing.T) {
		store, api := seededStore(t, newSummary("x", 0), newSummary("y", time.Hour))

		_, err := fetchOneDuring(t, store, api, "x", func() {
			store.SetCurrent(newSummary("y", time.Hour))
		})
		assert.ErrorIs(t, err, ErrSuperseded)
		assert.Equal(t, "y", store.Snapshot().Current.UnwrapOr(model.Summary{}).ID)
	})
}

func TestCreate(t *testing.T) {
	t.Run("插入头部并设为当前摘要", func(t *testing.T) {
		store, api := seededStore(t, newSummary("a", time.Hour), newSummary("b", 2*time.Hour))
		created := newSummary("c", 0)
		api.On("CreateSummary", mock.Anything, validSpec()).Return(created, nil)

		got, err := store.Create(context.Background(), validSpec())
		require.NoError(t, err)
		assert.Equal(t, "c", got.ID)

		state := store.Snapshot()
		assert.Equal(t, []string{"c", "a", "b"}, ids(state.Summaries))
		assert.Equal(t, "c", state.Current.UnwrapOr(model.Summary{}).ID)
		assert.False(t, state.Loading)
	})

	t.Run("参数无效时不调用远端", func(t *testing.T) {
		api := new(mockAPI)
		store := NewStore(api)

		_, err := store.Create(context.Background(), model.SummarySpec{
			VideoURL: "https://vimeo.com/1",
			Type:     model.SummaryTypeBrief,
			Length:   model.SummaryLengthShort,
		})
		assert.ErrorIs(t, err, model.ErrInvalidVideoURL)
		assert.Empty(t, store.Snapshot().Error)
		api.AssertNotCalled(t, "CreateSummary", mock.Anything, mock.Anything)
	})

	t.Run("远端失败集合不变", func(t *testing.T) {
		store, api := seededStore(t, newSummary("a", 0))
		api.On("CreateSummary", mock.Anything, validSpec()).Return(model.Summary{}, errors.New("Invalid YouTube URL"))

		_, err := store.Create(context.Background(), validSpec())
		require.Error(t, err)

		state := store.Snapshot()
		assert.Equal(t, []string{"a"}, ids(state.Summaries))
		assert.Equal(t, "Invalid YouTube URL", state.Error)
		assert.True(t, state.Current.IsNone())
	})
}

func TestUpdate(t *testing.T) {
	detailed := model.SummarySpec{
		VideoURL: "https://youtu.be/abc12345678",
		Type:     model.SummaryTypeDetailed,
		Length:   model.SummaryLengthLong,
	}

	t.Run("原位置替换并保留创建时间", func(t *testing.T) {
		a, b := newSummary("a", 0), newSummary("b", time.Hour)
		store, api := seededStore(t, a, b)
		store.SetCurrent(b)

		updated := newSummary("b", -time.Hour)
		updated.Type = model.SummaryTypeDetailed
		updated.Length = model.SummaryLengthLong
		api.On("UpdateSummary", mock.Anything, "b", detailed).Return(updated, nil)

		got, err := store.Update(context.Background(), "b", detailed)
		require.NoError(t, err)
		assert.Equal(t, b.CreatedAt, got.CreatedAt)

		state := store.Snapshot()
		assert.Equal(t, []string{"a", "b"}, ids(state.Summaries))
		assert.Equal(t, model.SummaryTypeDetailed, state.Summaries[1].Type)
		assert.Equal(t, b.CreatedAt, state.Summaries[1].CreatedAt)

		cur := state.Current.UnwrapOr(model.Summary{})
		assert.Equal(t, model.SummaryLengthLong, cur.Length)
	})

	t.Run("当前摘要不同则不受影响", func(t *testing.T) {
		a, b := newSummary("a", 0), newSummary("b", time.Hour)
		store, api := seededStore(t, a, b)
		store.SetCurrent(a)
		api.On("UpdateSummary", mock.Anything, "b", detailed).Return(newSummary("b", 0), nil)

		_, err := store.Update(context.Background(), "b", detailed)
		require.NoError(t, err)
		assert.Equal(t, a, store.Snapshot().Current.UnwrapOr(model.Summary{}))
	})

	t.Run("本地不存在时返回未找到", func(t *testing.T) {
		store, api := seededStore(t, newSummary("a", 0))
		api.On("UpdateSummary", mock.Anything, "ghost", detailed).Return(newSummary("ghost", 0), nil)

		got, err := store.Update(context.Background(), "ghost", detailed)
		assert.ErrorIs(t, err, ErrNotInCollection)
		assert.Equal(t, "ghost", got.ID)
		assert.Equal(t, []string{"a"}, ids(store.Snapshot().Summaries))
	})
}

func TestDelete(t *testing.T) {
	t.Run("删除当前摘要时清空当前", func(t *testing.T) {
		a, b := newSummary("a", 0), newSummary("b", time.Hour)
		store, api := seededStore(t, a, b)
		store.SetCurrent(a)
		api.On("DeleteSummary", mock.Anything, "a").Return(nil)

		require.NoError(t, store.Delete(context.Background(), "a"))
		state := store.Snapshot()
		assert.Equal(t, []string{"b"}, ids(state.Summaries))
		assert.True(t, state.Current.IsNone())
	})

	t.Run("删除其他摘要当前不变", func(t *testing.T) {
		a, b := newSummary("a", 0), newSummary("b", time.Hour)
		store, api := seededStore(t, a, b)
		store.SetCurrent(a)
		api.On("DeleteSummary", mock.Anything, "b").Return(nil)

		require.NoError(t, store.Delete(context.Background(), "b"))
		assert.Equal(t, a, store.Snapshot().Current.UnwrapOr(model.Summary{}))
	})

	t.Run("失败时集合不变", func(t *testing.T) {
		store, api := seededStore(t, newSummary("a", 0))
		api.On("DeleteSummary", mock.Anything, "a").Return(errors.New("forbidden"))

		require.Error(t, store.Delete(context.Background(), "a"))
		state := store.Snapshot()
		assert.Equal(t, []string{"a"}, ids(state.Summaries))
		assert.Equal(t, "forbidden", state.Error)
	})
}

func TestClearErrorAndReset(t *testing.T) {
	store, api := seededStore(t, newSummary("a", 0))
	api.On("DeleteSummary", mock.Anything, "a").Return(errors.New("boom"))
	require.Error(t, store.Delete(context.Background(), "a"))

	store.ClearError()
	state := store.Snapshot()
	assert.Empty(t, state.Error)
	assert.Equal(t, []string{"a"}, ids(state.Summaries))

	store.SetCurrent(newSummary("a", 0))
	store.Reset()
	state = store.Snapshot()
	assert.Empty(t, state.Summaries)
	assert.True(t, state.Current.IsNone())
}

func TestSubscribe(t *testing.T) {
	api := new(mockAPI)
	api.On("ListSummaries", mock.Anything).Return([]model.Summary{newSummary("a", 0)}, nil)
	store := NewStore(api)

	var states []State
	cancel := store.Subscribe(func(s State) { states = append(states, s) })

	require.NoError(t, store.FetchAll(context.Background()))
	require.Len(t, states, 2)
	assert.True(t, states[0].Loading)
	assert.False(t, states[1].Loading)
	assert.Len(t, states[1].Summaries, 1)

	cancel()
	cancel()
	require.NoError(t, store.FetchAll(context.Background()))
	assert.Len(t, states, 2)
}

func TestSubscribe_LastDeliveredIsLatest(t *testing.T) {
	store := NewStore(new(mockAPI))

	var mu sync.Mutex
	var last State
	store.Subscribe(func(s State) {
		mu.Lock()
		last = s
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				store.SetCurrent(newSummary(fmt.Sprintf("s%d", i), 0))
			} else {
				store.ClearCurrent()
			}
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, store.Snapshot(), last)
}
