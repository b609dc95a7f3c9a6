package form

import (
	"context"
	"errors"
	"testing"

	"github.com/fachebot/vid-summify/internal/handoff"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/fachebot/vid-summify/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, spec model.SummarySpec) (model.Summary, error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(model.Summary), args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, id string, spec model.SummarySpec) (model.Summary, error) {
	args := m.Called(ctx, id, spec)
	return args.Get(0).(model.Summary), args.Error(1)
}

const videoURL = "https://www.youtube.com/watch?v=abc12345678"

func TestDefaults(t *testing.T) {
	f := New(new(mockStore), handoff.New())
	assert.Equal(t, Fields{Type: model.SummaryTypeBrief, Length: model.SummaryLengthMedium}, f.Fields())
	assert.Equal(t, ModeCreate, f.Mode())
	assert.False(t, f.Enter())
}

func TestEnter_ConsumesHandoffOnce(t *testing.T) {
	h := handoff.New()
	h.Request(model.Summary{ID: "s1", VideoURL: videoURL, Type: model.SummaryTypeKeyPoint, Length: model.SummaryLengthLong})
	f := New(new(mockStore), h)

	require.True(t, f.Enter())
	assert.Equal(t, ModeEdit, f.Mode())
	assert.Equal(t, "s1", f.EditID())
	assert.Equal(t, Fields{VideoURL: videoURL, Type: model.SummaryTypeKeyPoint, Length: model.SummaryLengthLong}, f.Fields())

	// 同一视图生命周期内重复进入不再取交接
	h.Request(model.Summary{ID: "s2"})
	assert.False(t, f.Enter())
	assert.Equal(t, "s1", f.EditID())
	assert.True(t, h.Pending())

	f.Leave()
	require.True(t, f.Enter())
	assert.Equal(t, "s2", f.EditID())
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want error
	}{
		{"空链接", "", model.ErrEmptyVideoURL},
		{"只有空白", "   ", model.ErrEmptyVideoURL},
		{"非 YouTube 链接", "https://vimeo.com/123", model.ErrInvalidVideoURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockStore)
			f := New(store, handoff.New())
			f.SetVideoURL(tt.url)

			_, err := f.Submit(context.Background())
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.url, f.Fields().VideoURL)
			store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmit_Create(t *testing.T) {
	store := new(mockStore)
	spec := model.SummarySpec{VideoURL: videoURL, Type: model.SummaryTypeDetailed, Length: model.SummaryLengthShort}
	store.On("Create", mock.Anything, spec).Return(model.Summary{ID: "new"}, nil)

	f := New(store, handoff.New())
	f.SetVideoURL("  " + videoURL + "  ")
	f.SetType(model.SummaryTypeDetailed)
	f.SetLength(model.SummaryLengthShort)

	got, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
	assert.Equal(t, Fields{Type: DefaultType, Length: DefaultLength}, f.Fields())
	store.AssertExpectations(t)
}

func TestSubmit_Update(t *testing.T) {
	t.Run("编辑模式提交走更新并重置", func(t *testing.T) {
		store := new(mockStore)
		spec := model.SummarySpec{VideoURL: videoURL, Type: model.SummaryTypeBrief, Length: model.SummaryLengthLong}
		store.On("Update", mock.Anything, "s1", spec).Return(model.Summary{ID: "s1"}, nil)

		h := handoff.New()
		h.Request(model.Summary{ID: "s1", VideoURL: videoURL, Type: model.SummaryTypeBrief, Length: model.SummaryLengthShort})
		f := New(store, h)
		require.True(t, f.Enter())
		f.SetLength(model.SummaryLengthLong)

		_, err := f.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ModeCreate, f.Mode())
		assert.Empty(t, f.EditID())
		store.AssertExpectations(t)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("本地不存在仍视为成功", func(t *testing.T) {
		store := new(mockStore)
		store.On("Update", mock.Anything, "s1", mock.Anything).Return(model.Summary{ID: "s1"}, summary.ErrNotInCollection)

		h := handoff.New()
		h.Request(model.Summary{ID: "s1", VideoURL: videoURL, Type: model.SummaryTypeBrief, Length: model.SummaryLengthShort})
		f := New(store, h)
		f.Enter()

		got, err := f.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "s1", got.ID)
	})
}

func TestSubmit_RemoteFailureKeepsFields(t *testing.T) {
	store := new(mockStore)
	store.On("Create", mock.Anything, mock.Anything).Return(model.Summary{}, errors.New("Failed to generate summary"))

	f := New(store, handoff.New())
	f.SetVideoURL(videoURL)
	f.SetType(model.SummaryTypeKeyPoint)

	_, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, Fields{VideoURL: videoURL, Type: model.SummaryTypeKeyPoint, Length: DefaultLength}, f.Fields())
}

func TestCancel(t *testing.T) {
	h := handoff.New()
	h.Request(model.Summary{ID: "s1", VideoURL: videoURL, Type: model.SummaryTypeDetailed, Length: model.SummaryLengthLong})
	f := New(new(mockStore), h)
	f.Enter()

	f.Cancel()
	assert.Equal(t, ModeCreate, f.Mode())
	assert.Equal(t, Fields{Type: DefaultType, Length: DefaultLength}, f.Fields())
}

func TestPaste(t *testing.T) {
	f := New(new(mockStore), handoff.New())

	assert.True(t, f.Paste(videoURL))
	assert.Equal(t, videoURL, f.Fields().VideoURL)

	assert.False(t, f.Paste("hello"))
	assert.Equal(t, "hello", f.Fields().VideoURL)

	assert.True(t, f.Paste("  "))
	assert.Equal(t, "hello", f.Fields().VideoURL)
}
