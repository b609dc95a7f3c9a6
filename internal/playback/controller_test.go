package playback

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fachebot/vid-summify/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// fakeEngine 记录调用顺序，done 回调由测试手动触发
type fakeEngine struct {
	mu       sync.Mutex
	calls    []string
	dones    []func()
	settings model.SpeechSettings
	voices   []model.Voice
	startErr error
	stopErr  error
	listed   int
}

func (e *fakeEngine) record(call string) {
	e.mu.Lock()
	e.calls = append(e.calls, call)
	e.mu.Unlock()
}

func (e *fakeEngine) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.calls...)
}

func (e *fakeEngine) ListVoices(ctx context.Context) ([]model.Voice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listed++
	return e.voices, nil
}

func (e *fakeEngine) Settings() model.SpeechSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

func (e *fakeEngine) SetRate(ctx context.Context, rate float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.Rate = rate
	return nil
}

func (e *fakeEngine) SetPitch(ctx context.Context, pitch float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.Pitch = pitch
	return nil
}

func (e *fakeEngine) SetVoice(ctx context.Context, voiceID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.VoiceID = voiceID
	return nil
}

func (e *fakeEngine) Start(ctx context.Context, text string, done func()) error {
	e.record("start:" + text)
	if e.startErr != nil {
		return e.startErr
	}
	e.mu.Lock()
	e.dones = append(e.dones, done)
	e.mu.Unlock()
	return nil
}

func (e *fakeEngine) Stop(ctx context.Context) error {
	e.record("stop")
	return e.stopErr
}

func (e *fakeEngine) done(i int) {
	e.mu.Lock()
	cb := e.dones[i]
	e.mu.Unlock()
	cb()
}

func TestPlay_Idle(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	require.NoError(t, c.Play(context.Background(), "A"))
	assert.Equal(t, State{Status: Speaking, Text: "A"}, c.State())
	assert.True(t, c.IsSpeaking("A"))
	assert.Equal(t, []string{"start:A"}, engine.Calls())
}

func TestPlay_ToggleSameText(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	require.NoError(t, c.Play(context.Background(), "A"))
	require.NoError(t, c.Play(context.Background(), "A"))

	assert.Equal(t, State{Status: Idle}, c.State())
	assert.Equal(t, []string{"start:A", "stop"}, engine.Calls())
}

func TestPlay_SwitchText(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	require.NoError(t, c.Play(context.Background(), "A"))
	require.NoError(t, c.Play(context.Background(), "B"))

	assert.Equal(t, State{Status: Speaking, Text: "B"}, c.State())
	assert.Equal(t, []string{"start:A", "stop", "start:B"}, engine.Calls())
}

func TestPlay_StartFailure(t *testing.T) {
	engine := &fakeEngine{startErr: errors.New("no audio device")}
	c := NewController(engine)

	var states []State
	c.Subscribe(func(s State) { states = append(states, s) })

	err := c.Play(context.Background(), "A")
	require.Error(t, err)
	assert.Equal(t, State{Status: Idle}, c.State())
	assert.Equal(t, []State{{Status: Speaking, Text: "A"}, {Status: Idle}}, states)
}

func TestPlay_StopFailureDoesNotStartNext(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)
	require.NoError(t, c.Play(context.Background(), "A"))

	engine.stopErr = errors.New("stuck")
	err := c.Play(context.Background(), "B")
	require.Error(t, err)

	assert.Equal(t, State{Status: Idle}, c.State())
	assert.Equal(t, []string{"start:A", "stop"}, engine.Calls())
}

func TestStop(t *testing.T) {
	t.Run("Idle 时无操作", func(t *testing.T) {
		engine := &fakeEngine{}
		c := NewController(engine)
		require.NoError(t, c.Stop(context.Background()))
		assert.Empty(t, engine.Calls())
	})

	t.Run("朗读中停止", func(t *testing.T) {
		engine := &fakeEngine{}
		c := NewController(engine)
		require.NoError(t, c.Play(context.Background(), "A"))
		require.NoError(t, c.Stop(context.Background()))
		assert.Equal(t, State{Status: Idle}, c.State())
		assert.Equal(t, []string{"start:A", "stop"}, engine.Calls())
	})
}

func TestNaturalEnd(t *testing.T) {
	t.Run("朗读结束回到 Idle", func(t *testing.T) {
		engine := &fakeEngine{}
		c := NewController(engine)
		require.NoError(t, c.Play(context.Background(), "A"))

		engine.done(0)
		assert.Equal(t, State{Status: Idle}, c.State())
	})

	t.Run("旧朗读的结束回调不影响新朗读", func(t *testing.T) {
		engine := &fakeEngine{}
		c := NewController(engine)
		require.NoError(t, c.Play(context.Background(), "A"))
		require.NoError(t, c.Play(context.Background(), "B"))

		engine.done(0)
		assert.Equal(t, State{Status: Speaking, Text: "B"}, c.State())

		engine.done(1)
		assert.Equal(t, State{Status: Idle}, c.State())
	})
}

func TestSettingsDoNotAffectSpeaking(t *testing.T) {
	engine := &fakeEngine{settings: model.DefaultSpeechSettings()}
	c := NewController(engine)
	require.NoError(t, c.Play(context.Background(), "A"))

	require.NoError(t, c.SetRate(context.Background(), 5))
	require.NoError(t, c.SetPitch(context.Background(), 0.7))
	require.NoError(t, c.SetVoice(context.Background(), "en-us"))

	assert.Equal(t, model.SpeechSettings{Rate: 2.0, Pitch: 0.7, VoiceID: "en-us"}, c.Settings())
	assert.Equal(t, State{Status: Speaking, Text: "A"}, c.State())
	assert.Equal(t, []string{"start:A"}, engine.Calls())
}

func TestListVoices_Cached(t *testing.T) {
	engine := &fakeEngine{voices: []model.Voice{{Identifier: "en-us", Name: "English", Language: "en-us"}}}
	c := NewController(engine)
	c.Initialize(context.Background())

	voices, err := c.ListVoices(context.Background())
	require.NoError(t, err)
	assert.Len(t, voices, 1)
	assert.Equal(t, 1, engine.listed)

	_, err = c.RefreshVoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, engine.listed)
}

func TestPlay_MarkdownConvertedForEngine(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	require.NoError(t, c.Play(context.Background(), "# 要点\n\n- **第一**"))
	assert.Equal(t, []string{"start:要点\n第一"}, engine.Calls())
	assert.Equal(t, "# 要点\n\n- **第一**", c.State().Text)
}

// TestPlaybackLaws 任意 play/stop 序列下，引擎上不会出现重叠朗读
func TestPlaybackLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		engine := &fakeEngine{}
		c := NewController(engine)
		ctx := context.Background()

		texts := []string{"A", "B", "C"}
		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			before := c.State()
			if rapid.Bool().Draw(t, "stop") {
				_ = c.Stop(ctx)
				if c.State().Status != Idle {
					t.Fatalf("stop left %v", c.State())
				}
				continue
			}

			text := rapid.SampledFrom(texts).Draw(t, "text")
			_ = c.Play(ctx, text)
			after := c.State()
			if before.Status == Speaking && before.Text == text {
				if after.Status != Idle {
					t.Fatalf("toggle law violated: %v -> %v", before, after)
				}
			} else if after != (State{Status: Speaking, Text: text}) {
				t.Fatalf("expected Speaking(%s), got %v", text, after)
			}
		}

		// PROPERTY: 每次 start 前，之前的朗读都已 stop
		active := false
		for _, call := range engine.Calls() {
			if call == "stop" {
				active = false
				continue
			}
			if active {
				t.Fatalf("overlapping utterance at %s", call)
			}
			active = true
		}
	})
}

func TestSubscribe_LastDeliveredIsLatest(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine)

	var mu sync.Mutex
	var last State
	c.Subscribe(func(s State) {
		mu.Lock()
		last = s
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				_ = c.Play(context.Background(), "A")
			case 1:
				_ = c.Play(context.Background(), "B")
			default:
				_ = c.Stop(context.Background())
			}
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, c.State(), last)
}
