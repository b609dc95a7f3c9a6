package speech

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fachebot/vid-summify/internal/config"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProcess Kill 后 Wait 返回
type fakeProcess struct {
	once   sync.Once
	finish chan struct{}
	killed bool
}

func newFakeProcess() *fakeProcess {
	return &fakeProcess{finish: make(chan struct{})}
}

func (p *fakeProcess) Wait() error {
	<-p.finish
	return nil
}

func (p *fakeProcess) Kill() error {
	p.killed = true
	p.end()
	return nil
}

func (p *fakeProcess) end() {
	p.once.Do(func() { close(p.finish) })
}

type fakeRunner struct {
	mu       sync.Mutex
	output   string
	err      error
	startErr error
	started  [][]string
	procs    []*fakeProcess
}

func (r *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	return r.output, r.err
}

func (r *fakeRunner) Start(name string, args ...string) (Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.startErr != nil {
		return nil, r.startErr
	}
	p := newFakeProcess()
	r.started = append(r.started, args)
	r.procs = append(r.procs, p)
	return p, nil
}

type memorySettings struct {
	saved   *model.SpeechSettings
	saveErr error
}

func (m *memorySettings) LoadSpeechSettings(ctx context.Context) (model.SpeechSettings, bool, error) {
	if m.saved == nil {
		return model.SpeechSettings{}, false, nil
	}
	return *m.saved, true, nil
}

func (m *memorySettings) SaveSpeechSettings(ctx context.Context, s model.SpeechSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = &s
	return nil
}

var testSpeechConfig = config.Speech{Binary: "espeak-ng", Rate: 1.0, Pitch: 1.0}

func TestNewCommandEngine_Settings(t *testing.T) {
	t.Run("无持久化配置使用配置文件", func(t *testing.T) {
		e, err := NewCommandEngine(context.Background(), config.Speech{Binary: "espeak-ng", Rate: 1.5, Pitch: 0.8, Voice: "en-us"}, &fakeRunner{}, &memorySettings{})
		require.NoError(t, err)
		assert.Equal(t, model.SpeechSettings{Rate: 1.5, Pitch: 0.8, VoiceID: "en-us"}, e.Settings())
	})

	t.Run("持久化配置优先并被限制范围", func(t *testing.T) {
		store := &memorySettings{saved: &model.SpeechSettings{Rate: 9, Pitch: 0.1, VoiceID: "de"}}
		e, err := NewCommandEngine(context.Background(), testSpeechConfig, &fakeRunner{}, store)
		require.NoError(t, err)
		assert.Equal(t, model.SpeechSettings{Rate: 2.0, Pitch: 0.5, VoiceID: "de"}, e.Settings())
	})
}

func TestSetters(t *testing.T) {
	store := &memorySettings{}
	e, err := NewCommandEngine(context.Background(), testSpeechConfig, &fakeRunner{}, store)
	require.NoError(t, err)

	require.NoError(t, e.SetRate(context.Background(), 1.25))
	require.NoError(t, e.SetPitch(context.Background(), 3))
	require.NoError(t, e.SetVoice(context.Background(), " en-gb "))

	want := model.SpeechSettings{Rate: 1.25, Pitch: 2.0, VoiceID: "en-gb"}
	assert.Equal(t, want, e.Settings())
	require.NotNil(t, store.saved)
	assert.Equal(t, want, *store.saved)

	store.saveErr = errors.New("disk full")
	require.Error(t, e.SetRate(context.Background(), 0.5))
	assert.Equal(t, 1.25, e.Settings().Rate)
}

func TestListVoices(t *testing.T) {
	runner := &fakeRunner{output: `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af              --/M      Afrikaans          gmw/af
 2  en-us           --/M      English_(America)  gmw/en-US            (en 10)
 5  en-us           --/M      Duplicate          gmw/en-US
`}
	e, err := NewCommandEngine(context.Background(), testSpeechConfig, runner, nil)
	require.NoError(t, err)

	voices, err := e.ListVoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Voice{
		{Identifier: "af", Name: "Afrikaans", Language: "af"},
		{Identifier: "en-us", Name: "English (America)", Language: "en-us"},
	}, voices)

	runner.err = errors.New("not found")
	_, err = e.ListVoices(context.Background())
	assert.Error(t, err)
}

func TestStartArgs(t *testing.T) {
	tests := []struct {
		name     string
		settings model.SpeechSettings
		want     []string
	}{
		{"默认配置", model.SpeechSettings{Rate: 1, Pitch: 1}, []string{"-s", "175", "-p", "50", "--", "hello"}},
		{"指定语音", model.SpeechSettings{Rate: 2, Pitch: 0.5, VoiceID: "en-us"}, []string{"-s", "350", "-p", "25", "-v", "en-us", "--", "hello"}},
		{"音调上限", model.SpeechSettings{Rate: 0.5, Pitch: 2}, []string{"-s", "87", "-p", "99", "--", "hello"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			store := &memorySettings{saved: &tt.settings}
			e, err := NewCommandEngine(context.Background(), testSpeechConfig, runner, store)
			require.NoError(t, err)

			require.NoError(t, e.Start(context.Background(), "hello", nil))
			require.Len(t, runner.started, 1)
			assert.Equal(t, tt.want, runner.started[0])
			require.NoError(t, e.Stop(context.Background()))
		})
	}
}

func TestStartStop(t *testing.T) {
	runner := &fakeRunner{}
	e, err := NewCommandEngine(context.Background(), testSpeechConfig, runner, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	require.NoError(t, e.Start(context.Background(), "a", func() { close(done) }))

	require.NoError(t, e.Stop(context.Background()))
	assert.True(t, runner.procs[0].killed)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done 回调未触发")
	}

	// 重复停止无副作用
	require.NoError(t, e.Stop(context.Background()))
}

func TestStart_NaturalEnd(t *testing.T) {
	runner := &fakeRunner{}
	e, err := NewCommandEngine(context.Background(), testSpeechConfig, runner, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	require.NoError(t, e.Start(context.Background(), "a", func() { close(done) }))
	runner.procs[0].end()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done 回调未触发")
	}
	assert.False(t, runner.procs[0].killed)
	require.NoError(t, e.Stop(context.Background()))
}

func TestStart_ReplacesRunningProcess(t *testing.T) {
	runner := &fakeRunner{}
	e, err := NewCommandEngine(context.Background(), testSpeechConfig, runner, nil)
	require.NoError(t, err)

	require.NoError(t, e.Start(context.Background(), "a", nil))
	require.NoError(t, e.Start(context.Background(), "b", nil))

	require.Len(t, runner.procs, 2)
	assert.True(t, runner.procs[0].killed)
	assert.False(t, runner.procs[1].killed)
	require.NoError(t, e.Stop(context.Background()))
}

func TestStart_Failure(t *testing.T) {
	runner := &fakeRunner{startErr: errors.New("executable file not found")}
	e, err := NewCommandEngine(context.Background(), testSpeechConfig, runner, nil)
	require.NoError(t, err)

	err = e.Start(context.Background(), "a", nil)
	assert.ErrorContains(t, err, "executable file not found")
	require.NoError(t, e.Stop(context.Background()))
}
