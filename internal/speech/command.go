package speech

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/fachebot/vid-summify/internal/config"
	"github.com/fachebot/vid-summify/internal/logger"
	"github.com/fachebot/vid-summify/internal/model"
)

const (
	baseWordsPerMinute = 175
	basePitch          = 50
	maxPitch           = 99
)

// CommandEngine 通过 espeak-ng 兼容的命令行程序朗读
type CommandEngine struct {
	binary string
	runner Runner
	store  SettingsStore

	mu       sync.Mutex
	settings model.SpeechSettings
	proc     Process
	exited   chan struct{}
}

// NewCommandEngine 创建语音引擎，优先使用已持久化的配置，否则使用配置文件中的初始值
func NewCommandEngine(ctx context.Context, c config.Speech, runner Runner, store SettingsStore) (*CommandEngine, error) {
	settings := model.SpeechSettings{
		Rate:    model.ClampRate(c.Rate),
		Pitch:   model.ClampPitch(c.Pitch),
		VoiceID: c.Voice,
	}

	if store != nil {
		saved, ok, err := store.LoadSpeechSettings(ctx)
		if err != nil {
			return nil, fmt.Errorf("加载朗读配置失败: %w", err)
		}
		if ok {
			settings = model.SpeechSettings{
				Rate:    model.ClampRate(saved.Rate),
				Pitch:   model.ClampPitch(saved.Pitch),
				VoiceID: saved.VoiceID,
			}
		}
	}

	if runner == nil {
		runner = NewRunner()
	}

	return &CommandEngine{
		binary:   c.Binary,
		runner:   runner,
		store:    store,
		settings: settings,
	}, nil
}

// ListVoices 解析 --voices 输出
func (e *CommandEngine) ListVoices(ctx context.Context) ([]model.Voice, error) {
	out, err := e.runner.Output(ctx, e.binary, "--voices")
	if err != nil {
		return nil, fmt.Errorf("获取语音列表失败: %w", err)
	}
	return parseVoices(out), nil
}

func (e *CommandEngine) Settings() model.SpeechSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

func (e *CommandEngine) SetRate(ctx context.Context, rate float64) error {
	return e.update(ctx, func(s *model.SpeechSettings) {
		s.Rate = model.ClampRate(rate)
	})
}

func (e *CommandEngine) SetPitch(ctx context.Context, pitch float64) error {
	return e.update(ctx, func(s *model.SpeechSettings) {
		s.Pitch = model.ClampPitch(pitch)
	})
}

func (e *CommandEngine) SetVoice(ctx context.Context, voiceID string) error {
	return e.update(ctx, func(s *model.SpeechSettings) {
		s.VoiceID = strings.TrimSpace(voiceID)
	})
}

func (e *CommandEngine) update(ctx context.Context, apply func(s *model.SpeechSettings)) error {
	e.mu.Lock()
	next := e.settings
	apply(&next)
	e.mu.Unlock()

	if e.store != nil {
		if err := e.store.SaveSpeechSettings(ctx, next); err != nil {
			return fmt.Errorf("保存朗读配置失败: %w", err)
		}
	}

	e.mu.Lock()
	e.settings = next
	e.mu.Unlock()
	return nil
}

// Start 启动朗读进程；已有进程在运行时先结束它
func (e *CommandEngine) Start(ctx context.Context, text string, done func()) error {
	if err := e.Stop(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	args := e.args(text)
	proc, err := e.runner.Start(e.binary, args...)
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("启动语音引擎失败: %w", err)
	}
	exited := make(chan struct{})
	e.proc = proc
	e.exited = exited
	e.mu.Unlock()

	go func() {
		err := proc.Wait()
		e.mu.Lock()
		if e.proc == proc {
			e.proc = nil
			e.exited = nil
		}
		e.mu.Unlock()
		close(exited)

		if err != nil {
			logger.Debugf("[Speech] 朗读进程退出: %v", err)
		}
		if done != nil {
			done()
		}
	}()

	return nil
}

// Stop 结束正在运行的朗读进程并等待其退出
func (e *CommandEngine) Stop(ctx context.Context) error {
	e.mu.Lock()
	proc, exited := e.proc, e.exited
	e.mu.Unlock()

	if proc == nil {
		return nil
	}
	if err := proc.Kill(); err != nil {
		return fmt.Errorf("停止语音引擎失败: %w", err)
	}

	select {
	case <-exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *CommandEngine) args(text string) []string {
	args := []string{
		"-s", strconv.Itoa(int(baseWordsPerMinute * e.settings.Rate)),
		"-p", strconv.Itoa(pitchArg(e.settings.Pitch)),
	}
	if e.settings.VoiceID != "" {
		args = append(args, "-v", e.settings.VoiceID)
	}
	return append(args, "--", text)
}

func pitchArg(pitch float64) int {
	p := int(basePitch * pitch)
	if p < 0 {
		return 0
	}
	if p > maxPitch {
		return maxPitch
	}
	return p
}

// parseVoices 解析形如
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  en-us           --/M      English_(America)  gmw/en-US            (en 10)
func parseVoices(out string) []model.Voice {
	voices := make([]model.Voice, 0)
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[0] == "Pty" {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}

		lang := fields[1]
		if seen[lang] {
			continue
		}
		seen[lang] = true

		voices = append(voices, model.Voice{
			Identifier: lang,
			Name:       strings.ReplaceAll(fields[3], "_", " "),
			Language:   lang,
		})
	}
	return voices
}
