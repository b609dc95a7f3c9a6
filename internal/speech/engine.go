package speech

import (
	"context"

	"github.com/fachebot/vid-summify/internal/model"
)

// Engine 设备语音合成能力
type Engine interface {
	// ListVoices 枚举可用语音
	ListVoices(ctx context.Context) ([]model.Voice, error)

	// Settings 返回当前朗读配置
	Settings() model.SpeechSettings

	SetRate(ctx context.Context, rate float64) error
	SetPitch(ctx context.Context, pitch float64) error
	SetVoice(ctx context.Context, voiceID string) error

	// Start 开始朗读，进程启动后立即返回；朗读自然结束时调用 done
	Start(ctx context.Context, text string, done func()) error

	// Stop 停止朗读并等待结束，可重复调用
	Stop(ctx context.Context) error
}

// SettingsStore 朗读配置的持久化
type SettingsStore interface {
	LoadSpeechSettings(ctx context.Context) (model.SpeechSettings, bool, error)
	SaveSpeechSettings(ctx context.Context, s model.SpeechSettings) error
}
