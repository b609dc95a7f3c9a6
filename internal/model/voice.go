package model

const (
	MinSpeechRate  = 0.5
	MaxSpeechRate  = 2.0
	MinSpeechPitch = 0.5
	MaxSpeechPitch = 2.0
)

// Voice 语音引擎提供的可选语音
type Voice struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Language   string `json:"language"`
}

// SpeechSettings 朗读配置，VoiceID 为空表示系统默认语音
type SpeechSettings struct {
	Rate    float64
	Pitch   float64
	VoiceID string
}

// DefaultSpeechSettings 默认朗读配置
func DefaultSpeechSettings() SpeechSettings {
	return SpeechSettings{Rate: 1.0, Pitch: 1.0}
}

// ClampRate 将语速限制在允许范围内
func ClampRate(v float64) float64 {
	return clamp(v, MinSpeechRate, MaxSpeechRate)
}

// ClampPitch 将音调限制在允许范围内
func ClampPitch(v float64) float64 {
	return clamp(v, MinSpeechPitch, MaxSpeechPitch)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// VoiceName 返回语音展示名称，未找到时为系统默认
func VoiceName(voices []Voice, id string) string {
	if id == "" {
		return "System Default"
	}
	for _, v := range voices {
		if v.Identifier == id {
			return v.Name
		}
	}
	return "System Default"
}
