package model

import (
	"context"

	"github.com/fachebot/vid-summify/internal/ent"
	"github.com/fachebot/vid-summify/internal/ent/speechsetting"
)

type SpeechSettingsModel struct {
	client *ent.SpeechSettingClient
}

func NewSpeechSettingsModel(client *ent.SpeechSettingClient) *SpeechSettingsModel {
	return &SpeechSettingsModel{client: client}
}

func (m *SpeechSettingsModel) latest(ctx context.Context) (*ent.SpeechSetting, error) {
	return m.client.Query().
		Order(ent.Desc(speechsetting.FieldUpdateTime), ent.Desc(speechsetting.FieldID)).
		First(ctx)
}

// LoadSpeechSettings 读取朗读配置，未保存过时 ok 为 false
func (m *SpeechSettingsModel) LoadSpeechSettings(ctx context.Context) (SpeechSettings, bool, error) {
	row, err := m.latest(ctx)
	if ent.IsNotFound(err) {
		return SpeechSettings{}, false, nil
	}
	if err != nil {
		return SpeechSettings{}, false, err
	}
	return SpeechSettings{Rate: row.Rate, Pitch: row.Pitch, VoiceID: row.VoiceID}, true, nil
}

// SaveSpeechSettings 保存朗读配置，只保留一行
func (m *SpeechSettingsModel) SaveSpeechSettings(ctx context.Context, s SpeechSettings) error {
	row, err := m.latest(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return err
	}
	if row != nil {
		return m.client.UpdateOne(row).
			SetRate(s.Rate).
			SetPitch(s.Pitch).
			SetVoiceID(s.VoiceID).
			Exec(ctx)
	}
	return m.client.Create().
		SetRate(s.Rate).
		SetPitch(s.Pitch).
		SetVoiceID(s.VoiceID).
		Exec(ctx)
}
