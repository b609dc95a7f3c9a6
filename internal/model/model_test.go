package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestIsValidYouTubeURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"空链接", "", false},
		{"短链接", "https://youtu.be/abc12345678", true},
		{"标准链接", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"无协议", "youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"缺少路径", "https://youtube.com/", false},
		{"其他站点", "https://vimeo.com/123", false},
		{"普通文本", "hello world", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidYouTubeURL(tt.url))
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"短链接", "https://youtu.be/abc12345678", "abc12345678"},
		{"watch 链接", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10", "dQw4w9WgXcQ"},
		{"embed 链接", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"ID 长度不对", "https://youtu.be/short", ""},
		{"空链接", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVideoID(tt.url))
		})
	}
}

func TestThumbnailAndVideoURL(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/abc12345678/hqdefault.jpg", ThumbnailURL("abc12345678"))
	assert.Equal(t, "https://www.youtube.com/watch?v=abc12345678", VideoURL("abc12345678"))
	assert.Empty(t, ThumbnailURL(""))
	assert.Empty(t, VideoURL(""))
}

func TestSummaryDisplay(t *testing.T) {
	s := Summary{VideoURL: "https://youtu.be/abc12345678"}
	assert.Equal(t, "Video Summary", s.DisplayTitle())
	assert.Equal(t, "https://img.youtube.com/vi/abc12345678/hqdefault.jpg", s.DisplayThumbnail())

	s.Title = strPtr("Go 并发")
	s.ThumbnailURL = strPtr("https://cdn.example.com/t.jpg")
	assert.Equal(t, "Go 并发", s.DisplayTitle())
	assert.Equal(t, "https://cdn.example.com/t.jpg", s.DisplayThumbnail())
}

func TestParseSummaryType(t *testing.T) {
	for in, want := range map[string]SummaryType{
		"brief":     SummaryTypeBrief,
		"Detailed":  SummaryTypeDetailed,
		"keypoint":  SummaryTypeKeyPoint,
		"key-point": SummaryTypeKeyPoint,
		"Key Point": SummaryTypeKeyPoint,
	} {
		got, err := ParseSummaryType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSummaryType("epic")
	assert.Error(t, err)
}

func TestParseSummaryLength(t *testing.T) {
	got, err := ParseSummaryLength("LONG")
	require.NoError(t, err)
	assert.Equal(t, SummaryLengthLong, got)
	_, err = ParseSummaryLength("tiny")
	assert.Error(t, err)
}

func TestSummarySpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    SummarySpec
		wantErr error
	}{
		{"有效参数", SummarySpec{VideoURL: "https://youtu.be/abc12345678", Type: SummaryTypeBrief, Length: SummaryLengthShort}, nil},
		{"链接为空", SummarySpec{Type: SummaryTypeBrief, Length: SummaryLengthShort}, ErrEmptyVideoURL},
		{"链接无效", SummarySpec{VideoURL: "https://vimeo.com/1", Type: SummaryTypeBrief, Length: SummaryLengthShort}, ErrInvalidVideoURL},
		{"类型无效", SummarySpec{VideoURL: "https://youtu.be/abc12345678", Type: "Epic", Length: SummaryLengthShort}, ErrInvalidSpec},
		{"长度缺失", SummarySpec{VideoURL: "https://youtu.be/abc12345678", Type: SummaryTypeKeyPoint}, ErrInvalidSpec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "", TruncateText("", 10))
	assert.Equal(t, "短文本", TruncateText("短文本", 10))
	assert.Equal(t, "abcde...", TruncateText("abcdefgh", 5))
	assert.Equal(t, "youtu.be/abc12345678", FormatURL("https://youtu.be/abc12345678", 50))
	assert.Equal(t, "www.y...", FormatURL("http://www.youtube.com", 5))
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.NotEmpty(t, FormatDate(time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)))
}

func TestShareMessage(t *testing.T) {
	s := Summary{VideoURL: "https://youtu.be/abc12345678", Text: "要点"}
	assert.Equal(t, "Summary for \"Video Summary\":\n\n要点\n\nOriginal Video: https://youtu.be/abc12345678", ShareMessage(s))
}

func TestSpeechSettingsHelpers(t *testing.T) {
	assert.Equal(t, 0.5, ClampRate(0.1))
	assert.Equal(t, 2.0, ClampPitch(5))
	assert.Equal(t, 1.2, ClampRate(1.2))

	voices := []Voice{{Identifier: "en-us", Name: "English (America)"}}
	assert.Equal(t, "System Default", VoiceName(voices, ""))
	assert.Equal(t, "English (America)", VoiceName(voices, "en-us"))
	assert.Equal(t, "System Default", VoiceName(voices, "fr"))
}
