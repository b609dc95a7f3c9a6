package model

import (
	"fmt"
	"strings"
	"time"
)

// SummaryType 摘要类型
type SummaryType string

const (
	SummaryTypeBrief    SummaryType = "Brief"
	SummaryTypeDetailed SummaryType = "Detailed"
	SummaryTypeKeyPoint SummaryType = "Key Point"
)

// SummaryTypes 全部摘要类型，按界面展示顺序
var SummaryTypes = []SummaryType{SummaryTypeBrief, SummaryTypeDetailed, SummaryTypeKeyPoint}

func (t SummaryType) IsValid() bool {
	switch t {
	case SummaryTypeBrief, SummaryTypeDetailed, SummaryTypeKeyPoint:
		return true
	}
	return false
}

// ParseSummaryType 解析命令行输入，忽略大小写，接受 keypoint / key-point / key point
func ParseSummaryType(s string) (SummaryType, error) {
	switch normalizeOption(s) {
	case "brief":
		return SummaryTypeBrief, nil
	case "detailed":
		return SummaryTypeDetailed, nil
	case "keypoint", "keypoints":
		return SummaryTypeKeyPoint, nil
	}
	return "", fmt.Errorf("未知的摘要类型: %q", s)
}

// SummaryLength 摘要长度
type SummaryLength string

const (
	SummaryLengthShort  SummaryLength = "Short"
	SummaryLengthMedium SummaryLength = "Medium"
	SummaryLengthLong   SummaryLength = "Long"
)

// SummaryLengths 全部摘要长度，按界面展示顺序
var SummaryLengths = []SummaryLength{SummaryLengthShort, SummaryLengthMedium, SummaryLengthLong}

func (l SummaryLength) IsValid() bool {
	switch l {
	case SummaryLengthShort, SummaryLengthMedium, SummaryLengthLong:
		return true
	}
	return false
}

// ParseSummaryLength 解析命令行输入，忽略大小写
func ParseSummaryLength(s string) (SummaryLength, error) {
	switch normalizeOption(s) {
	case "short":
		return SummaryLengthShort, nil
	case "medium":
		return SummaryLengthMedium, nil
	case "long":
		return SummaryLengthLong, nil
	}
	return "", fmt.Errorf("未知的摘要长度: %q", s)
}

func normalizeOption(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, " ", "")
}

// Summary 视频摘要，由远端服务生成并持久化
type Summary struct {
	ID           string        `json:"id"`
	VideoURL     string        `json:"video_url"`
	Title        *string       `json:"video_title,omitempty"`
	ThumbnailURL *string       `json:"video_thumbnail_url,omitempty"`
	Type         SummaryType   `json:"summary_type"`
	Length       SummaryLength `json:"summary_length"`
	Text         string        `json:"summary_text"`
	CreatedAt    time.Time     `json:"created_at"`
}

// DisplayTitle 标题尚未补全时返回默认标题
func (s Summary) DisplayTitle() string {
	if s.Title == nil || *s.Title == "" {
		return "Video Summary"
	}
	return *s.Title
}

// DisplayThumbnail 缩略图缺失时从视频ID推导，无法推导返回空字符串
func (s Summary) DisplayThumbnail() string {
	if s.ThumbnailURL != nil && *s.ThumbnailURL != "" {
		return *s.ThumbnailURL
	}
	if id := ExtractVideoID(s.VideoURL); id != "" {
		return ThumbnailURL(id)
	}
	return ""
}

// Spec 返回可用于编辑表单的生成参数
func (s Summary) Spec() SummarySpec {
	return SummarySpec{
		VideoURL: s.VideoURL,
		Type:     s.Type,
		Length:   s.Length,
	}
}
