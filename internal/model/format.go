package model

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// FormatDate 格式化时间用于展示，零值返回空字符串
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006, 15:04")
}

// TruncateText 按字符截断文本，超出时追加省略号
func TruncateText(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxLength]) + "..."
}

// FormatURL 去掉协议头并按长度截断
func FormatURL(url string, maxLength int) string {
	if url == "" {
		return ""
	}
	formatted := strings.TrimPrefix(url, "https://")
	formatted = strings.TrimPrefix(formatted, "http://")
	return TruncateText(formatted, maxLength)
}

// ShareMessage 生成分享文本
func ShareMessage(s Summary) string {
	return fmt.Sprintf("Summary for \"%s\":\n\n%s\n\nOriginal Video: %s", s.DisplayTitle(), s.Text, s.VideoURL)
}
