package model

import (
	"fmt"
	"regexp"
)

var (
	youtubeURLRegex = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+`)
	videoIDRegex    = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)
)

// IsValidYouTubeURL 检查是否为 YouTube 链接
func IsValidYouTubeURL(url string) bool {
	if url == "" {
		return false
	}
	return youtubeURLRegex.MatchString(url)
}

// ExtractVideoID 提取 11 位视频ID，无法识别返回空字符串
func ExtractVideoID(url string) string {
	if url == "" {
		return ""
	}
	m := videoIDRegex.FindStringSubmatch(url)
	if m == nil || len(m[2]) != 11 {
		return ""
	}
	return m[2]
}

// ThumbnailURL 返回高清缩略图地址
func ThumbnailURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
}

// VideoURL 返回标准观看地址
func VideoURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + videoID
}
