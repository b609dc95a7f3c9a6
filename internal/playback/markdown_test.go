package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"纯文本", "hello world", "hello world"},
		{"标题和列表", "## Key Points\n\n1. First\n2. *Second*", "Key Points\nFirst\nSecond"},
		{"链接保留文字", "See [the video](https://youtu.be/abc12345678).", "See the video."},
		{"软换行合并", "line one\nline two", "line one line two"},
		{"代码块", "```\nfmt.Println()\n```", "fmt.Println()"},
		{"空输入", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
