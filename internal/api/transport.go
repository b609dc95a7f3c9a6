package api

import (
	"fmt"
	"net/http"

	"github.com/fachebot/vid-summify/internal/config"
	"golang.org/x/net/proxy"
)

// NewTransport 按配置创建 SOCKS5 代理传输，未启用代理返回 nil
func NewTransport(c *config.Sock5Proxy) (*http.Transport, error) {
	if !c.Enable {
		return nil, nil
	}

	socks5Proxy := fmt.Sprintf("%s:%d", c.Host, c.Port)
	dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("创建SOCKS5代理失败: %w", err)
	}

	return &http.Transport{
		Dial: dialer.Dial,
	}, nil
}
