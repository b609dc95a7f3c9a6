package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type API struct {
	BaseURL string `yaml:"BaseURL"` // 摘要服务地址，如 https://api.vidsummify.com/v1
	Timeout int    `yaml:"Timeout"` // 单次请求超时（秒），默认 120
}

type Speech struct {
	Binary string  `yaml:"Binary"` // espeak-ng 兼容的可执行文件
	Rate   float64 `yaml:"Rate"`   // 初始语速，0.5 ~ 2.0
	Pitch  float64 `yaml:"Pitch"`  // 初始音调，0.5 ~ 2.0
	Voice  string  `yaml:"Voice"`  // 初始语音，空表示系统默认
}

type Storage struct {
	Path string `yaml:"Path"` // 本地 sqlite 数据库路径
}

type Log struct {
	Dir        string `yaml:"Dir"`
	File       string `yaml:"File"`
	Level      string `yaml:"Level"` // debug / info / warn / error
	MaxSize    int    `yaml:"MaxSize"`
	MaxBackups int    `yaml:"MaxBackups"`
	MaxAge     int    `yaml:"MaxAge"`
}

type Refresh struct {
	Cron string `yaml:"Cron"` // watch 模式下刷新摘要列表的 cron 表达式
}

type Config struct {
	API        API        `yaml:"API"`
	Sock5Proxy Sock5Proxy `yaml:"Sock5Proxy"`
	Speech     Speech     `yaml:"Speech"`
	Storage    Storage    `yaml:"Storage"`
	Log        Log        `yaml:"Log"`
	Refresh    Refresh    `yaml:"Refresh"`
}

// envOverrides 允许通过环境变量（或 .env 文件）覆盖部分配置
type envOverrides struct {
	APIBaseURL   string `env:"VIDSUMMIFY_API_BASE_URL"`
	LogLevel     string `env:"VIDSUMMIFY_LOG_LEVEL"`
	SpeechBinary string `env:"VIDSUMMIFY_SPEECH_BINARY"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}

	// 加载 .env（不存在时忽略）
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("加载 .env 失败: %w", err)
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Parse 解析 YAML 配置内容，不做校验
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("解析环境变量失败: %w", err)
	}
	if o.APIBaseURL != "" {
		c.API.BaseURL = o.APIBaseURL
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.SpeechBinary != "" {
		c.Speech.Binary = o.SpeechBinary
	}
	return nil
}

// Validate 验证配置的有效性，并为缺省项填充默认值
func (c *Config) Validate() error {
	// 验证 API
	if c.API.BaseURL == "" {
		return fmt.Errorf("API.BaseURL 不能为空")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("API.BaseURL 必须以 http:// 或 https:// 开头")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("API.Timeout 必须 >= 0")
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 120
	}

	// 验证 Sock5Proxy
	if c.Sock5Proxy.Enable {
		if c.Sock5Proxy.Host == "" {
			return fmt.Errorf("Sock5Proxy.Host 不能为空（当 Enable 为 true 时）")
		}
		if c.Sock5Proxy.Port <= 0 {
			return fmt.Errorf("Sock5Proxy.Port 必须大于 0")
		}
	}

	// 验证 Speech
	if c.Speech.Binary == "" {
		c.Speech.Binary = "espeak-ng"
	}
	if c.Speech.Rate == 0 {
		c.Speech.Rate = 1.0
	}
	if c.Speech.Pitch == 0 {
		c.Speech.Pitch = 1.0
	}
	if c.Speech.Rate < 0.5 || c.Speech.Rate > 2.0 {
		return fmt.Errorf("Speech.Rate 必须在 0.5 ~ 2.0 之间")
	}
	if c.Speech.Pitch < 0.5 || c.Speech.Pitch > 2.0 {
		return fmt.Errorf("Speech.Pitch 必须在 0.5 ~ 2.0 之间")
	}

	// 验证 Storage
	if c.Storage.Path == "" {
		c.Storage.Path = "data/vidsummify.db"
	}

	// 验证 Log
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
	if c.Log.File == "" {
		c.Log.File = "vid-summify.log"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("Log.Level 必须是 'debug', 'info', 'warn' 或 'error'")
	}
	if c.Log.MaxSize <= 0 {
		c.Log.MaxSize = 10
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 10
	}
	if c.Log.MaxAge <= 0 {
		c.Log.MaxAge = 30
	}

	// 验证 Refresh
	if c.Refresh.Cron == "" {
		c.Refresh.Cron = "*/5 * * * *"
	}

	return nil
}
