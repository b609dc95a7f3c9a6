package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fachebot/vid-summify/internal/config"
	"github.com/fachebot/vid-summify/internal/logger"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/google/uuid"
)

// TokenSource 提供当前会话的访问令牌
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client 远端摘要服务的 HTTP 客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func NewClient(cfg *config.API, transport *http.Transport, tokens TokenSource) *Client {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	}
	if transport != nil {
		httpClient.Transport = transport
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
	}
}

type summaryEnvelope struct {
	Summary model.Summary `json:"summary"`
}

type summariesEnvelope struct {
	Summaries []model.Summary `json:"summaries"`
}

// ListSummaries 获取当前用户的全部摘要
func (c *Client) ListSummaries(ctx context.Context) ([]model.Summary, error) {
	var resp summariesEnvelope
	if err := c.do(ctx, http.MethodGet, "/summaries", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Summaries == nil {
		return []model.Summary{}, nil
	}
	return resp.Summaries, nil
}

// GetSummary 获取单条摘要
func (c *Client) GetSummary(ctx context.Context, id string) (model.Summary, error) {
	var resp summaryEnvelope
	if err := c.do(ctx, http.MethodGet, "/summaries/"+url.PathEscape(id), nil, &resp); err != nil {
		return model.Summary{}, err
	}
	return resp.Summary, nil
}

// CreateSummary 提交视频生成新摘要
func (c *Client) CreateSummary(ctx context.Context, spec model.SummarySpec) (model.Summary, error) {
	var resp summaryEnvelope
	if err := c.do(ctx, http.MethodPost, "/summaries", spec, &resp); err != nil {
		return model.Summary{}, err
	}
	return resp.Summary, nil
}

// UpdateSummary 使用新参数重新生成摘要
func (c *Client) UpdateSummary(ctx context.Context, id string, spec model.SummarySpec) (model.Summary, error) {
	var resp summaryEnvelope
	if err := c.do(ctx, http.MethodPut, "/summaries/"+url.PathEscape(id), spec, &resp); err != nil {
		return model.Summary{}, err
	}
	return resp.Summary, nil
}

// DeleteSummary 删除摘要
func (c *Client) DeleteSummary(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/summaries/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求失败: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warnf("[API] %s %s 请求失败 (request_id=%s): %v", method, path, requestID, err)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}
	logger.Debugf("[API] %s %s -> %d (%s, request_id=%s)", method, path, resp.StatusCode, time.Since(start), requestID)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}
	return nil
}

// IsNotFound 判断错误是否为远端 404
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
