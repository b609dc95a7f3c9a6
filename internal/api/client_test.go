package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fachebot/vid-summify/internal/config"
	"github.com/fachebot/vid-summify/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken struct {
	token string
	err   error
}

func (s staticToken) AccessToken(ctx context.Context) (string, error) {
	return s.token, s.err
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.API{BaseURL: srv.URL + "/", Timeout: 5}, nil, staticToken{token: "tok"})
}

const summaryJSON = `{"id":"s1","video_url":"https://youtu.be/abc12345678","video_title":"标题","summary_type":"Key Point","summary_length":"Short","summary_text":"# 要点","created_at":"2025-02-01T10:00:00Z"}`

func TestListSummaries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/summaries", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"summaries":[` + summaryJSON + `]}`))
	})

	got, err := client.ListSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, model.SummaryTypeKeyPoint, got[0].Type)
	assert.Equal(t, model.SummaryLengthShort, got[0].Length)
	require.NotNil(t, got[0].Title)
	assert.Equal(t, "标题", *got[0].Title)
	assert.Nil(t, got[0].ThumbnailURL)
	assert.Equal(t, 2025, got[0].CreatedAt.Year())
}

func TestListSummaries_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	got, err := client.ListSummaries(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreateSummary_SendsSpec(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://youtu.be/abc12345678", body["videoUrl"])
		assert.Equal(t, "Brief", body["summaryType"])
		assert.Equal(t, "Short", body["summaryLength"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"summary":` + summaryJSON + `}`))
	})

	got, err := client.CreateSummary(context.Background(), model.SummarySpec{
		VideoURL: "https://youtu.be/abc12345678",
		Type:     model.SummaryTypeBrief,
		Length:   model.SummaryLengthShort,
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
}

func TestUpdateAndDelete_Paths(t *testing.T) {
	var seen []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`{"summary":` + summaryJSON + `}`))
	})

	_, err := client.UpdateSummary(context.Background(), "s1", model.SummarySpec{})
	require.NoError(t, err)
	require.NoError(t, client.DeleteSummary(context.Background(), "s1"))
	_, err = client.GetSummary(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, []string{"PUT /summaries/s1", "DELETE /summaries/s1", "GET /summaries/s1"}, seen)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"error 字段", http.StatusBadRequest, `{"error":"Invalid YouTube URL"}`, "Invalid YouTube URL"},
		{"message 字段", http.StatusUnauthorized, `{"message":"JWT expired"}`, "JWT expired"},
		{"无响应体", http.StatusInternalServerError, ``, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := client.ListSummaries(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Summary not found"}`))
	})
	_, err := client.GetSummary(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Summary not found", err.Error())
}

func TestNoSession(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer srv.Close()

	client := NewClient(&config.API{BaseURL: srv.URL, Timeout: 5}, nil, staticToken{err: ErrNoSession})
	_, err := client.ListSummaries(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, called)
}

func TestNewTransport(t *testing.T) {
	tr, err := NewTransport(&config.Sock5Proxy{})
	require.NoError(t, err)
	assert.Nil(t, tr)

	tr, err = NewTransport(&config.Sock5Proxy{Enable: true, Host: "127.0.0.1", Port: 1080})
	require.NoError(t, err)
	assert.NotNil(t, tr)
}
