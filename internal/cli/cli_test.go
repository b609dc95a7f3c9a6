package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fachebot/vid-summify/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService 内存版摘要服务
type fakeService struct {
	mu       sync.Mutex
	seq      int
	items    map[string]model.Summary
	requests []string
}

func (s *fakeService) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r.Method+" "+r.URL.Path)

	id := strings.TrimPrefix(r.URL.Path, "/summaries")
	id = strings.TrimPrefix(id, "/")

	switch {
	case r.Method == http.MethodGet && id == "":
		list := make([]model.Summary, 0, len(s.items))
		for _, item := range s.items {
			list = append(list, item)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"summaries": list})

	case r.Method == http.MethodGet:
		item, ok := s.items[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Summary not found"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"summary": item})

	case r.Method == http.MethodPost, r.Method == http.MethodPut:
		var spec model.SummarySpec
		_ = json.NewDecoder(r.Body).Decode(&spec)
		if r.Method == http.MethodPost {
			s.seq++
			id = fmt.Sprintf("s%d", s.seq)
		}
		title := "Video " + id
		item := model.Summary{
			ID:        id,
			VideoURL:  spec.VideoURL,
			Title:     &title,
			Type:      spec.Type,
			Length:    spec.Length,
			Text:      "## Key Points\n\n- first",
			CreatedAt: time.Date(2025, 1, s.seq, 0, 0, 0, 0, time.UTC),
		}
		if old, ok := s.items[id]; ok {
			item.CreatedAt = old.CreatedAt
		}
		s.items[id] = item
		_ = json.NewEncoder(w).Encode(map[string]any{"summary": item})

	case r.Method == http.MethodDelete:
		delete(s.items, id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func setup(t *testing.T) (string, *fakeService) {
	t.Helper()
	svc := &fakeService{items: make(map[string]model.Summary)}
	srv := httptest.NewServer(svc)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := fmt.Sprintf(`API:
  BaseURL: %s
Storage:
  Path: %s
Log:
  Dir: %s
Speech:
  Binary: /nonexistent/espeak-ng
`, srv.URL, filepath.Join(dir, "data", "test.db"), filepath.Join(dir, "logs"))

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path, svc
}

func run(t *testing.T, configFile string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"-f", configFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func token(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-1",
		"email": "a@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestCommands_RequireSession(t *testing.T) {
	cfg, _ := setup(t)

	out, err := run(t, cfg, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")

	_, err = run(t, cfg, "list")
	assert.ErrorContains(t, err, "未登录")
}

func TestCommands_Lifecycle(t *testing.T) {
	cfg, svc := setup(t)

	out, err := run(t, cfg, "login", "--token", token(t))
	require.NoError(t, err)
	assert.Contains(t, out, "a@example.com")

	out, err = run(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No summaries yet")

	out, err = run(t, cfg, "create", "https://youtu.be/abc12345678", "--type", "keypoint", "--length", "short")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary generated successfully")
	assert.Contains(t, out, "Key Point")

	_, err = run(t, cfg, "create", "https://vimeo.com/1")
	assert.ErrorIs(t, err, model.ErrInvalidVideoURL)

	out, err = run(t, cfg, "edit", "s1", "--length", "long")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary updated successfully")
	assert.Equal(t, model.SummaryLengthLong, svc.items["s1"].Length)
	assert.Equal(t, model.SummaryTypeKeyPoint, svc.items["s1"].Type)

	out, err = run(t, cfg, "list", "--length", "long")
	require.NoError(t, err)
	assert.Contains(t, out, "Video s1")

	out, err = run(t, cfg, "list", "--search", "nothing-here")
	require.NoError(t, err)
	assert.Contains(t, out, "No summaries match your filters")

	out, err = run(t, cfg, "show", "s1", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Key Points\nfirst")

	out, err = run(t, cfg, "share", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, `Summary for "Video s1":`)
	assert.Contains(t, out, "Original Video: https://youtu.be/abc12345678")

	out, err = run(t, cfg, "delete", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Len(t, svc.items, 1)

	_, err = run(t, cfg, "delete", "s1", "--yes")
	require.NoError(t, err)
	assert.Empty(t, svc.items)

	_, err = run(t, cfg, "show", "s1")
	assert.ErrorContains(t, err, "Summary not found")

	out, err = run(t, cfg, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")
}

func TestEditCommand_LoadsCollectionFirst(t *testing.T) {
	cfg, svc := setup(t)

	_, err := run(t, cfg, "login", "--token", token(t))
	require.NoError(t, err)
	_, err = run(t, cfg, "create", "https://youtu.be/abc12345678")
	require.NoError(t, err)

	before := len(svc.Requests())
	out, err := run(t, cfg, "edit", "s1", "--type", "detailed")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary updated successfully")

	assert.Equal(t, []string{
		"GET /summaries",
		"GET /summaries/s1",
		"PUT /summaries/s1",
	}, svc.Requests()[before:])
	assert.Equal(t, model.SummaryTypeDetailed, svc.items["s1"].Type)
}

func TestTTSCommand(t *testing.T) {
	cfg, _ := setup(t)

	out, err := run(t, cfg, "tts", "--rate", "3", "--pitch", "0.75")
	require.NoError(t, err)
	assert.Contains(t, out, "Rate:  2.00x")
	assert.Contains(t, out, "Pitch: 0.75x")
	assert.Contains(t, out, "Voice: System Default")

	out, err = run(t, cfg, "tts")
	require.NoError(t, err)
	assert.Contains(t, out, "Rate:  2.00x")
}
