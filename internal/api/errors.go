package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrNoSession = errors.New("not signed in")
	ErrNotFound  = errors.New("summary not found")
)

// Error 远端返回的错误，Error() 原样返回服务端提供的消息
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newError(status int, data []byte) *Error {
	var body errorBody
	_ = json.Unmarshal(data, &body)

	msg := strings.TrimSpace(body.Error)
	if msg == "" {
		msg = strings.TrimSpace(body.Message)
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = "unexpected response"
	}
	return &Error{StatusCode: status, Message: msg}
}
