package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tailortalk/models"
	"tailortalk/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoAgent replies with a fixed string, or panics to exercise the
// transport's always-succeed policy.
type echoAgent struct {
	reply string
	panic bool
}

func (e *echoAgent) Run(_ context.Context, _ string) string {
	if e.panic {
		panic("agent blew up")
	}
	return e.reply
}

func newChatRouter(a *echoAgent) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.POST("/chat", NewChatHandler(a).HandleChat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, models.ChatResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandleChat_Success(t *testing.T) {
	r := newChatRouter(&echoAgent{reply: "🗓️ Here are some free times: Friday at 03:00 PM"})

	w, resp := postChat(t, r, `{"message":"what times are free on friday"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, resp.Response, "Friday at 03:00 PM")
}

func TestHandleChat_MalformedJSONStillReturns200(t *testing.T) {
	r := newChatRouter(&echoAgent{reply: "unused"})

	w, resp := postChat(t, r, `{"message":`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(resp.Response, "❌ Internal error:"), resp.Response)
}

func TestHandleChat_PanicIsCaughtAs200(t *testing.T) {
	r := newChatRouter(&echoAgent{panic: true})

	w, resp := postChat(t, r, `{"message":"hi"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, resp.Response, "❌ Internal error:")
	assert.Contains(t, resp.Response, "agent blew up")
}
