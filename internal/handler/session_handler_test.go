package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/dto/respond"
	"elearn_comm_server/pkg/errorx"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = InitTrans("zh")
}

// stubSessionService 固定返回值的会话服务桩
type stubSessionService struct {
	createErr   error
	validateErr error
}

func (s *stubSessionService) CreateSession(req request.CreateSessionRequest, ip, userAgent string) (*respond.CreateSessionRespond, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &respond.CreateSessionRespond{
		SessionId:    "S1",
		UserId:       req.UserId,
		AccessToken:  "at",
		RefreshToken: "rt",
	}, nil
}

func (s *stubSessionService) ValidateSession(sessionId string) (*respond.ValidateSessionRespond, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return &respond.ValidateSessionRespond{UserId: "U1"}, nil
}

func (s *stubSessionService) RevokeSession(sessionId string) error { return nil }

func (s *stubSessionService) SweepExpired() (int64, error) { return 0, nil }

func newTestEngine(stub *stubSessionService) *gin.Engine {
	engine := gin.New()
	h := NewSessionHandler(stub)
	engine.POST("/session/create", h.CreateSession)
	engine.GET("/session/validate", h.ValidateSession)
	engine.POST("/session/revoke", h.RevokeSession)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *ResponseData {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var rsp ResponseData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rsp))
	return &rsp
}

func TestCreateSessionHandlerSuccess(t *testing.T) {
	engine := newTestEngine(&stubSessionService{})

	rsp := doRequest(t, engine, http.MethodPost, "/session/create", `{"user_id":"U1"}`)
	assert.Equal(t, errorx.CodeSuccess, rsp.Code)

	data, ok := rsp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "S1", data["session_id"])
	assert.Equal(t, "U1", data["user_id"])
}

func TestCreateSessionHandlerMissingUserId(t *testing.T) {
	engine := newTestEngine(&stubSessionService{})

	rsp := doRequest(t, engine, http.MethodPost, "/session/create", `{}`)
	assert.Equal(t, errorx.CodeInvalidParam, rsp.Code)
}

func TestCreateSessionHandlerBadJSON(t *testing.T) {
	engine := newTestEngine(&stubSessionService{})

	rsp := doRequest(t, engine, http.MethodPost, "/session/create", `{not-json`)
	assert.Equal(t, errorx.CodeInvalidParam, rsp.Code)
}

func TestValidateSessionHandlerBusinessError(t *testing.T) {
	engine := newTestEngine(&stubSessionService{
		validateErr: errorx.New(errorx.CodeExpired, "会话已过期"),
	})

	rsp := doRequest(t, engine, http.MethodGet, "/session/validate?session_id=S1", "")
	assert.Equal(t, errorx.CodeExpired, rsp.Code)
	assert.Equal(t, "会话已过期", rsp.Msg)
}

func TestValidateSessionHandlerMissingParam(t *testing.T) {
	engine := newTestEngine(&stubSessionService{})

	rsp := doRequest(t, engine, http.MethodGet, "/session/validate", "")
	assert.Equal(t, errorx.CodeInvalidParam, rsp.Code)
}

func TestRevokeSessionHandlerSuccess(t *testing.T) {
	engine := newTestEngine(&stubSessionService{})

	rsp := doRequest(t, engine, http.MethodPost, "/session/revoke", `{"session_id":"S1"}`)
	assert.Equal(t, errorx.CodeSuccess, rsp.Code)
}
