package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/testutil"
	"elearn_comm_server/pkg/enum/auth/auth_action_enum"
	"elearn_comm_server/pkg/errorx"
	"elearn_comm_server/pkg/util/jwt"
)

func init() {
	jwt.Init("test-secret-key-for-session-tests", 30, 168)
}

func newTestService() (*sessionService, *testutil.FakeAuthLogRepository) {
	repos := testutil.NewRepositories()
	return NewSessionService(repos, nil), repos.AuthLog.(*testutil.FakeAuthLogRepository)
}

func intPtr(v int) *int { return &v }

func TestCreateAndValidateSession(t *testing.T) {
	svc, authLog := newTestService()

	created, err := svc.CreateSession(request.CreateSessionRequest{UserId: "U1"}, "1.2.3.4", "test-agent")
	require.NoError(t, err)
	assert.NotEmpty(t, created.SessionId)
	assert.NotEmpty(t, created.AccessToken)
	assert.NotEmpty(t, created.RefreshToken)
	assert.Equal(t, "U1", created.UserId)

	validated, err := svc.ValidateSession(created.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "U1", validated.UserId)

	// 创建会话留下一条 LOGIN 审计日志
	require.Len(t, authLog.Logs, 1)
	assert.Equal(t, auth_action_enum.LOGIN, authLog.Logs[0].Action)
	assert.True(t, authLog.Logs[0].Success)
}

func TestValidateSessionNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ValidateSession("no-such-session")
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestZeroTTLSessionIsExpired(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateSession(request.CreateSessionRequest{
		UserId:     "U1",
		TTLMinutes: intPtr(0),
	}, "", "")
	require.NoError(t, err)

	// ttl 为 0 的会话创建即过期，且不会因重复校验恢复
	_, err = svc.ValidateSession(created.SessionId)
	assert.Equal(t, errorx.CodeExpired, errorx.GetCode(err))
	_, err = svc.ValidateSession(created.SessionId)
	assert.Equal(t, errorx.CodeExpired, errorx.GetCode(err))
}

func TestRevokeSessionIdempotent(t *testing.T) {
	svc, authLog := newTestService()

	created, err := svc.CreateSession(request.CreateSessionRequest{UserId: "U1"}, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeSession(created.SessionId))

	// 撤销后会话视为不存在
	_, err = svc.ValidateSession(created.SessionId)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))

	// 重复撤销与撤销不存在的会话均成功
	require.NoError(t, svc.RevokeSession(created.SessionId))
	require.NoError(t, svc.RevokeSession("no-such-session"))

	// LOGIN + 首次 LOGOUT
	require.GreaterOrEqual(t, len(authLog.Logs), 2)
	assert.Equal(t, auth_action_enum.LOGOUT, authLog.Logs[1].Action)
}

func TestSweepExpired(t *testing.T) {
	svc, _ := newTestService()

	expired, err := svc.CreateSession(request.CreateSessionRequest{UserId: "U1", TTLMinutes: intPtr(0)}, "", "")
	require.NoError(t, err)
	alive, err := svc.CreateSession(request.CreateSessionRequest{UserId: "U2", TTLMinutes: intPtr(60)}, "", "")
	require.NoError(t, err)

	n, err := svc.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.ValidateSession(expired.SessionId)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
	_, err = svc.ValidateSession(alive.SessionId)
	assert.NoError(t, err)
}

func TestMultipleSessionsPerUser(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.CreateSession(request.CreateSessionRequest{UserId: "U1"}, "", "")
	require.NoError(t, err)
	second, err := svc.CreateSession(request.CreateSessionRequest{UserId: "U1"}, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionId, second.SessionId)

	// 撤销一个不影响另一个
	require.NoError(t, svc.RevokeSession(first.SessionId))
	_, err = svc.ValidateSession(second.SessionId)
	assert.NoError(t, err)
}
