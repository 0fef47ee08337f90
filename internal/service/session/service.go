// Package session 实现认证会话业务逻辑
// 会话令牌是不透明的 uuid；过期判断一律使用校验时刻的 now
package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"elearn_comm_server/internal/config"
	"elearn_comm_server/internal/dao/mysql"
	myredis "elearn_comm_server/internal/dao/redis"
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/dto/respond"
	"elearn_comm_server/internal/model"
	"elearn_comm_server/pkg/aes"
	"elearn_comm_server/pkg/constants"
	"elearn_comm_server/pkg/enum/auth/auth_action_enum"
	"elearn_comm_server/pkg/errorx"
	"elearn_comm_server/pkg/util/jwt"
	"elearn_comm_server/pkg/util/random"
)

// sessionService 会话业务逻辑实现
type sessionService struct {
	repos *mysql.Repositories
	cache myredis.AsyncCacheService // 为 nil 时直接走数据库
}

// NewSessionService 构造函数，注入所有依赖
func NewSessionService(repos *mysql.Repositories, cacheService myredis.AsyncCacheService) *sessionService {
	return &sessionService{
		repos: repos,
		cache: cacheService,
	}
}

// sessionCacheKey 会话缓存键
func sessionCacheKey(sessionId string) string {
	return "auth_session_" + sessionId
}

// CreateSession 创建会话
// TTL 未指定时取配置默认值；显式传 0 创建立即过期的会话
func (s *sessionService) CreateSession(req request.CreateSessionRequest, ip, userAgent string) (*respond.CreateSessionRespond, error) {
	conf := config.GetConfig()
	now := time.Now()

	ttl := constants.DEFAULT_SESSION_TTL
	if conf.SessionConfig.DefaultTTLMinutes > 0 {
		ttl = time.Duration(conf.SessionConfig.DefaultTTLMinutes) * time.Minute
	}
	if req.TTLMinutes != nil {
		ttl = time.Duration(*req.TTLMinutes) * time.Minute
	}

	session := model.Session{
		Uuid:      uuid.NewString(),
		UserId:    req.UserId,
		ExpiresAt: now.Add(ttl),
		IpAddress: ip,
		UserAgent: userAgent,
	}

	// 客户端元信息按配置加密落库
	if conf.SessionConfig.EncryptClientMeta && conf.SessionConfig.EncryptionSecret != "" {
		encIp, err := aes.Encrypt(ip, conf.SessionConfig.EncryptionSecret)
		if err != nil {
			zap.L().Error("IP 加密失败", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		encUa, err := aes.Encrypt(userAgent, conf.SessionConfig.EncryptionSecret)
		if err != nil {
			zap.L().Error("UA 加密失败", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		session.IpAddress = encIp
		session.UserAgent = encUa
	}

	if err := s.repos.Session.Create(&session); err != nil {
		zap.L().Error("创建会话失败", zap.String("user_id", req.UserId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	s.appendAuthLog(req.UserId, session.Uuid, auth_action_enum.LOGIN, ip)

	accessToken, err := jwt.GenerateAccessToken(req.UserId)
	if err != nil {
		zap.L().Error("签发 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, _, err := jwt.GenerateRefreshToken(req.UserId)
	if err != nil {
		zap.L().Error("签发 Refresh Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	s.cacheSession(&session)

	zap.L().Info("会话创建成功",
		zap.String("user_id", req.UserId),
		zap.String("session_id", session.Uuid),
	)

	return &respond.CreateSessionRespond{
		SessionId:    session.Uuid,
		UserId:       session.UserId,
		ExpiresAt:    session.ExpiresAt.Format("2006-01-02 15:04:05"),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateSession 校验会话
// now 在本次调用开始时捕获，整个校验过程使用同一时刻
func (s *sessionService) ValidateSession(sessionId string) (*respond.ValidateSessionRespond, error) {
	now := time.Now()

	// 先查缓存，缓存值为 "expiresAtUnix|userId"
	if s.cache != nil {
		cached, err := s.cache.Get(context.Background(), sessionCacheKey(sessionId))
		if err == nil && cached != "" {
			// 解析失败或缓存中已过期时落到数据库兜底
			if rsp, ok := parseCachedSession(cached, now); ok {
				return rsp, nil
			}
		}
	}

	session, err := s.repos.Session.FindByUuid(sessionId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "会话不存在")
		}
		zap.L().Error("查询会话失败", zap.String("session_id", sessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if session.ExpiredAt(now) {
		return nil, errorx.New(errorx.CodeExpired, "会话已过期")
	}

	s.cacheSession(session)

	return &respond.ValidateSessionRespond{
		UserId:    session.UserId,
		ExpiresAt: session.ExpiresAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// RevokeSession 撤销会话，目标不存在时同样返回成功
func (s *sessionService) RevokeSession(sessionId string) error {
	session, err := s.repos.Session.FindByUuid(sessionId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil
		}
		zap.L().Error("查询会话失败", zap.String("session_id", sessionId), zap.Error(err))
		return errorx.ErrServerBusy
	}

	if err := s.repos.Session.DeleteByUuid(sessionId); err != nil {
		zap.L().Error("撤销会话失败", zap.String("session_id", sessionId), zap.Error(err))
		return errorx.ErrServerBusy
	}

	if s.cache != nil {
		s.cache.SubmitTask(func() {
			if err := s.cache.Delete(context.Background(), sessionCacheKey(sessionId)); err != nil {
				zap.L().Error("清除会话缓存失败", zap.Error(err))
			}
		})
	}

	s.appendAuthLog(session.UserId, sessionId, auth_action_enum.LOGOUT, "")

	zap.L().Info("会话已撤销",
		zap.String("user_id", session.UserId),
		zap.String("session_id", sessionId),
	)
	return nil
}

// SweepExpired 清理过期会话
func (s *sessionService) SweepExpired() (int64, error) {
	count, err := s.repos.Session.DeleteExpired(time.Now())
	if err != nil {
		zap.L().Error("清理过期会话失败", zap.Error(err))
		return 0, errorx.ErrServerBusy
	}
	if count > 0 {
		zap.L().Info("过期会话已清理", zap.Int64("count", count))
	}
	return count, nil
}

// cacheSession 异步写入会话缓存，TTL 不超过会话剩余有效期
func (s *sessionService) cacheSession(session *model.Session) {
	if s.cache == nil {
		return
	}
	remaining := time.Until(session.ExpiresAt)
	if remaining <= 0 {
		return
	}
	ttl := time.Minute * constants.REDIS_TIMEOUT
	if remaining < ttl {
		ttl = remaining
	}
	value := fmt.Sprintf("%d|%s", session.ExpiresAt.Unix(), session.UserId)
	key := sessionCacheKey(session.Uuid)
	s.cache.SubmitTask(func() {
		if err := s.cache.Set(context.Background(), key, value, ttl); err != nil {
			zap.L().Error("写入会话缓存失败", zap.Error(err))
		}
	})
}

// parseCachedSession 解析缓存值，过期或格式异常返回 ok=false
func parseCachedSession(cached string, now time.Time) (*respond.ValidateSessionRespond, bool) {
	parts := strings.SplitN(cached, "|", 2)
	if len(parts) != 2 {
		return nil, false
	}
	expUnix, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, false
	}
	expiresAt := time.Unix(expUnix, 0)
	if now.After(expiresAt) {
		return nil, false
	}
	return &respond.ValidateSessionRespond{
		UserId:    parts[1],
		ExpiresAt: expiresAt.Format("2006-01-02 15:04:05"),
	}, true
}

// appendAuthLog 追加认证审计日志，失败只记错误
func (s *sessionService) appendAuthLog(userId, sessionId, action, ip string) {
	entry := model.AuthLog{
		Uuid:      fmt.Sprintf("L%s", random.GetNowAndLenRandomString(11)),
		UserId:    userId,
		SessionId: sessionId,
		Action:    action,
		Success:   true,
		IpAddress: ip,
	}
	if err := s.repos.AuthLog.Create(&entry); err != nil {
		zap.L().Error("审计日志写入失败",
			zap.String("user_id", userId),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
