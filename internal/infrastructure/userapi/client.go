// Package userapi 对接外部用户服务
// 本服务不管理用户资料，参与者合法性通过用户服务校验
package userapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"elearn_comm_server/internal/config"
	"elearn_comm_server/pkg/errorx"
)

// UserResolver 用户存在性校验接口
type UserResolver interface {
	// Exists 校验单个用户是否存在
	Exists(ctx context.Context, userId string) (bool, error)
	// Missing 返回给定用户中不存在的那些
	Missing(ctx context.Context, userIds []string) ([]string, error)
}

// HTTPResolver 调用用户服务 HTTP 接口的实现
type HTTPResolver struct {
	baseURL string
	client  *http.Client
}

// NewHTTPResolver 根据配置创建用户服务客户端
func NewHTTPResolver() *HTTPResolver {
	conf := config.GetConfig().UserAPIConfig
	timeout := time.Duration(conf.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPResolver{
		baseURL: conf.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Exists 校验单个用户是否存在
// 用户服务返回 200 视为存在，404 视为不存在，其余状态视为服务异常
func (r *HTTPResolver) Exists(ctx context.Context, userId string) (bool, error) {
	url := fmt.Sprintf("%s/api/users/%s", r.baseURL, userId)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, errorx.Wrapf(err, errorx.CodeServerBusy, "构造用户服务请求 userId=%s", userId)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false, errorx.Wrapf(err, errorx.CodeServerBusy, "请求用户服务 userId=%s", userId)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, errorx.Newf(errorx.CodeServerBusy, "用户服务异常 status=%d", resp.StatusCode)
	}
}

// Missing 返回给定用户中不存在的那些
func (r *HTTPResolver) Missing(ctx context.Context, userIds []string) ([]string, error) {
	var missing []string
	for _, id := range userIds {
		ok, err := r.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

var _ UserResolver = (*HTTPResolver)(nil)
