package saved

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elearn_comm_server/internal/dao/mysql"
	"elearn_comm_server/internal/dto/request"
	"elearn_comm_server/internal/model"
	"elearn_comm_server/internal/testutil"
	"elearn_comm_server/pkg/enum/saved/saved_target_enum"
	"elearn_comm_server/pkg/errorx"
)

func newTestService(t *testing.T) (*savedService, *mysql.Repositories) {
	t.Helper()
	repos := testutil.NewRepositories()

	// 预置一个房间和一个讨论帖作为收藏目标
	jsonStr, key := model.EncodeParticipants([]string{"U1", "U2"})
	require.NoError(t, repos.Chat.Create(&model.Chat{
		Uuid:            "C_target",
		Participants:    jsonStr,
		ParticipantsKey: key,
	}))
	require.NoError(t, repos.Forum.CreateThread(&model.ForumThread{
		Uuid:      "F_target",
		CourseId:  "K1",
		CreatedBy: "U2",
		Title:     "讨论帖",
	}))

	return NewSavedService(repos), repos
}

func TestSaveChatTarget(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.Save("U1", request.SaveConversationRequest{ChatId: "C_target"})
	require.NoError(t, err)
	assert.Equal(t, saved_target_enum.CHAT, saved.TargetType)
	assert.Equal(t, "C_target", saved.TargetId)
	assert.NotEmpty(t, saved.SavedId)
}

func TestSaveThreadTarget(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.Save("U1", request.SaveConversationRequest{ThreadId: "F_target"})
	require.NoError(t, err)
	assert.Equal(t, saved_target_enum.FORUM_THREAD, saved.TargetType)
	assert.Equal(t, "F_target", saved.TargetId)
}

func TestSaveExactlyOneTarget(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Save("U1", request.SaveConversationRequest{})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	_, err = svc.Save("U1", request.SaveConversationRequest{ChatId: "C_target", ThreadId: "F_target"})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestSaveMissingTarget(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Save("U1", request.SaveConversationRequest{ChatId: "C_missing"})
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestSaveDuplicatesAllowed(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Save("U1", request.SaveConversationRequest{ChatId: "C_target"})
	require.NoError(t, err)
	second, err := svc.Save("U1", request.SaveConversationRequest{ChatId: "C_target"})
	require.NoError(t, err)

	// 同一目标重复收藏产生独立条目
	assert.NotEqual(t, first.SavedId, second.SavedId)

	list, err := svc.GetList("U1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUpdateRetargets(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.Save("U1", request.SaveConversationRequest{ChatId: "C_target"})
	require.NoError(t, err)

	updated, err := svc.Update("U1", request.UpdateSavedRequest{
		SavedId:  saved.SavedId,
		ThreadId: "F_target",
	})
	require.NoError(t, err)
	assert.Equal(t, saved_target_enum.FORUM_THREAD, updated.TargetType)
	assert.Equal(t, "F_target", updated.TargetId)
}

func TestUpdateRefreshesSavedAt(t *testing.T) {
	svc, repos := newTestService(t)

	saved, err := svc.Save("U1", request.SaveConversationRequest{ChatId: "C_target"})
	require.NoError(t, err)

	// 回拨收藏时间，确认更新后时间前移
	record, err := repos.Saved.FindByUuid(saved.SavedId)
	require.NoError(t, err)
	record.SavedAt = record.SavedAt.Add(-time.Hour)
	require.NoError(t, repos.Saved.Update(record))

	updated, err := svc.Update("U1", request.UpdateSavedRequest{SavedId: saved.SavedId})
	require.NoError(t, err)

	after, err := repos.Saved.FindByUuid(saved.SavedId)
	require.NoError(t, err)
	assert.True(t, after.SavedAt.After(record.SavedAt))
	assert.Equal(t, saved_target_enum.CHAT, updated.TargetType)
}

func TestUpdateOwnerOnly(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.Save("U1", request.SaveConversationRequest{ChatId: "C_target"})
	require.NoError(t, err)

	_, err = svc.Update("U2", request.UpdateSavedRequest{SavedId: saved.SavedId})
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	err = svc.Delete("U2", request.DeleteSavedRequest{SavedId: saved.SavedId})
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestDeleteSaved(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.Save("U1", request.SaveConversationRequest{ChatId: "C_target"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete("U1", request.DeleteSavedRequest{SavedId: saved.SavedId}))

	list, err := svc.GetList("U1")
	require.NoError(t, err)
	assert.Empty(t, list)

	// 已删除的收藏再删报不存在
	err = svc.Delete("U1", request.DeleteSavedRequest{SavedId: saved.SavedId})
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestGetListNewestFirst(t *testing.T) {
	svc, repos := newTestService(t)

	first, err := svc.Save("U1", request.SaveConversationRequest{ChatId: "C_target"})
	require.NoError(t, err)
	second, err := svc.Save("U1", request.SaveConversationRequest{ThreadId: "F_target"})
	require.NoError(t, err)

	// 拉开收藏时间差
	record, err := repos.Saved.FindByUuid(first.SavedId)
	require.NoError(t, err)
	record.SavedAt = record.SavedAt.Add(-time.Minute)
	require.NoError(t, repos.Saved.Update(record))

	list, err := svc.GetList("U1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.SavedId, list[0].SavedId)
	assert.Equal(t, first.SavedId, list[1].SavedId)
}
