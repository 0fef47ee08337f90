package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeParticipantsOrderIndependent(t *testing.T) {
	json1, key1 := EncodeParticipants([]string{"U1", "U2", "U3"})
	json2, key2 := EncodeParticipants([]string{"U3", "U1", "U2"})

	assert.Equal(t, key1, key2)
	assert.Equal(t, json1, json2)

	_, other := EncodeParticipants([]string{"U1", "U2"})
	assert.NotEqual(t, key1, other)
}

func TestEncodeParticipantsDelimiterSafe(t *testing.T) {
	// 成员 id 含分隔符时不同成员集不能得到相同摘要
	_, key1 := EncodeParticipants([]string{"a,b"})
	_, key2 := EncodeParticipants([]string{"a", "b"})

	assert.NotEqual(t, key1, key2)
}

func TestHasParticipant(t *testing.T) {
	jsonStr, key := EncodeParticipants([]string{"U1", "U2"})
	chat := Chat{Participants: jsonStr, ParticipantsKey: key}

	assert.True(t, chat.HasParticipant("U1"))
	assert.True(t, chat.HasParticipant("U2"))
	assert.False(t, chat.HasParticipant("U3"))
	assert.ElementsMatch(t, []string{"U1", "U2"}, chat.ParticipantList())
}
