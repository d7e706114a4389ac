package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestDecodeEnvelope_Success(t *testing.T) {
	raw := []byte(`{"success": true, "tasks": [{"id": "T-1", "title": "one", "status": "TODO"}], "total": 1}`)

	var out struct {
		Tasks []*domain.Task `json:"tasks"`
		Total int            `json:"total"`
	}
	require.NoError(t, decodeEnvelope("list", raw, &out))
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "T-1", out.Tasks[0].ID)
	assert.Equal(t, domain.StatusTodo, out.Tasks[0].Status)
	assert.Equal(t, 1, out.Total)
}

func TestDecodeEnvelope_SuccessWithNilOut(t *testing.T) {
	assert.NoError(t, decodeEnvelope("delete", []byte(`{"success": true}`), nil))
}

func TestDecodeEnvelope_FailureStringError(t *testing.T) {
	raw := []byte(`{"success": false, "error": "task not found: T-9"}`)

	err := decodeEnvelope("update_status", raw, nil)
	var re *domain.RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "update_status", re.Intent)
	// Message passes through verbatim.
	assert.Equal(t, "task not found: T-9", re.Message)
}

func TestDecodeEnvelope_FailureObjectError(t *testing.T) {
	// The bridge layer wraps process failures as {code, message} objects.
	raw := []byte(`{"success": false, "error": {"code": "BRIDGE_ERROR", "message": "backend exited"}}`)

	err := decodeEnvelope("undo", raw, nil)
	var re *domain.RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "backend exited", re.Message)
}

func TestDecodeEnvelope_Malformed(t *testing.T) {
	err := decodeEnvelope("list", []byte(`not json`), nil)
	require.Error(t, err)
	assert.False(t, domain.IsRemote(err))
	assert.False(t, errors.Is(err, domain.ErrTaskNotFound))
}

func TestErrorField_EmptyMessageFallback(t *testing.T) {
	err := decodeEnvelope("redo", []byte(`{"success": false}`), nil)
	var re *domain.RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "redo failed", re.Error())
}
