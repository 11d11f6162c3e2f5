package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altpoint/newscope/pkg/config"
	"github.com/altpoint/newscope/pkg/verify"
)

func TestParseUserID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"letters", "abc", nil},
		{"fraction", "12.5", nil},
		{"valid", "42", intPtr(42)},
		{"valid with spaces", " 42 ", intPtr(42)},
		{"trailing garbage", "42x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseUserID(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestGenerateUserName(t *testing.T) {
	name := GenerateUserName()
	assert.True(t, strings.HasPrefix(name, "User"), "name should start with 'User', got %q", name)
	assert.Greater(t, len(name), len("User"))
}

func TestAppState_PendingCounter(t *testing.T) {
	client, err := verify.NewFromConfig(config.APIConfig{})
	require.NoError(t, err)
	state := NewAppState(config.Default(), client)

	assert.False(t, state.IsBusy())

	// Два workflow'а в полете одновременно — допустимо
	state.RequestStarted()
	state.RequestStarted()
	assert.True(t, state.IsBusy())

	state.RequestFinished()
	assert.True(t, state.IsBusy())
	state.RequestFinished()
	assert.False(t, state.IsBusy())

	// Лишний Finished не уводит счетчик в минус
	state.RequestFinished()
	assert.False(t, state.IsBusy())
}

func intPtr(v int) *int { return &v }
