package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGroupTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"katakana dot replaced", "挥手・摆手", "挥手·摆手"},
		{"question mark placeholder replaced", "挥手?摆手", "挥手·摆手"},
		{"nbsp collapsed", "挥手 摆手", "挥手 摆手"},
		{"trimmed", "  挥手  ", "挥手"},
		{"already canonical", "挥手·摆手", "挥手·摆手"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeGroupTitle(tt.input))
		})
	}
}

func TestNormalizeGroupTitleIdempotent(t *testing.T) {
	inputs := []string{"挥手・摆手", "抬?手", " 前进 后退 ", "走路"}
	for _, in := range inputs {
		once := NormalizeGroupTitle(in)
		assert.Equal(t, once, NormalizeGroupTitle(once), "input %q", in)
	}
}

func TestNormalizeEntry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain entry", "抬起手臂", "抬起手臂"},
		{"trailing page number stripped", "抬起手臂 3", "抬起手臂"},
		{"trailing page number with extra spaces", "抬起手臂  12  ", "抬起手臂"},
		{"decorative stars discarded", "*** 分隔 ***", ""},
		{"marker line discarded", "==Screenshot for page 5==", ""},
		{"generic marker line discarded", "==anything==", ""},
		{"bare number discarded", "42", ""},
		{"blank discarded", "   ", ""},
		{"digits inside text kept", "做3次深呼吸", "做3次深呼吸"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEntry(tt.input))
		})
	}
}
