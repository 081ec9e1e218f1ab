package hangul

import "testing"

func TestChosung(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full word", "유니시티", "ㅇㄴㅅㅌ"},
		{"mixed hangul and digits", "유니시티 1단지", "ㅇㄴㅅㅌ 1ㄷㅈ"},
		{"already jamo passes through", "ㅇㄴㅅㅌ", "ㅇㄴㅅㅌ"},
		{"latin passes through", "Hillstate", "Hillstate"},
		{"empty", "", ""},
		{"tense consonant", "빨강", "ㅃㄱ"},
		{"first syllable of block", "가", "ㄱ"},
		{"last syllable of block", "힣", "ㅎ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chosung(tt.input); got != tt.want {
				t.Errorf("Chosung(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsSyllable(t *testing.T) {
	if !IsSyllable('가') || !IsSyllable('힣') {
		t.Error("Expected block boundaries to be syllables")
	}
	if IsSyllable('ㄱ') {
		t.Error("Compatibility jamo is not a composed syllable")
	}
	if IsSyllable('A') || IsSyllable('1') {
		t.Error("Latin and digits are not syllables")
	}
}
