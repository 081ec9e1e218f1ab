// Package hangul provides the small amount of Korean text handling the
// search engine needs: reducing Hangul syllables to their leading
// consonant so that consonant-only shorthand queries (초성 검색) can
// match full words.
package hangul

// The 19 lead consonants (초성) of the Hangul syllable block, indexed by
// (codepoint - 0xAC00) / 588.
var chosungTable = []rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

const (
	syllableBase  = 0xAC00 // 가
	syllableCount = 11172  // 가..힣
	perChosung    = 588    // 21 medials x 28 finals
)

// Chosung returns s with every Hangul syllable replaced by its leading
// consonant. All other runes pass through unchanged.
func Chosung(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if idx := r - syllableBase; idx >= 0 && idx < syllableCount {
			out = append(out, chosungTable[idx/perChosung])
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// IsSyllable reports whether r falls inside the Hangul syllable block.
func IsSyllable(r rune) bool {
	return r >= syllableBase && r < syllableBase+syllableCount
}
