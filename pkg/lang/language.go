package lang

// Language is an output language code for generated changelogs
type Language string

const (
	English            Language = "en"
	ChineseSimplified  Language = "zh"
	ChineseTraditional Language = "zh-tw"
	Japanese           Language = "ja"
	Korean             Language = "ko"
)

var displayNames = map[Language]string{
	English:            "English",
	ChineseSimplified:  "中文（简体）",
	ChineseTraditional: "中文（繁體）",
	Japanese:           "日本語",
	Korean:             "한국어",
}

// String returns the language code
func (l Language) String() string {
	return string(l)
}

// IsValid reports whether l is a supported language code
func (l Language) IsValid() bool {
	_, ok := displayNames[l]
	return ok
}

// DisplayName returns the human-readable name of the language, or the raw
// code for anything unsupported
func (l Language) DisplayName() string {
	if name, ok := displayNames[l]; ok {
		return name
	}
	return string(l)
}

// ParseLanguage maps a string to a Language, falling back to English for
// anything unsupported
func ParseLanguage(s string) Language {
	if l := Language(s); l.IsValid() {
		return l
	}
	return English
}
