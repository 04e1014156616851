package locale

// Text 是一段同时提供中英文的文案
type Text struct {
	Zh string
	En string
}

// In 返回 language 对应的文案，默认中文；所选语言为空时使用另一种
func (t Text) In(language string) string {
	primary, fallback := t.Zh, t.En
	if NormalizeLanguage(language) == LanguageEnglish {
		primary, fallback = t.En, t.Zh
	}
	if primary == "" {
		return fallback
	}
	return primary
}
