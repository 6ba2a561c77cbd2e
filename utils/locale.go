package utils

// Поддерживаемые языки сайта.
const (
	LangEt = "et"
	LangRu = "ru"
)

// NormalizeLang приводит языковой тег к "et"|"ru". Всё, что не "ru", — эстонский.
func NormalizeLang(lang string) string {
	if lang == LangRu {
		return LangRu
	}
	return LangEt
}

// ResolveLocalized возвращает значение двуязычного поля для запрошенного языка.
// Цепочка фолбэков фиксирована: запрошенный язык → другой язык → legacy-поле
// без суффикса → пустая строка.
func ResolveLocalized(lang, et, ru, legacy string) string {
	first, second := et, ru
	if NormalizeLang(lang) == LangRu {
		first, second = ru, et
	}
	if first != "" {
		return first
	}
	if second != "" {
		return second
	}
	return legacy
}
