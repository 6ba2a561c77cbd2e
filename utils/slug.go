package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// транслитерация эстонских и русских букв в латиницу для слагов
var slugRepl = map[rune]string{
	'õ': "o", 'ä': "a", 'ö': "o", 'ü': "u", 'š': "s", 'ž': "z",
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch",
	'ш': "sh", 'щ': "sh", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

func transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
			continue
		}
		if m, ok := slugRepl[r]; ok {
			b.WriteString(m)
			continue
		}
		if unicode.IsSpace(r) {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// GenerateSlug строит слаг из заголовка: нижний регистр, транслитерация,
// не-буквенно-цифровые символы в дефисы, без дефисов по краям.
func GenerateSlug(title string) string {
	base := transliterate(title)
	base = nonAlnum.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		return "post"
	}
	return base
}
