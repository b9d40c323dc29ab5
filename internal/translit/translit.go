// Package translit реализует прямую транслитерацию кириллицы в латиницу по
// схеме Википедии. Детерминированная чистая функция без обучаемого
// состояния: ядро вызывает её только при обучении, чтобы заново вывести
// латинскую форму каждого известного кириллического слова.
package translit

import "strings"

var base = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e",
	'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k",
	'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts",
	'ч': "ch", 'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

const vowels = "аеёиоуыэюя"

// Romanize транслитерирует одно кириллическое слово. Контекстные правила
// схемы: е -> ye в начале слова, после гласных и после ъ/ь; и -> yi после
// ъ/ь; окончания ий/ый -> y. Символы вне русского алфавита передаются
// без изменений.
func Romanize(word string) string {
	runes := []rune(strings.ToLower(word))
	var b strings.Builder

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// окончание ий/ый сворачивается в y
		if i == len(runes)-2 && (r == 'и' || r == 'ы') && runes[i+1] == 'й' {
			b.WriteString("y")
			break
		}

		switch r {
		case 'е':
			if i == 0 || isVowel(runes[i-1]) || runes[i-1] == 'ъ' || runes[i-1] == 'ь' {
				b.WriteString("ye")
			} else {
				b.WriteString("e")
			}
		case 'и':
			if i > 0 && (runes[i-1] == 'ъ' || runes[i-1] == 'ь') {
				b.WriteString("yi")
			} else {
				b.WriteString("i")
			}
		default:
			if s, ok := base[r]; ok {
				b.WriteString(s)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}
