// units.go определяет закрытый словарь единиц романизации и статические
// наборы ограничений. Всё здесь — константы процесса: создаются при старте
// и никогда не изменяются.
package backtranslit

import "unicode/utf8"

// Unit — единица романизации: латинская буква либо кластер из одной–четырёх
// букв из фиксированного закрытого словаря. Epsilon и маркеры границ —
// полноправные члены того же типа, чтобы словарь единиц, выход токенизатора
// и ключи таблицы вероятностей разделяли одно представление.
type Unit string

const (
	// Epsilon обозначает позицию, где при прямой транслитерации могла
	// выпасть буква: мягкий знак между согласными либо в конце слова.
	Epsilon Unit = "ε"

	// Маркеры начала и конца слова для контекстных ключей.
	// Не пересекаются ни с одной реальной единицей.
	BoundaryStart Unit = "^"
	BoundaryEnd   Unit = "$"
)

// unitRenderings — упорядоченные кириллические варианты для каждой единицы,
// которую способен выдать токенизатор. Пустая строка у Epsilon означает
// «буква не выпадала».
var unitRenderings = map[Unit][]string{
	"a":    {"а"},
	"b":    {"б"},
	"ch":   {"ч"},
	"d":    {"д"},
	"e":    {"е", "э"},
	"f":    {"ф"},
	"g":    {"г"},
	"i":    {"и"},
	"k":    {"к"},
	"kh":   {"х"},
	"l":    {"л"},
	"m":    {"м"},
	"n":    {"н"},
	"o":    {"о"},
	"p":    {"п"},
	"r":    {"р"},
	"s":    {"с"},
	"sh":   {"ш"},
	"shch": {"щ", "шч"},
	"t":    {"т"},
	"ts":   {"ц", "тс", "тьс"},
	"u":    {"у"},
	"v":    {"в"},
	"y":    {"й", "ы", "ый", "ий"},
	"ya":   {"я", "ья", "ъя", "йа", "ьа"},
	"ye":   {"е", "ье", "йе", "ъе", "ые", "ьэ"},
	"yi":   {"ьи", "ыи", "йи", "ъи"},
	"yo":   {"ё", "ьё", "ъё", "йо", "ьо", "ыо"},
	"yu":   {"ю", "ью", "ъю", "йу", "ьу", "ыу"},
	"z":    {"з"},
	"zh":   {"ж"},
	Epsilon: {"", "ь"},
}

// singleRendering — единицы с единственным вариантом. Им нечему обучаться:
// их позиционный фактор всегда равен 1, и в таблицу они не записываются.
var singleRendering = func() map[Unit]bool {
	m := make(map[Unit]bool, len(unitRenderings))
	for u, rr := range unitRenderings {
		if len(rr) == 1 {
			m[u] = true
		}
	}
	return m
}()

// Мягкий знак между согласными исчезает при прямой транслитерации,
// поэтому при обратной его приходится вставлять обратно.
// silentLeft/silentRight задают, между какими парами согласных ь возможен,
// silentFinal — после каких согласных ь возможен в конце слова.
var (
	silentLeft = map[Unit]bool{
		"d": true, "z": true, "l": true, "m": true, "n": true,
		"r": true, "s": true, "t": true, "ch": true,
	}
	silentRight = map[Unit]bool{
		"b": true, "g": true, "k": true, "l": true, "m": true,
		"s": true, "v": true, "d": true, "zh": true, "z": true,
		"n": true, "p": true, "r": true, "t": true, "f": true,
		"kh": true, "ts": true, "ch": true, "sh": true, "shch": true,
	}
	silentFinal = map[Unit]bool{
		"b": true, "v": true, "d": true, "zh": true, "z": true,
		"l": true, "n": true, "p": true, "r": true, "s": true,
		"t": true, "f": true, "ch": true, "sh": true, "shch": true,
	}
)

const (
	cyrVowels     = "ёуеыаоэяию"
	cyrConsonants = "цкнгшщзхфвпрлджчсмтб"
)

func isCyrVowel(r rune) bool {
	for _, v := range cyrVowels {
		if r == v {
			return true
		}
	}
	return false
}

func isCyrConsonant(r rune) bool {
	for _, c := range cyrConsonants {
		if r == c {
			return true
		}
	}
	return false
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
