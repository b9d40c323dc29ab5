package backtranslit

import "strings"

// Tokenize разбивает латинское слово на единицы романизации, слева направо,
// по принципу «самое длинное совпадение первым». Порядок альтернатив
// зафиксирован и эквивалентен грамматике
//
//	shch | [cskz]h | y[aoeui] | y | [aoeiu] | ts(?!h) | [skz](?!h) | [ngfvprldmtb]
//
// Оговорка «ts и [skz] только не перед h» — ручная развязка неоднозначности:
// без неё "tsh" разобралось бы как ts+h и проглотило диграф sh. Менять её
// порядок нельзя, набор диграфов подогнан под неё.
//
// Регистр не учитывается. Символы вне ожидаемого алфавита пропускаются:
// на выходе получается частичная последовательность, не ошибка.
func Tokenize(word string) []Unit {
	runes := []rune(strings.ToLower(word))
	units := make([]Unit, 0, len(runes))

	at := func(i int) rune {
		if i < 0 || i >= len(runes) {
			return 0
		}
		return runes[i]
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == 's' && at(i+1) == 'h' && at(i+2) == 'c' && at(i+3) == 'h':
			units = append(units, "shch")
			i += 4
		case (r == 'c' || r == 's' || r == 'k' || r == 'z') && at(i+1) == 'h':
			units = append(units, Unit(string(r)+"h"))
			i += 2
		case r == 'y' && strings.ContainsRune("aoeui", at(i+1)):
			units = append(units, Unit("y"+string(at(i+1))))
			i += 2
		case r == 'y':
			units = append(units, "y")
			i++
		case strings.ContainsRune("aoeiu", r):
			units = append(units, Unit(r))
			i++
		case r == 't' && at(i+1) == 's' && at(i+2) != 'h':
			units = append(units, "ts")
			i += 2
		case (r == 's' || r == 'k' || r == 'z') && at(i+1) != 'h':
			units = append(units, Unit(r))
			i++
		case strings.ContainsRune("ngfvprldmtb", r):
			units = append(units, Unit(r))
			i++
		default:
			// символ вне грамматики — пропускаем
			i++
		}
	}
	return units
}

// insertSilent вставляет Epsilon в позиции, где фонотактически возможен
// выпавший мягкий знак: между каждой соседней парой (silentLeft, silentRight)
// и после последней единицы, если она в silentFinal. Позиции вычисляются
// по исходной последовательности и применяются со сдвигом, чтобы несколько
// вставок не сбивали друг друга. Шаг чисто структурный: чем разрешится
// Epsilon (пусто или ь), решает перечислитель.
func insertSilent(units []Unit) []Unit {
	if len(units) == 0 {
		return units
	}

	var positions []int
	for i := 1; i < len(units); i++ {
		if silentLeft[units[i-1]] && silentRight[units[i]] {
			positions = append(positions, i)
		}
	}
	if silentFinal[units[len(units)-1]] {
		positions = append(positions, len(units))
	}
	if len(positions) == 0 {
		return units
	}

	out := make([]Unit, 0, len(units)+len(positions))
	out = append(out, units...)
	for shift, pos := range positions {
		at := pos + shift
		out = append(out, "")
		copy(out[at+1:], out[at:])
		out[at] = Epsilon
	}
	return out
}
