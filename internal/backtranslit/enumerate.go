package backtranslit

// enumerate.go — перечисление кандидатов: декартово произведение вариантов
// каждой единицы, отфильтрованное орфографическими ограничениями кириллицы.
// Знаки и ы не могут открывать слог или стоять после гласной, й — согласный
// и не кластеризуется с другим согласным; эти запреты смежности срезают
// экспоненциальное пространство до лингвистически допустимого подмножества.

// enumerateCandidates возвращает все допустимые варианты восстановления для
// последовательности единиц в стабильном порядке произведения (правая
// позиция меняется быстрее всего). limit > 0 обрывает перечисление после
// limit принятых кандидатов; второй результат сообщает об усечении.
func enumerateCandidates(units []Unit, limit int) ([][]string, bool) {
	if len(units) == 0 {
		return nil, false
	}

	choices := make([][]string, len(units))
	for i, u := range units {
		rr, ok := unitRenderings[u]
		if !ok {
			return nil, false
		}
		choices[i] = rr
	}

	var out [][]string
	idx := make([]int, len(units))
	variant := make([]string, len(units))
	for {
		for i, j := range idx {
			variant[i] = choices[i][j]
		}
		if validCandidate(units, variant) {
			cand := make([]string, len(variant))
			copy(cand, variant)
			out = append(out, cand)
			if limit > 0 && len(out) >= limit {
				return out, hasNext(idx, choices)
			}
		}
		if !advance(idx, choices) {
			return out, false
		}
	}
}

// advance переводит одометр индексов на следующую комбинацию,
// правая позиция крутится быстрее всего.
func advance(idx []int, choices [][]string) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < len(choices[i]) {
			return true
		}
		idx[i] = 0
	}
	return false
}

func hasNext(idx []int, choices [][]string) bool {
	for i := range idx {
		if idx[i] != len(choices[i])-1 {
			return true
		}
	}
	return false
}

// validCandidate проверяет кандидата против позиционных ограничений,
// отвергая его на первой же нарушенной позиции.
func validCandidate(units []Unit, variant []string) bool {
	last := len(variant) - 1
	for i, c := range variant {
		if c == "" {
			continue
		}
		first := firstRune(c)

		// ъ/ь не могут стоять в начале слова
		if i == 0 && (first == 'ъ' || first == 'ь') {
			return false
		}

		// й не может стоять в начале слова
		if i == 0 && c == "й" {
			return false
		}

		if i > 0 {
			prev := variant[i-1]
			prevLast := rune(0)
			if prev != "" {
				prevLast = lastRune(prev)
			}

			// ъ/ь/ы не могут стоять после гласной
			if (first == 'ь' || first == 'ъ' || first == 'ы') && isCyrVowel(prevLast) {
				return false
			}

			// й не может стоять после согласной
			if c == "й" && isCyrConsonant(prevLast) {
				return false
			}

			// йо, йа... в последней позиции не могут стоять после согласной
			if i == last && first == 'й' && isCyrConsonant(prevLast) {
				return false
			}

			// ye -> е не может стоять после согласной в конце слова
			if i == last && c == "е" && units[i] == "ye" && isCyrConsonant(prevLast) {
				return false
			}

			// ye -> е не может стоять между двумя согласными
			if c == "е" && units[i] == "ye" && i < last {
				next := variant[i+1]
				if next != "" && isCyrConsonant(prevLast) && isCyrConsonant(firstRune(next)) {
					return false
				}
			}
		}

		// y -> ий/ый допустимы только в конце слова
		if (c == "ий" || c == "ый") && i != last {
			return false
		}
	}
	return true
}
