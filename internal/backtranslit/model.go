package backtranslit

// model.go — вероятностная модель: позиционные варианты, скоринг кандидатов
// и обучение по корпусу. Для каждой тройки e1-e2-e3 оценивается вероятность
// того, что e2 породила конкретную кириллическую запись при соседях e1-e3.

import (
	"strings"

	"backtranslit/internal/translit"
)

// PositionalVariant — атомарный ключ таблицы вероятностей: единица, выбранная
// запись и единицы-соседи (либо маркеры границ слова). Сравнение и
// хеширование — по значению всей четвёрки.
type PositionalVariant struct {
	Unit Unit
	Emit string
	Prev Unit
	Next Unit
}

// contextKey идентифицирует контекст (prev, unit, next), внутри которого
// нормализуются счётчики.
type contextKey struct {
	Prev Unit
	Unit Unit
	Next Unit
}

// ProbTable — обученная таблица условных вероятностей. Распределение внутри
// каждого контекста суммируется в 1; единицы с единственной записью в
// таблице не хранятся и всегда оцениваются в 1.
type ProbTable map[PositionalVariant]float64

// probability возвращает вероятность позиционного варианта:
// 1 для однозначных единиц, 0 для сочетаний, не встречавшихся при обучении.
// Отсутствие записи — значимый результат (невозможно по данным), не ошибка.
func (t ProbTable) probability(pv PositionalVariant) float64 {
	if singleRendering[pv.Unit] {
		return 1
	}
	return t[pv]
}

func prevOf(units []Unit, i int) Unit {
	if i == 0 {
		return BoundaryStart
	}
	return units[i-1]
}

func nextOf(units []Unit, i int) Unit {
	if i == len(units)-1 {
		return BoundaryEnd
	}
	return units[i+1]
}

// scoreCandidate оценивает кандидата как произведение позиционных факторов —
// марковское допущение с окном в одну единицу влево и вправо, не полная
// совместная модель. Нулевой фактор обрывает произведение сразу.
func (t ProbTable) scoreCandidate(units []Unit, variant []string) float64 {
	p := 1.0
	for i, emit := range variant {
		p *= t.probability(PositionalVariant{
			Unit: units[i],
			Emit: emit,
			Prev: prevOf(units, i),
			Next: nextOf(units, i),
		})
		if p == 0 {
			return 0
		}
	}
	return p
}

// fitTable обучает таблицу по корпусу кириллических слов. Латинская форма
// каждого слова не читается из входа, а выводится заново прямым
// транслитератором; среди перечисленных кандидатов линейным поиском
// находится первый, чья конкатенация совпадает с исходным словом, и его
// позиционные варианты пополняют счётчики. Слова, чьё верное восстановление
// недостижимо перечислением, пропускаются и учитываются как промахи.
// После прохода счётчики нормализуются в распределения по контекстам.
func fitTable(words []string, limit int) (ProbTable, int) {
	raw := make(map[PositionalVariant]int)
	totals := make(map[contextKey]int)
	misses := 0

	for _, word := range words {
		latin := translit.Romanize(word)
		units := insertSilent(Tokenize(latin))
		if len(units) == 0 {
			misses++
			continue
		}
		candidates, _ := enumerateCandidates(units, limit)

		matched := false
		for _, variant := range candidates {
			if strings.Join(variant, "") != word {
				continue
			}
			for i, emit := range variant {
				u := units[i]
				if singleRendering[u] {
					continue
				}
				pv := PositionalVariant{
					Unit: u,
					Emit: emit,
					Prev: prevOf(units, i),
					Next: nextOf(units, i),
				}
				raw[pv]++
				totals[contextKey{Prev: pv.Prev, Unit: u, Next: pv.Next}]++
			}
			matched = true
			break
		}
		if !matched {
			misses++
		}
	}

	table := make(ProbTable, len(raw))
	for pv, c := range raw {
		table[pv] = float64(c) / float64(totals[contextKey{Prev: pv.Prev, Unit: pv.Unit, Next: pv.Next}])
	}
	return table, misses
}
