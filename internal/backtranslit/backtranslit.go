// Package backtranslit восстанавливает кириллическое написание слова по его
// латинской романизации. Романизация необратима: несколько кириллических
// букв и кластеров схлопываются в один латинский диграф, а ъ/ь выпадают
// целиком, поэтому обратное отображение один-ко-многим. Движок перечисляет
// лингвистически допустимых кандидатов и ранжирует их по обученной на
// корпусе позиционной вероятностной модели; без модели каждому кандидату
// назначается равномерная вероятность 1/n.
package backtranslit

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"backtranslit/pkg/options"
)

// Prediction — один вариант восстановления с оценкой вероятности.
type Prediction struct {
	Probability float64 `json:"probability"`
	Word        string  `json:"word"`
}

// BackTransliterator — основной движок. Таблица вероятностей читается при
// предсказании и целиком заменяется при Fit/Load; одновременные Fit и
// Predict над одним экземпляром должны сериализоваться вызывающей стороной.
type BackTransliterator struct {
	opts   options.EngineOptions
	probs  ProbTable // nil — равномерный режим
	misses int
	cache  *lru.Cache[string, []Prediction]
}

func New(opts ...options.Options) *BackTransliterator {
	conf := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	bt := &BackTransliterator{opts: conf}
	if conf.CacheSize > 0 {
		bt.cache, _ = lru.New[string, []Prediction](conf.CacheSize)
	}
	return bt
}

// PredictProba возвращает все допустимые восстановления слова с
// вероятностями, по убыванию вероятности; при равенстве — по алфавиту
// восстановленной формы. Кандидаты с нулевой вероятностью опускаются.
func (bt *BackTransliterator) PredictProba(word string) []Prediction {
	key := strings.ToLower(word)
	if bt.cache != nil {
		if cached, ok := bt.cache.Get(key); ok {
			return cached
		}
	}

	res := bt.predict(key)
	if bt.cache != nil {
		bt.cache.Add(key, res)
	}
	return res
}

func (bt *BackTransliterator) predict(word string) []Prediction {
	units := insertSilent(Tokenize(word))
	if len(units) == 0 {
		return nil
	}
	candidates, _ := enumerateCandidates(units, bt.opts.MaxCandidates)

	uniform := 1 / float64(len(units))
	res := make([]Prediction, 0, len(candidates))
	for _, variant := range candidates {
		var p float64
		if bt.probs == nil {
			p = uniform
		} else {
			p = bt.probs.scoreCandidate(units, variant)
		}
		if p > 0 {
			res = append(res, Prediction{Probability: p, Word: strings.Join(variant, "")})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Probability != res[j].Probability {
			return res[i].Probability > res[j].Probability
		}
		return res[i].Word < res[j].Word
	})

	if bt.opts.TopK > 0 && len(res) > bt.opts.TopK {
		res = res[:bt.opts.TopK]
	}
	return res
}

// Predict возвращает те же восстановления, что и PredictProba,
// без вероятностей.
func (bt *BackTransliterator) Predict(word string) []string {
	pp := bt.PredictProba(word)
	words := make([]string, len(pp))
	for i, p := range pp {
		words[i] = p.Word
	}
	return words
}

// Fit обучает таблицу вероятностей по корпусу кириллических слов.
// Корпус должен быть заранее приведён к нижнему регистру и очищен от
// небуквенных символов (см. internal/corpus). Старая таблица заменяется
// целиком, кэш предсказаний сбрасывается.
func (bt *BackTransliterator) Fit(words []string) {
	table, misses := fitTable(words, bt.opts.MaxCandidates)
	bt.probs = table
	bt.misses = misses
	if bt.cache != nil {
		bt.cache.Purge()
	}
}

// Misses возвращает число слов последнего обучения, чьё верное
// восстановление не было достижимо перечислением. Диагностика покрытия
// грамматики, не ошибка.
func (bt *BackTransliterator) Misses() int {
	return bt.misses
}

// Trained сообщает, загружена ли таблица вероятностей.
func (bt *BackTransliterator) Trained() bool {
	return bt.probs != nil
}

// Table возвращает текущую таблицу вероятностей (nil в равномерном режиме).
func (bt *BackTransliterator) Table() ProbTable {
	return bt.probs
}

// SetTable атомарно подменяет таблицу и сбрасывает кэш.
func (bt *BackTransliterator) SetTable(table ProbTable) {
	bt.probs = table
	if bt.cache != nil {
		bt.cache.Purge()
	}
}
