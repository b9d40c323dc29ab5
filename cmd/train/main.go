// Обучение модели: читает корпус кириллических слов, обучает таблицу
// вероятностей и сохраняет её на диск. С флагом -eval прогоняет корпус через
// предсказание и считает точность top-1/top-2.
package main

import (
	"flag"
	"log"

	bt "backtranslit/internal/backtranslit"
	"backtranslit/internal/corpus"
	"backtranslit/internal/translit"
	"backtranslit/pkg/options"
)

func main() {
	corpusPath := flag.String("corpus", "words.txt", "путь к списку слов, по слову на строку")
	modelPath := flag.String("model", "model", "имя модели (файл <имя>.btm)")
	maxCandidates := flag.Int("max-candidates", 0, "предел кандидатов на слово, 0 — без ограничения")
	eval := flag.Bool("eval", false, "посчитать точность top-1/top-2 на корпусе после обучения")
	flag.Parse()

	words, err := corpus.Load(*corpusPath)
	if err != nil {
		log.Fatalf("ошибка загрузки корпуса: %v", err)
	}
	log.Printf("корпус: %d слов", len(words))

	engine := bt.New(
		options.WithMaxCandidates(*maxCandidates),
		options.WithoutCache(),
	)
	engine.Fit(words)
	log.Printf("обучение завершено, промахов: %d", engine.Misses())

	if err := engine.Save(*modelPath); err != nil {
		log.Fatalf("ошибка сохранения модели: %v", err)
	}
	log.Printf("модель сохранена: %s.btm", *modelPath)

	if *eval {
		top1, top2 := evaluate(engine, words)
		n := len(words)
		log.Printf("top-1: %d/%d (%.2f%%), top-2: %d/%d (%.2f%%)",
			top1, n, 100*float64(top1)/float64(n),
			top1+top2, n, 100*float64(top1+top2)/float64(n))
	}
}

// evaluate заново романизирует каждое слово корпуса и проверяет, на каком
// месте среди предсказаний оказывается исходное написание.
func evaluate(engine *bt.BackTransliterator, words []string) (top1, top2 int) {
	for _, word := range words {
		predicted := engine.Predict(translit.Romanize(word))
		if len(predicted) > 0 && predicted[0] == word {
			top1++
		} else if len(predicted) > 1 && predicted[1] == word {
			top2++
		}
	}
	return top1, top2
}
