package backtranslit

import (
	"math"
	"reflect"
	"testing"

	"backtranslit/pkg/options"
)

// Без таблицы каждый допустимый кандидат получает равномерную
// вероятность 1/L, где L — длина последовательности единиц после вставки.
func TestPredictUniformFallback(t *testing.T) {
	engine := New(options.WithoutCache())

	preds := engine.PredictProba("dom")
	if len(preds) != 1 {
		t.Fatalf("len = %d, want 1: %v", len(preds), preds)
	}
	if preds[0].Word != "дом" {
		t.Errorf("восстановление = %q, want %q", preds[0].Word, "дом")
	}
	if want := 1.0 / 3; preds[0].Probability != want {
		t.Errorf("вероятность = %v, want %v", preds[0].Probability, want)
	}

	// tma разворачивается в 4 единицы, оба кандидата по 1/4
	preds = engine.PredictProba("tma")
	if len(preds) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(preds), preds)
	}
	for _, p := range preds {
		if p.Probability != 0.25 {
			t.Errorf("вероятность %q = %v, want 0.25", p.Word, p.Probability)
		}
	}
}

func TestPredictRossiya(t *testing.T) {
	engine := New(options.WithoutCache())
	found := false
	for _, w := range engine.Predict("rossiya") {
		if w == "россия" {
			found = true
		}
	}
	if !found {
		t.Error("среди восстановлений rossiya нет россия")
	}
}

func TestFitNormalization(t *testing.T) {
	engine := New(options.WithoutCache())
	engine.Fit([]string{"семья", "семя", "конь", "россия", "дом"})
	if engine.Misses() != 0 {
		t.Fatalf("промахи = %d, want 0", engine.Misses())
	}

	// внутри каждого контекста вероятности суммируются в 1
	sums := make(map[contextKey]float64)
	for pv, p := range engine.Table() {
		if p <= 0 || p > 1 {
			t.Errorf("вероятность %v = %v вне (0, 1]", pv, p)
		}
		sums[contextKey{Prev: pv.Prev, Unit: pv.Unit, Next: pv.Next}] += p
	}
	for ctx, sum := range sums {
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("контекст %v: сумма вероятностей %v, want 1", ctx, sum)
		}
	}

	// однозначные единицы в таблицу не попадают
	for pv := range engine.Table() {
		if singleRendering[pv.Unit] {
			t.Errorf("однозначная единица %q не должна храниться в таблице", pv.Unit)
		}
	}
}

func TestFitThenPredict(t *testing.T) {
	engine := New(options.WithoutCache())
	engine.Fit([]string{"семья", "семя"})

	// оба слова романизируются в semya; наблюдались оба варианта ya,
	// вариант э и прочие записи ya в этом контексте не наблюдались и
	// отбрасываются как невозможные
	preds := engine.PredictProba("semya")
	if len(preds) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(preds), preds)
	}
	for _, p := range preds {
		if p.Probability != 0.5 {
			t.Errorf("вероятность %q = %v, want 0.5", p.Word, p.Probability)
		}
	}
	// равные вероятности упорядочиваются по возрастанию строки
	if preds[0].Word != "семья" || preds[1].Word != "семя" {
		t.Errorf("порядок = [%q %q], want [семья семя]", preds[0].Word, preds[1].Word)
	}
}

func TestFitUnseenContextScoresZero(t *testing.T) {
	engine := New(options.WithoutCache())
	engine.Fit([]string{"семья"})

	preds := engine.PredictProba("semya")
	if len(preds) != 1 {
		t.Fatalf("len = %d, want 1: %v", len(preds), preds)
	}
	if preds[0].Word != "семья" || preds[0].Probability != 1 {
		t.Errorf("got %v, want {1 семья}", preds[0])
	}
}

// Слово, чьё верное восстановление отвергается ограничениями (й в начале
// слова), пропускается при обучении и учитывается как промах.
func TestFitMisses(t *testing.T) {
	engine := New(options.WithoutCache())
	engine.Fit([]string{"йод", "дом"})
	if engine.Misses() != 1 {
		t.Errorf("промахи = %d, want 1", engine.Misses())
	}
}

func TestPredictDeterminism(t *testing.T) {
	engine := New(options.WithoutCache())
	engine.Fit([]string{"семья", "семя", "конь", "россия"})

	first := engine.PredictProba("semya")
	second := engine.PredictProba("semya")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("повторное предсказание отличается: %v != %v", first, second)
	}
}

func TestPredictMalformedInput(t *testing.T) {
	engine := New(options.WithoutCache())
	if preds := engine.PredictProba("***"); len(preds) != 0 {
		t.Errorf("для мусорного входа ожидается пустой результат, got %v", preds)
	}
}

func TestPredictCacheInvalidation(t *testing.T) {
	engine := New(options.WithCacheSize(16))

	before := engine.PredictProba("semya") // равномерный режим
	engine.Fit([]string{"семья"})
	after := engine.PredictProba("semya")

	if reflect.DeepEqual(before, after) {
		t.Error("кэш не сброшен после обучения")
	}
	if len(after) != 1 || after[0].Word != "семья" {
		t.Errorf("после обучения got %v, want только семья", after)
	}
}

func TestTopK(t *testing.T) {
	engine := New(options.WithoutCache(), options.WithTopK(1))
	preds := engine.PredictProba("tma")
	if len(preds) != 1 {
		t.Errorf("len = %d, want 1 (top-k)", len(preds))
	}
}
