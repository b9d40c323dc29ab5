package backtranslit

import (
	"reflect"
	"strings"
	"testing"
)

func joinAll(candidates [][]string) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = strings.Join(c, "")
	}
	return out
}

func TestEnumerateSingleCandidate(t *testing.T) {
	// все единицы однозначны — ровно один кандидат
	got, truncated := enumerateCandidates([]Unit{"d", "o", "m"}, 0)
	if truncated {
		t.Fatal("неожиданное усечение")
	}
	if want := []string{"дом"}; !reflect.DeepEqual(joinAll(got), want) {
		t.Errorf("кандидаты = %v, want %v", joinAll(got), want)
	}
}

func TestEnumerateConstraints(t *testing.T) {
	testCases := []struct {
		name    string
		units   []Unit
		want    []string // точный список в порядке произведения
		exclude []string
	}{
		{
			// ий/ый только в последней позиции, й не после согласной
			name:  "ryba",
			units: []Unit{"r", "y", "b", "a"},
			want:  []string{"рыба"},
		},
		{
			// знаки не после гласной; йа допустимо не в последней позиции
			name:  "mayak",
			units: []Unit{"m", "a", "ya", "k"},
			want:  []string{"маяк", "майак"},
		},
		{
			// Epsilon разрешается в пусто либо ь
			name:  "tma",
			units: []Unit{"t", Epsilon, "m", "a"},
			want:  []string{"тма", "тьма"},
		},
		{
			// й и знаки не в начале слова
			name:    "yod",
			units:   []Unit{"y", "o", "d"},
			want:    []string{"ыод"},
			exclude: []string{"йод", "ыйод", "ийод"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := enumerateCandidates(tc.units, 0)
			words := joinAll(got)
			if tc.want != nil && !reflect.DeepEqual(words, tc.want) {
				t.Errorf("кандидаты = %v, want %v", words, tc.want)
			}
			for _, bad := range tc.exclude {
				for _, w := range words {
					if w == bad {
						t.Errorf("кандидат %q нарушает ограничения, но прошёл", bad)
					}
				}
			}
		})
	}
}

// Каждый принятый кандидат обязан проходить полный набор ограничений.
func TestEnumerateSoundness(t *testing.T) {
	unitSets := [][]Unit{
		{"s", "e", "m", "ya"},
		{"p", "o", "d", "ye", "z", "d", Epsilon},
		{"r", "o", "s", Epsilon, "s", "i", "ya"},
		{"y", "o", "g"},
		{"k", "o", "n", Epsilon},
	}
	for _, units := range unitSets {
		candidates, _ := enumerateCandidates(units, 0)
		for _, variant := range candidates {
			if !validCandidate(units, variant) {
				t.Errorf("units %v: кандидат %v не проходит ограничения", units, variant)
			}
		}
	}
}

func TestEnumerateTruncation(t *testing.T) {
	units := []Unit{"ye", "ya", "yo", "yu"}
	full, truncated := enumerateCandidates(units, 0)
	if truncated {
		t.Fatal("полное перечисление не должно сообщать об усечении")
	}
	if len(full) < 3 {
		t.Skipf("слишком мало кандидатов для проверки усечения: %d", len(full))
	}

	capped, truncated := enumerateCandidates(units, 2)
	if !truncated {
		t.Error("ожидалось усечение")
	}
	if len(capped) != 2 {
		t.Errorf("len = %d, want 2", len(capped))
	}
	if !reflect.DeepEqual(capped, full[:2]) {
		t.Error("усечённый префикс должен совпадать с началом полного перечисления")
	}
}
