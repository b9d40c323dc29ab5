// Package corpus читает обучающий словарь: по слову на строку, приведение к
// нижнему регистру, NFC-нормализация и фильтрация по русскому алфавиту.
// Слова с посторонними символами отбрасываются целиком.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const russianAlphabet = "ёйцукенгшщзхъфывапролджэячсмитьбю"

// IsRussian сообщает, состоит ли слово только из букв русского алфавита.
func IsRussian(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !strings.ContainsRune(russianAlphabet, r) {
			return false
		}
	}
	return true
}

// Normalize приводит слово к канонической форме корпуса:
// обрезка пробелов, нижний регистр, NFC.
func Normalize(word string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(word)))
}

// Load читает список слов из файла, нормализует и отбрасывает всё, что не
// проходит фильтр алфавита. Дубликаты удаляются с сохранением порядка
// первого вхождения.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия корпуса: %w", err)
	}
	defer f.Close()

	var words []string
	seen := make(map[string]bool)
	s := bufio.NewScanner(f)
	for s.Scan() {
		word := Normalize(s.Text())
		if !IsRussian(word) || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения корпуса: %w", err)
	}
	return words, nil
}
