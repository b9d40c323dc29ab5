package backtranslit

// store.go — сохранение и загрузка обученной таблицы. Формат файла:
// сигнатура "BTR1", затем gob-кодированная таблица, сжатая gzip.
// Загрузка отображает файл в память через mmap и декодирует блок
// прямо из отображённого среза, без промежуточного чтения в кучу.

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

const (
	tableMagic = "BTR1"
	tableExt   = ".btm"
)

// Save сериализует таблицу под именем name (файл name.btm).
func (bt *BackTransliterator) Save(name string) error {
	if bt.probs == nil {
		return fmt.Errorf("таблица вероятностей не обучена и не загружена")
	}

	file, err := os.Create(name + tableExt)
	if err != nil {
		return fmt.Errorf("ошибка создания файла модели: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(tableMagic); err != nil {
		return fmt.Errorf("ошибка записи заголовка: %w", err)
	}

	zw := gzip.NewWriter(file)
	if err := gob.NewEncoder(zw).Encode(bt.probs); err != nil {
		return fmt.Errorf("ошибка gob-кодирования таблицы: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия gzip.Writer: %w", err)
	}
	return nil
}

// Load восстанавливает таблицу, сохранённую Save. Отсутствующий или
// повреждённый файл — ошибка вызывающей стороне, отката в равномерный
// режим не происходит.
func (bt *BackTransliterator) Load(name string) error {
	table, err := LoadTable(name)
	if err != nil {
		return err
	}
	bt.SetTable(table)
	return nil
}

// LoadTable читает таблицу из файла name.btm, не трогая движок.
func LoadTable(name string) (ProbTable, error) {
	file, err := os.Open(name + tableExt)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла модели: %w", err)
	}
	defer file.Close()

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("ошибка mmap.Map: %w", err)
	}
	defer mapped.Unmap()

	if len(mapped) < len(tableMagic) || string(mapped[:len(tableMagic)]) != tableMagic {
		return nil, fmt.Errorf("неверная сигнатура файла модели")
	}

	zr, err := gzip.NewReader(bytes.NewReader(mapped[len(tableMagic):]))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания gzip.Reader: %w", err)
	}

	var table ProbTable
	if err := gob.NewDecoder(zr).Decode(&table); err != nil {
		return nil, fmt.Errorf("ошибка gob-декодирования таблицы: %w", err)
	}
	if err := zr.Close(); err != nil {
		return nil, fmt.Errorf("ошибка закрытия gzip.Reader: %w", err)
	}
	return table, nil
}
