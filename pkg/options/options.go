package options

// DefaultOptions — консервативные настройки движка по умолчанию:
// перечисление без ограничения, небольшой кэш предсказаний.
var DefaultOptions = EngineOptions{
	MaxCandidates: 0,
	CacheSize:     4096,
	TopK:          0,
}

type EngineOptions struct {
	MaxCandidates int // предел числа кандидатов на слово, 0 — без ограничения
	CacheSize     int // размер LRU-кэша предсказаний, 0 — кэш выключен
	TopK          int // сколько вариантов возвращать, 0 — все
}

type Options interface {
	Apply(options *EngineOptions)
}

type FuncConfig struct {
	ops func(options *EngineOptions)
}

func (w FuncConfig) Apply(conf *EngineOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *EngineOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// WithMaxCandidates ограничивает число кандидатов, порождаемых для одного
// слова. Перечисление в худшем случае экспоненциально; предел обрывает его
// с признаком усечения вместо неограниченного роста памяти.
func WithMaxCandidates(maxCandidates int) Options {
	return NewFuncOption(func(options *EngineOptions) {
		options.MaxCandidates = maxCandidates
	})
}

func WithCacheSize(cacheSize int) Options {
	return NewFuncOption(func(options *EngineOptions) {
		options.CacheSize = cacheSize
	})
}

func WithTopK(topK int) Options {
	return NewFuncOption(func(options *EngineOptions) {
		options.TopK = topK
	})
}

// WithoutCache отключает кэш предсказаний.
// Полезно, когда слова почти не повторяются.
func WithoutCache() Options {
	return NewFuncOption(func(options *EngineOptions) {
		options.CacheSize = 0
	})
}
