package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	bt "backtranslit/internal/backtranslit"
	"backtranslit/internal/config"
	"backtranslit/internal/customdict"
	"backtranslit/pkg/options"
)

func main() {
	cfg, err := config.Load(config.Getenv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	dict := customdict.New(client)

	engine := bt.New(
		options.WithMaxCandidates(cfg.MaxCandidates),
		options.WithCacheSize(cfg.CacheSize),
		options.WithTopK(cfg.TopK),
	)
	if cfg.ModelPath != "" {
		if err := engine.Load(cfg.ModelPath); err != nil {
			log.Fatalf("model load error: %v", err)
		}
		log.Printf("модель загружена из %s", cfg.ModelPath)
	} else {
		log.Printf("модель не задана, работаем в равномерном режиме")
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/predict", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word  string `json:"word"`
			Limit int    `json:"limit"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		word := strings.ToLower(strings.TrimSpace(req.Word))

		preds := engine.PredictProba(word)

		// Закреплённое восстановление из словаря вытесняется наверх
		// с вероятностью 1.
		if pinned, ok, err := dict.Get(r.Context(), word); err == nil && ok {
			out := make([]bt.Prediction, 0, len(preds)+1)
			out = append(out, bt.Prediction{Probability: 1, Word: pinned})
			for _, p := range preds {
				if p.Word != pinned {
					out = append(out, p)
				}
			}
			preds = out
		}

		if req.Limit > 0 && len(preds) > req.Limit {
			preds = preds[:req.Limit]
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"word":        word,
			"trained":     engine.Trained(),
			"predictions": preds,
		})
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Latin    string `json:"latin"`
			Cyrillic string `json:"cyrillic"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			strings.TrimSpace(req.Latin) == "" || strings.TrimSpace(req.Cyrillic) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		latin := strings.ToLower(strings.TrimSpace(req.Latin))
		cyrillic := strings.ToLower(strings.TrimSpace(req.Cyrillic))
		if err := dict.Add(r.Context(), latin, cyrillic); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/custom-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		latin := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
		if latin == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "latin word is required"})
			return
		}
		if err := dict.Remove(r.Context(), strings.ToLower(latin)); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/healthz", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, mux))
}
