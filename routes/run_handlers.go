// routes/run_handlers.go
package routes

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/linear_regression"
	"github.com/LilVoxy/sales_warehouse/ETL/models"
)

// RunsResponse структура ответа API для журнала прогонов
type RunsResponse struct {
	Runs []models.ETLRunLog `json:"runs"`
}

// ForecastResponse структура ответа API для прогнозов выручки
type ForecastResponse struct {
	Forecasts []linear_regression.ForecastPoint `json:"forecasts"`
}

// GetRunsHandler обрабатывает запросы на получение журнала ETL-прогонов
func GetRunsHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Получаем параметры запроса
		query := r.URL.Query()
		daysStr := query.Get("days")

		// По умолчанию показываем прогоны за последнюю неделю
		days := 7
		if daysStr != "" {
			parsed, err := strconv.Atoi(daysStr)
			if err != nil || parsed <= 0 {
				http.Error(w, "Неверный формат параметра days", http.StatusBadRequest)
				return
			}
			days = parsed
		}

		repository := models.NewMySQLETLLogRepository(db)
		runs, err := repository.GetETLRunStats(days)
		if err != nil {
			log.Printf("❌ Ошибка при запросе журнала прогонов: %v", err)
			http.Error(w, "Ошибка при получении журнала прогонов", http.StatusInternalServerError)
			return
		}

		// Подготавливаем ответ
		response := RunsResponse{
			Runs: runs,
		}

		// Устанавливаем заголовок для JSON
		w.Header().Set("Content-Type", "application/json")

		// Кодируем и отправляем ответ
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Printf("❌ Ошибка при кодировании JSON: %v", err)
			http.Error(w, "Ошибка при формировании ответа", http.StatusInternalServerError)
			return
		}

		log.Printf("✅ Отправлен журнал из %d прогонов за последние %d дней", len(runs), days)
	}
}

// GetForecastHandler обрабатывает запросы на получение прогнозов выручки
func GetForecastHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Получаем параметры запроса
		query := r.URL.Query()
		daysStr := query.Get("days")

		// По умолчанию отдаем прогноз на две недели вперед
		days := 14
		if daysStr != "" {
			parsed, err := strconv.Atoi(daysStr)
			if err != nil || parsed <= 0 {
				http.Error(w, "Неверный формат параметра days", http.StatusBadRequest)
				return
			}
			days = parsed
		}

		repository := linear_regression.NewMySQLPredictionRepository(db)
		now := time.Now()
		forecasts, err := repository.GetForecasts(now, now.AddDate(0, 0, days))
		if err != nil {
			log.Printf("❌ Ошибка при запросе прогнозов: %v", err)
			http.Error(w, "Ошибка при получении прогнозов", http.StatusInternalServerError)
			return
		}

		// Подготавливаем ответ
		response := ForecastResponse{
			Forecasts: forecasts,
		}

		// Устанавливаем заголовок для JSON
		w.Header().Set("Content-Type", "application/json")

		// Кодируем и отправляем ответ
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Printf("❌ Ошибка при кодировании JSON: %v", err)
			http.Error(w, "Ошибка при формировании ответа", http.StatusInternalServerError)
			return
		}

		log.Printf("✅ Отправлено %d точек прогноза на %d дней", len(forecasts), days)
	}
}

// TriggerRunHandler запускает ETL-прогон вручную.
// Прогон выполняется в фоне, ответ возвращается сразу после постановки в работу.
func TriggerRunHandler(runETL func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if runETL == nil {
			http.Error(w, "Запуск ETL не настроен", http.StatusServiceUnavailable)
			return
		}

		go func() {
			if err := runETL(); err != nil {
				log.Printf("❌ Ошибка при ручном запуске ETL: %v", err)
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
		})

		log.Println("✅ Запущен ручной ETL-прогон")
	}
}
