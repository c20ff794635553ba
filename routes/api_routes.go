// routes/api_routes.go
package routes

import (
	"database/sql"

	"github.com/LilVoxy/sales_warehouse/middleware"
	"github.com/LilVoxy/sales_warehouse/websocket"
	"github.com/gorilla/mux"
)

// SetupRoutes настраивает все маршруты API и WebSocket
func SetupRoutes(router *mux.Router, db *sql.DB, wsManager *websocket.Manager, runETL func() error) {
	// Применяем CORS middleware
	router.Use(middleware.CORSMiddleware)

	// WebSocket подписка на события ETL
	router.HandleFunc("/ws/etl", wsManager.HandleConnections)

	// API журнала прогонов
	router.HandleFunc("/api/runs", GetRunsHandler(db)).Methods("GET", "OPTIONS")

	// API прогнозов выручки
	router.HandleFunc("/api/forecast", GetForecastHandler(db)).Methods("GET", "OPTIONS")

	// Ручной запуск ETL-прогона
	router.HandleFunc("/api/run", TriggerRunHandler(runETL)).Methods("POST", "OPTIONS")
}
