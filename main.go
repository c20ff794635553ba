// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/config"
	"github.com/LilVoxy/sales_warehouse/ETL/extractors"
	"github.com/LilVoxy/sales_warehouse/ETL/linear_regression"
	"github.com/LilVoxy/sales_warehouse/ETL/load"
	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/transform"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
	"github.com/LilVoxy/sales_warehouse/database"
	"github.com/LilVoxy/sales_warehouse/routes"
	"github.com/LilVoxy/sales_warehouse/websocket"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
)

func main() {
	fmt.Println("Запуск сервера мониторинга хранилища...")

	// Получаем конфигурацию
	etlConfig := config.GetConfig()

	// Подключаемся к хранилищу
	db, err := config.ConnectWarehouse(etlConfig)
	if err != nil {
		log.Fatalf("❌ Не удалось подключиться к хранилищу: %v", err)
	}
	defer db.Close()

	// Создаем таблицы звездообразной схемы и журнал прогонов
	if err := database.CreateWarehouseTablesIfNotExist(db); err != nil {
		log.Fatalf("❌ Не удалось создать таблицы хранилища: %v", err)
	}
	database.InitDB(db)

	etlLogRepo := models.NewMySQLETLLogRepository(db)
	if err := etlLogRepo.CreateETLLogTable(); err != nil {
		log.Fatalf("❌ Не удалось создать таблицу журнала ETL: %v", err)
	}

	// Инициализируем логгер ETL
	logger := utils.NewETLLogger(etlConfig.EnableDetailedLogging)

	// Создаем менеджер WebSocket для рассылки событий прогонов
	wsManager := websocket.NewManager()
	go wsManager.Run()

	// Компоненты конвейера
	extractor := extractors.NewExtractor(etlConfig.IngestionZoneDir, logger)
	transformer := transform.NewTransformer(logger)
	loadManager := load.NewLoadManager(db, logger)

	// runETL выполняет один прогон конвейера и публикует события о его ходе
	runETL := func() error {
		startTime := time.Now()

		logID, runUUID, err := etlLogRepo.CreateLogEntry(startTime)
		if err != nil {
			return fmt.Errorf("ошибка при создании записи в журнале ETL: %w", err)
		}

		wsManager.PublishProgress(websocket.ProgressEvent{
			RunID:   runUUID,
			Phase:   "started",
			Message: "Прогон начат",
		})

		fail := func(phase string, err error) error {
			errMsg := fmt.Sprintf("Ошибка в фазе %s: %v", phase, err)
			logger.Error(errMsg)
			if updErr := etlLogRepo.UpdateLogEntryFailure(logID, time.Now(), errMsg); updErr != nil {
				logger.Error("Ошибка при обновлении записи в журнале ETL: %v", updErr)
			}
			wsManager.PublishProgress(websocket.ProgressEvent{
				RunID:   runUUID,
				Phase:   "failed",
				Message: errMsg,
			})
			return fmt.Errorf("ошибка в фазе %s: %w", phase, err)
		}

		// 1. Извлечение
		extractedData, err := extractor.Extract()
		if err != nil {
			return fail("Extract", err)
		}
		wsManager.PublishProgress(websocket.ProgressEvent{
			RunID:   runUUID,
			Phase:   "extracted",
			Message: "Извлечение завершено",
			Records: extractedData.TotalRecords(),
		})

		// 2. Трансформация
		transformedData, err := transformer.Transform(extractedData)
		if err != nil {
			return fail("Transform", err)
		}
		wsManager.PublishProgress(websocket.ProgressEvent{
			RunID:   runUUID,
			Phase:   "transformed",
			Message: "Трансформация завершена",
			Records: transformedData.DimensionRows() + len(transformedData.SalesOrders),
		})

		// 3. Загрузка
		if err := loadManager.Load(transformedData); err != nil {
			return fail("Load", err)
		}

		// 4. Прогноз выручки, некритичный шаг
		if err := linear_regression.RunAsPartOfETL(db, logger); err != nil {
			logger.Error("Ошибка при выполнении линейной регрессии: %v", err)
		}

		if err := etlLogRepo.UpdateLogEntrySuccess(
			logID,
			time.Now(),
			extractedData.TotalRecords(),
			transformedData.DimensionRows(),
			len(transformedData.SalesOrders)); err != nil {
			logger.Error("Ошибка при обновлении записи в журнале ETL: %v", err)
		}

		wsManager.PublishProgress(websocket.ProgressEvent{
			RunID:   runUUID,
			Phase:   "completed",
			Message: fmt.Sprintf("Прогон завершен за %v", time.Since(startTime).Round(time.Millisecond)),
			Records: len(transformedData.SalesOrders),
		})

		logger.LogETLComplete(startTime,
			extractedData.TotalRecords(),
			transformedData.DimensionRows(),
			len(transformedData.SalesOrders))
		return nil
	}

	// Создаем маршрутизатор и регистрируем обработчики
	router := mux.NewRouter()
	routes.SetupRoutes(router, db, wsManager, runETL)

	// Настраиваем сервер
	server := &http.Server{
		Addr:         etlConfig.APIAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("✅ Сервер запущен на http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Ошибка запуска сервера: %v", err)
		}
	}()

	// Канал для сигналов завершения
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Ожидаем сигнал завершения
	<-stop
	log.Println("⚠️ Получен сигнал завершения, закрываем соединения...")

	// Закрываем соединение с хранилищем
	if err := db.Close(); err != nil {
		log.Printf("❌ Ошибка закрытия соединения с БД: %v", err)
	} else {
		log.Println("✅ Соединение с БД закрыто")
	}

	log.Println("👋 Сервер остановлен")
}
