// websocket/connection_handler.go
package websocket

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Конфигурация WebSocket-соединения
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Разрешаем подключения с любого источника (для разработки)
	},
}

// HandleConnections обрабатывает подключения подписчиков на события ETL
func (manager *Manager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	log.Printf("Получен запрос на подписку на события ETL с адреса %s", r.RemoteAddr)

	// Устанавливаем WebSocket-соединение
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Ошибка при установке WebSocket-соединения:", err)
		return
	}

	// Создаем нового подписчика
	client := &Client{
		RemoteAddr: r.RemoteAddr,
		Socket:     conn,
		Send:       make(chan []byte, 256),
		Manager:    manager,
	}

	// Регистрируем подписчика в менеджере
	manager.Register <- client

	log.Printf("✅ Подписчик %s подключился", r.RemoteAddr)

	// Запускаем горутины для чтения и отправки сообщений
	go client.readPump()
	go client.writePump()
}
