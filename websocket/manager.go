// websocket/manager.go
package websocket

import (
	"encoding/json"
	"log"
	"time"
)

// Константы для WebSocket-соединения
const (
	// Время ожидания записи сообщения клиенту
	writeWait = 10 * time.Second

	// Время ожидания сообщения от клиента
	pongWait = 60 * time.Second

	// Период отправки пинг-сообщений
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер сообщения
	maxMessageSize = 4 * 1024
)

// ProgressEvent событие о ходе выполнения ETL-прогона, рассылаемое подписчикам
type ProgressEvent struct {
	RunID     string    `json:"run_id"`
	Phase     string    `json:"phase"`
	Message   string    `json:"message"`
	Records   int       `json:"records,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Manager управляет WebSocket-подписчиками на события ETL
type Manager struct {
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
	Clients    map[*Client]bool
}

// NewManager создает новый менеджер WebSocket-соединений
func NewManager() *Manager {
	return &Manager{
		Broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[*Client]bool),
	}
}

// Run запускает работу менеджера
func (manager *Manager) Run() {
	for {
		select {
		case client := <-manager.Register:
			manager.Clients[client] = true
			log.Printf("👤 Подписчик %s подключился", client.RemoteAddr)

		case client := <-manager.Unregister:
			if _, ok := manager.Clients[client]; ok {
				delete(manager.Clients, client)
				close(client.Send)
				log.Printf("👤 Подписчик %s отключился", client.RemoteAddr)
			}

		case message := <-manager.Broadcast:
			// Рассылаем сообщение всем подключенным подписчикам
			manager.broadcast(message)
		}
	}
}

// broadcast отправляет сообщение всем подключенным подписчикам
func (manager *Manager) broadcast(message []byte) {
	for client := range manager.Clients {
		select {
		case client.Send <- message:
		default:
			close(client.Send)
			delete(manager.Clients, client)
		}
	}
}

// PublishProgress сериализует событие прогона и ставит его в очередь рассылки.
// Отправка неблокирующая, события никогда не задерживают сам ETL-процесс.
func (manager *Manager) PublishProgress(event ProgressEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Ошибка сериализации события прогона: %v", err)
		return
	}

	select {
	case manager.Broadcast <- data:
	default:
		log.Println("⚠️ Очередь рассылки переполнена, событие отброшено")
	}
}
