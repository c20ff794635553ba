// websocket/client.go
package websocket

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// Client подписчик на события ETL через WebSocket
type Client struct {
	RemoteAddr string
	Socket     *websocket.Conn
	Send       chan []byte
	Manager    *Manager
}

// readPump читает входящие сообщения для отслеживания закрытия соединения.
// Подписчики ничего не отправляют, поэтому содержимое игнорируется.
func (c *Client) readPump() {
	defer func() {
		c.Manager.Unregister <- c
		c.Socket.Close()
	}()

	c.Socket.SetReadLimit(maxMessageSize)
	c.Socket.SetReadDeadline(time.Now().Add(pongWait))
	c.Socket.SetPongHandler(func(string) error {
		c.Socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Socket.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Неожиданное закрытие соединения %s: %v", c.RemoteAddr, err)
			}
			return
		}
	}
}

// writePump отвечает за отправку сообщений подписчику
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		// Обработка паники при закрытии канала
		if r := recover(); r != nil {
			log.Printf("Паника при отправке сообщений подписчику %s: %v", c.RemoteAddr, r)
		}

		ticker.Stop()

		// Безопасно закрываем соединение
		c.Socket.Close()

		log.Printf("Завершение writePump для подписчика %s", c.RemoteAddr)
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Канал закрыт
				c.Socket.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// Отправляем каждое событие отдельным сообщением, чтобы клиент
			// мог разбирать их как самостоятельные JSON-документы
			if err := c.Socket.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

			n := len(c.Send)
			for i := 0; i < n; i++ {
				message := <-c.Send
				if err := c.Socket.WriteMessage(websocket.TextMessage, message); err != nil {
					return
				}
			}
		case <-ticker.C:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
