package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/lephucuong-hcmut/hcmut-booking-room/models"
)

// ScheduleEvent is pushed to every connected client whenever a booking
// changes state, so schedule views can refresh without polling.
type ScheduleEvent struct {
	Type            string `json:"type"` // created, cancelled, checked_in, checked_out
	BookingID       string `json:"booking_id"`
	RoomID          string `json:"room_id"`
	Date            string `json:"date"`
	SelectedPeriods []int  `json:"selected_periods"`
	Status          string `json:"status"`
}

var clients = make(map[*websocket.Conn]bool)
var clientsMu sync.RWMutex
var Register = make(chan *websocket.Conn)
var Unregister = make(chan *websocket.Conn)
var Broadcast = make(chan *ScheduleEvent, 32)

func RunHub() {
	for {
		select {
		case conn := <-Register:
			clientsMu.Lock()
			clients[conn] = true
			clientsMu.Unlock()
		case conn := <-Unregister:
			clientsMu.Lock()
			delete(clients, conn)
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			var dead []*websocket.Conn
			for conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending schedule event: %v", err)
					conn.Close()
					dead = append(dead, conn)
				}
			}
			clientsMu.RUnlock()
			if len(dead) > 0 {
				clientsMu.Lock()
				for _, conn := range dead {
					delete(clients, conn)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// BroadcastBookingEvent queues a schedule event without blocking the request
// path; events are dropped if the hub is backed up.
func BroadcastBookingEvent(eventType string, booking *models.Booking) {
	event := &ScheduleEvent{
		Type:            eventType,
		BookingID:       booking.BookingID,
		RoomID:          booking.RoomID,
		Date:            booking.Date,
		SelectedPeriods: booking.SelectedPeriods,
		Status:          booking.Status,
	}
	select {
	case Broadcast <- event:
	default:
		log.Println("Schedule event dropped: broadcast channel full")
	}
}

// ServeSchedule keeps a client connection registered until it disconnects.
// Clients only listen; inbound frames are discarded.
func ServeSchedule(conn *websocket.Conn) {
	Register <- conn
	defer func() {
		Unregister <- conn
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
