package canvas

import (
	"socketCanvas/internal/models"
)

type CanvasSocketHub struct {
	// [identity] => *SocketClient
	Clients map[string]*models.SocketClient
}
