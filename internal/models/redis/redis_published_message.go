package models

const REDIS_CHANNEL_CANVAS = "canvas_channel"

type RedisPublishedMessage struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}
