package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"socketCanvas/configs"
	"socketCanvas/internal/enums"
	"socketCanvas/internal/errs"
	"socketCanvas/internal/models"
	canvasModels "socketCanvas/internal/models/canvas"
	redisModels "socketCanvas/internal/models/redis"
	"socketCanvas/internal/msgs"
	"socketCanvas/internal/services"
	"socketCanvas/internal/utils"
	"socketCanvas/internal/validators"
)

// SocketCanvasHandler is the gateway between connected clients and the canvas
// operations. Each client action maps to exactly one atomic operation; the
// committed row changes are published to redis and fanned out to every client
// in the hub, which is the only way other clients observe a mutation.
type SocketCanvasHandler struct {
	mu              sync.Mutex
	ctx             context.Context
	upgrader        websocket.Upgrader
	hub             *canvasModels.CanvasSocketHub
	Redis           *redis.Client
	config          *configs.Config
	cursorService   *services.CursorService
	canvasService   *services.CanvasService
	snapshotService *services.SnapshotService
}

func NewSocketCanvasHandler(
	redis *redis.Client,
	ctx context.Context,
	config *configs.Config,
	cursorService *services.CursorService,
	canvasService *services.CanvasService,
	snapshotService *services.SnapshotService,
) *SocketCanvasHandler {
	sch := &SocketCanvasHandler{
		ctx:             ctx,
		mu:              sync.Mutex{},
		Redis:           redis,
		config:          config,
		cursorService:   cursorService,
		canvasService:   canvasService,
		snapshotService: snapshotService,
		hub: &canvasModels.CanvasSocketHub{
			Clients: make(map[string]*models.SocketClient),
		},
	}
	go sch.HandleRedisMessages()
	return sch
}

func (sch *SocketCanvasHandler) HandleSocketCanvasRoute(ctx *gin.Context) {
	// Authenticate user
	claims, err := sch.authorize(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	sch.HandleConnections(ctx, claims)
}

func (sch *SocketCanvasHandler) authorize(ctx *gin.Context) (*models.Claims, error) {
	jwtToken := ctx.Request.Header.Get("Authorization")
	if jwtToken == "" {
		// Browsers cannot set headers on websocket upgrade requests
		jwtToken = ctx.Query("token")
	}
	if jwtToken == "" {
		return nil, errs.ErrUnauthorized
	}
	claims, err := utils.VerifyToken(jwtToken, utils.GetJwtKey(sch.config))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (sch *SocketCanvasHandler) upgradeHttpToWs(ctx *gin.Context) (*websocket.Conn, error) {
	sch.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	ws, err := sch.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return nil, err
	}
	return ws, nil
}

func (sch *SocketCanvasHandler) HandleConnections(ctx *gin.Context, claims *models.Claims) {
	// Upgrade HTTP connection to WebSocket
	ws, err := sch.upgradeHttpToWs(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	identity := claims.Identity

	// Create the cursor row; this is what other clients see as "user joined"
	cursor, outcome, err := sch.cursorService.Connect(identity, time.Now())
	if err != nil {
		log.Printf("Error connecting cursor for %v: %v", identity, err)
		return
	}
	if outcome == models.OutcomeAlreadyExists {
		log.Printf("Cursor already exists for identity %v", identity)
	} else {
		sch.publishEvent(enums.SOCKET_EVENT_CURSOR_UPDATED, cursor)
	}

	// Handle disconnection
	sch.handleDisconnectedClient(ws, identity)

	// Add client to hub
	sch.addClientToHub(identity, ws)

	// Handle incoming messages
	sch.handleIncomingMessagesWithEvent(ws, claims)
}

func (sch *SocketCanvasHandler) handleDisconnectedClient(ws *websocket.Conn, identity string) {
	ws.SetCloseHandler(func(code int, text string) error {
		sch.disconnectIdentity(identity)
		return nil
	})
}

func (sch *SocketCanvasHandler) disconnectIdentity(identity string) {
	outcome, err := sch.cursorService.Disconnect(identity)
	if err != nil {
		log.Printf("Error disconnecting cursor for %v: %v", identity, err)
	} else if outcome == models.OutcomeOK {
		sch.publishEvent(enums.SOCKET_EVENT_CURSOR_REMOVED, models.CursorRemovedPayload{Identity: identity})
	}
	sch.deleteClientFromHub(identity)
}

func (sch *SocketCanvasHandler) addClientToHub(identity string, ws *websocket.Conn) {
	sch.mu.Lock()
	sch.hub.Clients[identity] = &models.SocketClient{
		Conn:     ws,
		Identity: identity,
	}
	sch.mu.Unlock()
}

func (sch *SocketCanvasHandler) deleteClientFromHub(identity string) {
	sch.mu.Lock()
	delete(sch.hub.Clients, identity)
	sch.mu.Unlock()
}

func (sch *SocketCanvasHandler) handleIncomingMessagesWithEvent(ws *websocket.Conn, claims *models.Claims) {
	for {
		// Read message from client
		var event models.CanvasSocketEvent
		err := ws.ReadJSON(&event)
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				sch.disconnectIdentity(claims.Identity)
				break
			}
			log.Printf("handleIncomingMessagesWithEvent / Error reading json: %v", err)
			sch.disconnectIdentity(claims.Identity)
			break
		}

		// Handle event
		if errs := sch.handleEvent(claims.Identity, &event); len(errs) > 0 {
			log.Printf("handleIncomingMessagesWithEvent - Error while handling %v event: %v", event.Event, errs)
		}
	}
}

func (sch *SocketCanvasHandler) handleEvent(identity string, event *models.CanvasSocketEvent) []error {
	switch event.Event {
	case enums.SOCKET_EVENT_UPDATE_CURSOR:
		return sch.handleUpdateCursorEvent(identity, event.Payload)
	case enums.SOCKET_EVENT_ADD_POINT:
		return sch.handleAddPointEvent(identity, event.Payload)
	case enums.SOCKET_EVENT_ERASE:
		return sch.handleEraseEvent(event.Payload)
	case enums.SOCKET_EVENT_CLEAR:
		return sch.handleClearEvent(identity)
	case enums.SOCKET_EVENT_SAVE_CANVAS:
		return sch.handleSaveCanvasEvent(identity, event.Payload)
	case enums.SOCKET_EVENT_LOAD_CANVAS:
		return sch.handleLoadCanvasEvent(identity, event.Payload)
	case enums.SOCKET_EVENT_DELETE_STATE:
		return sch.handleDeleteStateEvent(identity, event.Payload)
	default:
		log.Printf("Unknown event: %v", event.Event)
		return nil
	}
}

func (sch *SocketCanvasHandler) handleUpdateCursorEvent(identity string, payload json.RawMessage) []error {
	var body models.UpdateCursorPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return []error{err}
	}
	cursor, outcome, err := sch.cursorService.UpdateCursor(identity, body.X, body.Y, body.Color, body.Size, time.Now())
	if err != nil {
		return []error{err}
	}
	if outcome != models.OutcomeOK {
		// Cursor rows only exist while connected; nothing to broadcast
		return nil
	}
	return sch.publishEvent(enums.SOCKET_EVENT_CURSOR_UPDATED, cursor)
}

func (sch *SocketCanvasHandler) handleAddPointEvent(identity string, payload json.RawMessage) []error {
	var body models.AddPointPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return []error{err}
	}
	point, err := sch.canvasService.AddPoint(identity, body.X, body.Y, body.Color, body.Size, time.Now())
	if err != nil {
		return []error{err}
	}
	return sch.publishEvent(enums.SOCKET_EVENT_POINT_ADDED, point)
}

func (sch *SocketCanvasHandler) handleEraseEvent(payload json.RawMessage) []error {
	var body models.ErasePayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return []error{err}
	}
	erased, err := sch.canvasService.Erase(body.X, body.Y, body.Radius)
	if err != nil {
		return []error{err}
	}
	if len(erased) == 0 {
		return nil
	}
	return sch.publishEvent(enums.SOCKET_EVENT_POINTS_ERASED, models.PointsErasedPayload{PointIDs: erased})
}

func (sch *SocketCanvasHandler) handleClearEvent(identity string) []error {
	if err := sch.canvasService.Clear(); err != nil {
		return []error{err}
	}
	return sch.publishEvent(enums.SOCKET_EVENT_CANVAS_CLEARED, models.CanvasClearedPayload{ClearedBy: identity})
}

func (sch *SocketCanvasHandler) handleSaveCanvasEvent(identity string, payload json.RawMessage) []error {
	var body models.SaveCanvasPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return []error{err}
	}
	if validationErrs := validators.ValidateStateName(body.Name); len(validationErrs) > 0 {
		return validationErrs
	}
	state, pointCount, err := sch.snapshotService.Save(body.Name, identity, time.Now())
	if err != nil {
		return []error{err}
	}
	return sch.publishEvent(enums.SOCKET_EVENT_CANVAS_SAVED, models.CanvasSavedPayload{
		State:      *state,
		PointCount: pointCount,
	})
}

func (sch *SocketCanvasHandler) handleLoadCanvasEvent(identity string, payload json.RawMessage) []error {
	var body models.LoadCanvasPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return []error{err}
	}
	points, outcome, err := sch.snapshotService.Load(body.StateID, identity, time.Now())
	if err != nil {
		return []error{err}
	}
	if outcome == models.OutcomeNotFound {
		log.Printf("Identity %v loaded unknown state %v, canvas cleared", identity, body.StateID)
	}
	// The clear commits even when the state id is unknown, so clients must
	// hear about it either way.
	return sch.publishEvent(enums.SOCKET_EVENT_CANVAS_LOADED, models.CanvasLoadedPayload{
		StateID:  body.StateID,
		LoadedBy: identity,
		Points:   points,
	})
}

func (sch *SocketCanvasHandler) handleDeleteStateEvent(identity string, payload json.RawMessage) []error {
	var body models.DeleteStatePayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return []error{err}
	}
	outcome, err := sch.snapshotService.Delete(body.StateID, identity)
	if err != nil {
		return []error{err}
	}
	if outcome != models.OutcomeOK {
		// Unknown state or not the creator; drop silently, same as the
		// original behavior
		log.Printf("Delete of state %v by %v resolved as %v", body.StateID, identity, outcome)
		return nil
	}
	return sch.publishEvent(enums.SOCKET_EVENT_STATE_DELETED, models.StateDeletedPayload{StateID: body.StateID})
}

func (sch *SocketCanvasHandler) publishEvent(event string, payload any) []error {
	redisEvent := redisModels.RedisPublishedMessage{
		Event:   event,
		Payload: payload,
	}

	jsonEvent, err := json.Marshal(redisEvent)
	if err != nil {
		return []error{err}
	}
	if err := sch.PublishMessage(sch.Redis, redisModels.REDIS_CHANNEL_CANVAS, jsonEvent); err != nil {
		return []error{err}
	}
	return nil
}

func (sch *SocketCanvasHandler) HandleRedisMessages() {
	ch := sch.SubscribeToChannel(sch.Redis, redisModels.REDIS_CHANNEL_CANVAS)
	for msg := range ch {
		var event models.CanvasSocketEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("Error unmarshalling message: %v", err)
			continue
		}
		sch.SendEventToClients(event)
	}
}

func (sch *SocketCanvasHandler) SendEventToClients(event models.CanvasSocketEvent) {
	sch.mu.Lock()
	defer sch.mu.Unlock()
	for identity, client := range sch.hub.Clients {
		if err := client.Conn.WriteJSON(event); err != nil {
			log.Printf("Error writing json: %v", err)
			err := client.Conn.Close()
			if err != nil {
				return
			}
			delete(sch.hub.Clients, identity)
		}
	}
}

func (sch *SocketCanvasHandler) PublishMessage(redis *redis.Client, channel string, message []byte) error {
	return redis.Publish(sch.ctx, channel, message).Err()
}

func (sch *SocketCanvasHandler) SubscribeToChannel(redis *redis.Client, channel string) <-chan *redis.Message {
	pubsub := redis.Subscribe(sch.ctx, channel)
	_, err := pubsub.Receive(sch.ctx)
	if err != nil {
		log.Fatalf("Could not subscribe to channel: %v", err)
	}
	return pubsub.Channel()
}

func (sch *SocketCanvasHandler) WaitForShutdown(httpServer *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := httpServer.Shutdown(sch.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close all WebSocket connections
	sch.mu.Lock()
	for identity, client := range sch.hub.Clients {
		err := client.Conn.Close()
		if err != nil {
			return
		}
		delete(sch.hub.Clients, identity)
	}
	sch.mu.Unlock()

	log.Println("Server exiting")
}
