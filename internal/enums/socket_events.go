package enums

// Events sent by clients.
const (
	SOCKET_EVENT_UPDATE_CURSOR = "update_cursor"
	SOCKET_EVENT_ADD_POINT     = "add_point"
	SOCKET_EVENT_ERASE         = "erase"
	SOCKET_EVENT_CLEAR         = "clear"
	SOCKET_EVENT_SAVE_CANVAS   = "save_canvas"
	SOCKET_EVENT_LOAD_CANVAS   = "load_canvas"
	SOCKET_EVENT_DELETE_STATE  = "delete_state"
)

// Events broadcast to clients after a commit.
const (
	SOCKET_EVENT_CURSOR_UPDATED = "cursor_updated"
	SOCKET_EVENT_CURSOR_REMOVED = "cursor_removed"
	SOCKET_EVENT_POINT_ADDED    = "point_added"
	SOCKET_EVENT_POINTS_ERASED  = "points_erased"
	SOCKET_EVENT_CANVAS_CLEARED = "canvas_cleared"
	SOCKET_EVENT_CANVAS_SAVED   = "canvas_saved"
	SOCKET_EVENT_CANVAS_LOADED  = "canvas_loaded"
	SOCKET_EVENT_STATE_DELETED  = "state_deleted"
)
