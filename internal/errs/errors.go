package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody     = Error("invalid request body")
	ErrInvalidToken           = Error("invalid token")
	ErrInvalidParams          = Error("invalid params")
	ErrUnauthorized           = Error("unauthorized")
	ErrCursorAlreadyConnected = Error("cursor already exists for this identity")
	ErrCursorNotFound         = Error("cursor not found")
	ErrPointNotFound          = Error("canvas point not found")
	ErrStateNotFound          = Error("canvas state not found")
	ErrStateNameEmpty         = Error("state name is empty")
	ErrStateNameTooLong       = Error("state name is too long")
	ErrInvalidStateId         = Error("invalid state id")
	ErrExportFailed           = Error("canvas export failed")
)
