package msgs

const (
	MsgOperationSuccessful = "operation successful"
	MsgOperationFailed     = "operation failed"
	MsgYouMustLoginFirst   = "you must login first"
	MsgCanvasSaved         = "canvas saved"
	MsgCanvasExported      = "canvas exported"
)
