package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socketCanvas/configs"
	"socketCanvas/internal/errs"
	"socketCanvas/internal/models"
	"socketCanvas/internal/msgs"
	"socketCanvas/internal/services"
)

type RestHandler struct {
	config          *configs.Config
	cursorService   *services.CursorService
	canvasService   *services.CanvasService
	snapshotService *services.SnapshotService
	exportService   *services.ExportService
}

func NewRestHandler(
	config *configs.Config,
	cursorService *services.CursorService,
	canvasService *services.CanvasService,
	snapshotService *services.SnapshotService,
	exportService *services.ExportService,
) *RestHandler {
	return &RestHandler{
		config:          config,
		cursorService:   cursorService,
		canvasService:   canvasService,
		snapshotService: snapshotService,
		exportService:   exportService,
	}
}

func (rh *RestHandler) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

// GetCanvas returns the live points and cursors so a freshly connected client
// can paint the current canvas before the event stream takes over.
func (rh *RestHandler) GetCanvas(ctx *gin.Context) {
	points, err := rh.canvasService.GetPoints()
	if err != nil {
		log.Println("Error reading canvas points:", err)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	cursors, err := rh.cursorService.GetCursors()
	if err != nil {
		log.Println("Error reading cursors:", err)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data: gin.H{
			"points":  points,
			"cursors": cursors,
		},
	})
}

func (rh *RestHandler) GetStates(ctx *gin.Context) {
	states, err := rh.snapshotService.GetStates()
	if err != nil {
		log.Println("Error reading canvas states:", err)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    states,
	})
}

// ExportState renders a saved state to PDF, uploads it and returns its URL.
func (rh *RestHandler) ExportState(ctx *gin.Context) {
	stateID, err := rh.getStateIdFromParam(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidStateId},
		})
		return
	}

	url, outcome, err := rh.exportService.ExportStatePDF(stateID)
	if err != nil {
		log.Println("Error exporting canvas state:", err)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrExportFailed},
		})
		return
	}
	if outcome == models.OutcomeNotFound {
		ctx.AbortWithStatusJSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrStateNotFound},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgCanvasExported,
		Data: gin.H{
			"url": url,
		},
	})
}

func (rh *RestHandler) getStateIdFromParam(ctx *gin.Context) (uint64, error) {
	stateIdStr := ctx.Param("stateId")
	if stateIdStr == "" {
		return 0, errs.ErrInvalidStateId
	}
	stateId, err := strconv.ParseUint(stateIdStr, 10, 64)
	if err != nil || stateId == 0 {
		return 0, errs.ErrInvalidStateId
	}
	return stateId, nil
}
