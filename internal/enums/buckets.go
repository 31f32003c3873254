package enums

const (
	FILE_BUCKET_CANVAS_EXPORTS = "canvas-exports"
)
