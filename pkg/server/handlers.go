package server

import (
	"Civix/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	Office       *handler.Office
	Review       *handler.Review
	Notification *handler.Notification
	Stats        *handler.Stats
	Moderation   *handler.Moderation
}
