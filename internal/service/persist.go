package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
)

// persistTimeout ограничивает запись снимка после мутации
const persistTimeout = 5 * time.Second

// SnapshotSaver - то, что нужно хранилищам для записи снимков
type SnapshotSaver interface {
	SaveContent(ctx context.Context, content *model.SiteContent) error
	SaveCatalog(ctx context.Context, catalog *model.Catalog) error
	SaveAvailability(ctx context.Context, availability *model.Availability) error
}

func persistContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), persistTimeout)
}
