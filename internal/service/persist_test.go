package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
)

// recordingSaver запоминает последние сохранённые снимки в виде JSON
type recordingSaver struct {
	mu           sync.Mutex
	catalog      []byte
	availability []byte
	content      []byte
	saves        int
	err          error
}

func (r *recordingSaver) record(dst *[]byte, v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.err != nil {
		return r.err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	*dst = data
	return nil
}

func (r *recordingSaver) SaveContent(_ context.Context, content *model.SiteContent) error {
	return r.record(&r.content, content)
}

func (r *recordingSaver) SaveCatalog(_ context.Context, catalog *model.Catalog) error {
	return r.record(&r.catalog, catalog)
}

func (r *recordingSaver) SaveAvailability(_ context.Context, availability *model.Availability) error {
	return r.record(&r.availability, availability)
}

func (r *recordingSaver) savedCatalog() *model.Catalog {
	var c model.Catalog
	if err := json.Unmarshal(r.catalog, &c); err != nil {
		panic(err)
	}
	return &c
}

func (r *recordingSaver) savedAvailability() *model.Availability {
	var a model.Availability
	if err := json.Unmarshal(r.availability, &a); err != nil {
		panic(err)
	}
	return &a
}

var errSaveFailed = errors.New("disk full")
