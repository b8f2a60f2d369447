package split

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Benjamin-taro/spliting-the-bill/internal/extract"
	"github.com/Benjamin-taro/spliting-the-bill/internal/menu"
)

// Archiver stores raw receipt images for later inspection.
type Archiver interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	menu    *menu.Menu
	store   *Store
	client  extract.Client
	archive Archiver // nil when archival is disabled
}

func NewService(m *menu.Menu, store *Store, client extract.Client, archive Archiver) *Service {
	return &Service{
		menu:    m,
		store:   store,
		client:  client,
		archive: archive,
	}
}

// --------------------------------------------------
// Session creation (extraction boundary)
// --------------------------------------------------

// CreateFromImage runs the full extraction flow: archive the image,
// call the vision model, parse strictly, and only then create a
// session. A failing extraction leaves no session behind.
func (s *Service) CreateFromImage(ctx context.Context, image []byte, filename string) (Session, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	// Best-effort archival; never blocks extraction.
	if s.archive != nil {
		key := fmt.Sprintf("receipts/%s%s", uuid.New().String(), ext)
		if _, err := s.archive.Upload(ctx, key, bytes.NewReader(image), mimeType); err != nil {
			log.Printf("receipt archival failed: %v", err)
		}
	}

	raw, err := s.client.ExtractReceipt(ctx, image, mimeType)
	if err != nil {
		return Session{}, err
	}

	rec, err := extract.Parse(raw)
	if err != nil {
		return Session{}, err
	}

	return s.store.Create(NewSession(s.menu, rec)), nil
}

// CreateFromRecord loads an already-extracted record, bypassing the
// image step. The same strict parse applies.
func (s *Service) CreateFromRecord(raw []byte) (Session, error) {
	rec, err := extract.Parse(string(raw))
	if err != nil {
		return Session{}, err
	}
	return s.store.Create(NewSession(s.menu, rec)), nil
}

// --------------------------------------------------
// Core operations
// --------------------------------------------------

func (s *Service) Get(id string) (Session, error) {
	return s.store.Get(id)
}

func (s *Service) AddBlank(id string) (Session, error) {
	return s.store.Update(id, func(cur Session) (Session, error) {
		return cur.AddBlank(), nil
	})
}

func (s *Service) EditItem(id string, index int, edit ItemEdit) (Session, error) {
	return s.store.Update(id, func(cur Session) (Session, error) {
		return cur.EditItem(s.menu, index, edit)
	})
}

func (s *Service) RemoveItem(id string, index int) (Session, error) {
	return s.store.Update(id, func(cur Session) (Session, error) {
		return cur.RemoveItem(index)
	})
}

func (s *Service) SetParticipants(id string, n int) (Session, error) {
	return s.store.Update(id, func(cur Session) (Session, error) {
		return cur.SetParticipants(n)
	})
}

func (s *Service) SetOCRSubtotal(id string, v float64) (Session, error) {
	return s.store.Update(id, func(cur Session) (Session, error) {
		return cur.SetOCRSubtotal(v), nil
	})
}

func (s *Service) Confirm(id string) (Session, error) {
	return s.store.Update(id, func(cur Session) (Session, error) {
		return cur.Confirm()
	})
}

func (s *Service) Back(id string) (Session, error) {
	return s.store.Update(id, func(cur Session) (Session, error) {
		return cur.Back(), nil
	})
}

func (s *Service) SetAssignment(id string, itemIndex, personIndex, value int) (Session, error) {
	return s.store.Update(id, func(cur Session) (Session, error) {
		return cur.SetAssignment(itemIndex, personIndex, value)
	})
}

func (s *Service) Totals(id string) (Totals, error) {
	cur, err := s.store.Get(id)
	if err != nil {
		return Totals{}, err
	}
	return cur.Totals(), nil
}
