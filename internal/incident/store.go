// internal/incident/store.go
// Store in-memory untuk koleksi insiden: load sekali saat startup, read-only selamanya

package incident

import (
	"context"
	"fmt"
)

// Source adalah abstraksi sumber data insiden (file JSON, MySQL, dll).
type Source interface {
	FetchAll(ctx context.Context) ([]Incident, error)
}

// Pagination metadata untuk respons list.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Store menampung koleksi insiden immutable. Aman dibaca konkuren tanpa lock
// karena tidak ada mutasi setelah NewStore selesai.
type Store struct {
	records []Incident
	byID    map[string]int // index by ID dan IncidentNumber
}

// NewStore menarik seluruh record dari source dan membangun index lookup.
// Error dari source bersifat fatal: proses tidak boleh serve tanpa data.
func NewStore(ctx context.Context, src Source) (*Store, error) {
	records, err := src.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load incidents: %w", err)
	}

	byID := make(map[string]int, len(records)*2)
	for i, rec := range records {
		if rec.ID != "" {
			if _, exists := byID[rec.ID]; !exists {
				byID[rec.ID] = i
			}
		}
		if rec.IncidentNumber != "" {
			if _, exists := byID[rec.IncidentNumber]; !exists {
				byID[rec.IncidentNumber] = i
			}
		}
	}

	return &Store{records: records, byID: byID}, nil
}

// All mengembalikan seluruh koleksi. Caller tidak boleh memodifikasi slice.
func (s *Store) All() []Incident { return s.records }

func (s *Store) Len() int { return len(s.records) }

// Lookup mencari record berdasarkan ID atau incident_number.
// Return nil jika tidak ditemukan (bukan error).
func (s *Store) Lookup(id string) *Incident {
	if i, ok := s.byID[id]; ok {
		rec := s.records[i]
		return &rec
	}
	return nil
}

// Page memotong koleksi untuk halaman tertentu. page 1-indexed;
// bounds di-clamp ke panjang koleksi sehingga page di luar range
// menghasilkan slice kosong, bukan panic.
func (s *Store) Page(page, limit int) ([]Incident, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 100
	}
	return PageSlice(s.records, page, limit)
}

// PageSlice seperti Page tapi atas slice arbitrer (dipakai untuk hasil filter).
func PageSlice(records []Incident, page, limit int) ([]Incident, Pagination) {
	total := len(records)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return records[start:end], Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
