package repositories

import (
	"errors"

	"remit/internal/models"

	"gorm.io/gorm"
)

// ErrRecordTerminal is returned on an attempt to update a record that
// already reached a terminal state.
var ErrRecordTerminal = errors.New("transaction record is terminal")

// ErrRecordNotFound is returned when no record matches a lookup.
var ErrRecordNotFound = errors.New("transaction record not found")

// TransactionStore persists TransactionRecord rows.
type TransactionStore struct {
	db *gorm.DB
}

// NewTransactionStore creates a store bound to the given database.
func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// Create appends a new record. The saga calls this before any remote
// call so the attempt is on disk even if the process dies mid-flight.
func (s *TransactionStore) Create(rec *models.TransactionRecord) error {
	return s.db.Create(rec).Error
}

// Update re-persists a record the saga mutated. Terminal records are
// immutable; updating one is a programming error surfaced loudly.
func (s *TransactionStore) Update(rec *models.TransactionRecord) error {
	var current models.TransactionRecord
	if err := s.db.Select("blocked", "succeeded").First(&current, rec.ID).Error; err != nil {
		return err
	}
	if current.Terminal() {
		return ErrRecordTerminal
	}
	return s.db.Save(rec).Error
}

// GetByReference looks a record up by its external reference id.
func (s *TransactionStore) GetByReference(referenceID string) (*models.TransactionRecord, error) {
	var rec models.TransactionRecord
	err := s.db.Where("reference_id = ?", referenceID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByLogin returns records where the login is either party, newest
// first, with pagination.
func (s *TransactionStore) ListByLogin(login string, limit, offset int) ([]models.TransactionRecord, error) {
	var recs []models.TransactionRecord
	err := s.db.Where("from_login = ? OR to_login = ?", login, login).
		Limit(limit).Offset(offset).Order("created_at DESC").Find(&recs).Error
	return recs, err
}
