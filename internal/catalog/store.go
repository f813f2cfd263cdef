package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/eme-collab/consultor-inteligente-api/internal/model"
)

// Store holds the phone catalog and the retailer lists, loaded once at
// startup and read-only afterwards.
type Store struct {
	phones   []model.Phone
	anchors  []model.Retailer
	rotating []model.Retailer
}

func Load(catalogPath, retailersPath string) (*Store, error) {
	phones, err := loadPhones(catalogPath)
	if err != nil {
		return nil, err
	}

	anchors, rotating, err := loadRetailers(retailersPath)
	if err != nil {
		return nil, err
	}

	return &Store{phones: phones, anchors: anchors, rotating: rotating}, nil
}

func loadPhones(path string) ([]model.Phone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var phones []model.Phone
	if err := json.Unmarshal(data, &phones); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if len(phones) == 0 {
		return nil, fmt.Errorf("catalog %s has no phones", path)
	}

	return phones, nil
}

func loadRetailers(path string) ([]model.Retailer, []model.Retailer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read retailers: %w", err)
	}

	var parsed struct {
		Ancoras   []model.Retailer `json:"ancoras"`
		Rotativas []model.Retailer `json:"rotativas"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, nil, fmt.Errorf("parse retailers: %w", err)
	}

	return parsed.Ancoras, parsed.Rotativas, nil
}

func (s *Store) Phones() []model.Phone {
	return s.phones
}

func (s *Store) Anchors() []model.Retailer {
	return s.anchors
}

func (s *Store) Rotating() []model.Retailer {
	return s.rotating
}

func (s *Store) Len() int {
	return len(s.phones)
}
