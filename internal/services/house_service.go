package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain/models"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/pagination"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/repositories"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/utils"
)

// HouseService is the listing query engine: it composes the optional
// attribute filters with the ownership scope and wraps results in the
// pagination envelope.
//
// Count and windowed fetch run as two independent reads; under concurrent
// writes they can drift by a row. That weak consistency is accepted, listing
// pages are not snapshots.
type HouseService struct {
	HouseRepo repositories.HouseRepository
	RequestID string
}

// FindHouses returns one filtered, bounded page of the public catalog. An
// empty result is a valid outcome, never an error.
func (s HouseService) FindHouses(f repositories.HouseFilter, page, limit int) (pagination.Envelope[models.House], error) {
	return s.find(f, "", page, limit)
}

// FindHousesByOwner is FindHouses restricted to the acting admin's listings.
func (s HouseService) FindHousesByOwner(adminID string, f repositories.HouseFilter, page, limit int) (pagination.Envelope[models.House], error) {
	return s.find(f, adminID, page, limit)
}

func (s HouseService) find(f repositories.HouseFilter, adminID string, page, limit int) (pagination.Envelope[models.House], error) {
	total, err := s.HouseRepo.Count(f, adminID)
	if err != nil {
		return pagination.Envelope[models.House]{}, domain.InternalError{Msg: "gagal menghitung data rumah", Err: err}
	}

	limit = pagination.ValidateLimit(limit)
	page = pagination.ValidatePage(page, total, limit)

	houses, err := s.HouseRepo.Find(f, adminID, limit, pagination.Offset(page, limit))
	if err != nil {
		return pagination.Envelope[models.House]{}, domain.InternalError{Msg: "gagal mengambil data rumah", Err: err}
	}

	utils.LogEvent(s.RequestID, "houses", "find", fmt.Sprintf("total=%d page=%d limit=%d", total, page, limit))
	return pagination.Paginate(houses, total, page, limit), nil
}

// GetHouse loads one listing by id.
func (s HouseService) GetHouse(id int64) (models.House, error) {
	h, err := s.HouseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.House{}, domain.NotFoundError{Resource: "house"}
		}
		return models.House{}, domain.InternalError{Msg: "gagal mengambil data rumah", Err: err}
	}
	return h, nil
}
