// Copyright (C) 2025 siteguard-sec
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/shared"
	"gorm.io/gorm"
)

// libraryService answers canonical-name lookups against the seeded control
// and threat catalogs. The catalogs are read-only at scoring time and
// looked up dozens of times per pass, so results are cached.
type libraryService struct {
	controlLibraryRepository shared.ControlLibraryRepository
	threatLibraryRepository  shared.ThreatLibraryRepository
	cache                    *lru.Cache[string, bool]
}

func NewLibraryService(controlLibraryRepository shared.ControlLibraryRepository, threatLibraryRepository shared.ThreatLibraryRepository) *libraryService {
	cache, _ := lru.New[string, bool](1024)
	return &libraryService{
		controlLibraryRepository: controlLibraryRepository,
		threatLibraryRepository:  threatLibraryRepository,
		cache:                    cache,
	}
}

// HasCanonicalControl answers for the exact spelling: the catalog lookup
// matches the raw name, so the cache must too.
func (s *libraryService) HasCanonicalControl(name string) (bool, error) {
	key := "control:" + name
	if hit, ok := s.cache.Get(key); ok {
		return hit, nil
	}

	_, err := s.controlLibraryRepository.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.cache.Add(key, false)
			return false, nil
		}
		return false, err
	}

	s.cache.Add(key, true)
	return true, nil
}

func (s *libraryService) HasCanonicalThreat(name string) (bool, error) {
	key := "threat:" + name
	if hit, ok := s.cache.Get(key); ok {
		return hit, nil
	}

	_, err := s.threatLibraryRepository.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.cache.Add(key, false)
			return false, nil
		}
		return false, err
	}

	s.cache.Add(key, true)
	return true, nil
}

// SeedLibraries upserts the canonical catalogs by natural key and resets
// the lookup cache. Safe to retry in full.
func (s *libraryService) SeedLibraries(controls []models.ControlLibraryEntry, threats []models.ThreatLibraryEntry) error {
	if err := s.controlLibraryRepository.UpsertByName(nil, controls); err != nil {
		return err
	}
	if err := s.threatLibraryRepository.UpsertByName(nil, threats); err != nil {
		return err
	}
	s.cache.Purge()
	return nil
}
