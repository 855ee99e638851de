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
	"testing"

	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeControlLibraryRepository struct {
	stubRepository[models.ControlLibraryEntry]
	entries map[string]models.ControlLibraryEntry
	lookups int
}

func (f *fakeControlLibraryRepository) FindByName(name string) (models.ControlLibraryEntry, error) {
	f.lookups++
	entry, ok := f.entries[name]
	if !ok {
		return models.ControlLibraryEntry{}, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (f *fakeControlLibraryRepository) UpsertByName(tx shared.DB, entries []models.ControlLibraryEntry) error {
	if f.entries == nil {
		f.entries = map[string]models.ControlLibraryEntry{}
	}
	for _, e := range entries {
		f.entries[e.Name] = e
	}
	return nil
}

type fakeThreatLibraryRepository struct {
	stubRepository[models.ThreatLibraryEntry]
	entries map[string]models.ThreatLibraryEntry
}

func (f *fakeThreatLibraryRepository) FindByName(name string) (models.ThreatLibraryEntry, error) {
	entry, ok := f.entries[name]
	if !ok {
		return models.ThreatLibraryEntry{}, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (f *fakeThreatLibraryRepository) UpsertByName(tx shared.DB, entries []models.ThreatLibraryEntry) error {
	if f.entries == nil {
		f.entries = map[string]models.ThreatLibraryEntry{}
	}
	for _, e := range entries {
		f.entries[e.Name] = e
	}
	return nil
}

func TestLibraryService(t *testing.T) {
	t.Run("caches repeated lookups", func(t *testing.T) {
		controls := &fakeControlLibraryRepository{entries: map[string]models.ControlLibraryEntry{
			"Panic Buttons": {Name: "Panic Buttons"},
		}}
		service := NewLibraryService(controls, &fakeThreatLibraryRepository{})

		for range 5 {
			ok, err := service.HasCanonicalControl("Panic Buttons")
			require.NoError(t, err)
			assert.True(t, ok)
		}
		assert.Equal(t, 1, controls.lookups)
	})

	t.Run("a missing entry is an answer, not an error", func(t *testing.T) {
		controls := &fakeControlLibraryRepository{}
		service := NewLibraryService(controls, &fakeThreatLibraryRepository{})

		ok, err := service.HasCanonicalControl("Moat With Drawbridge")
		require.NoError(t, err)
		assert.False(t, ok)

		// negative answers are cached too
		_, _ = service.HasCanonicalControl("Moat With Drawbridge")
		assert.Equal(t, 1, controls.lookups)
	})

	t.Run("spellings are cached independently", func(t *testing.T) {
		controls := &fakeControlLibraryRepository{entries: map[string]models.ControlLibraryEntry{
			"Panic Buttons": {Name: "Panic Buttons"},
		}}
		service := NewLibraryService(controls, &fakeThreatLibraryRepository{})

		ok, err := service.HasCanonicalControl("Panic Buttons")
		require.NoError(t, err)
		require.True(t, ok)

		// the catalog matches the raw name; a differently cased spelling
		// must not reuse the canonical spelling's cache entry
		ok, err = service.HasCanonicalControl("panic buttons")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 2, controls.lookups)
	})

	t.Run("seeding resets the cache", func(t *testing.T) {
		controls := &fakeControlLibraryRepository{}
		service := NewLibraryService(controls, &fakeThreatLibraryRepository{})

		ok, err := service.HasCanonicalControl("Panic Buttons")
		require.NoError(t, err)
		require.False(t, ok)

		require.NoError(t, service.SeedLibraries(
			[]models.ControlLibraryEntry{{Name: "Panic Buttons"}},
			[]models.ThreatLibraryEntry{{Name: "Theft"}},
		))

		ok, err = service.HasCanonicalControl("Panic Buttons")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = service.HasCanonicalThreat("Theft")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("default libraries cover every scoring checklist name", func(t *testing.T) {
		controls := &fakeControlLibraryRepository{}
		threats := &fakeThreatLibraryRepository{}
		service := NewLibraryService(controls, threats)
		require.NoError(t, service.SeedLibraries(DefaultControlLibrary(), DefaultThreatLibrary()))

		for _, name := range []string{
			"Access Control System", "Panic Buttons", "Active Shooter Response Training",
			"Redundant Power Feeds", "Mantrap Entry Portal", "Hazardous Material Storage Security",
			"Electronic Article Surveillance", "Dock Door Alarm Sensors", "Personal Protection Detail",
		} {
			ok, err := service.HasCanonicalControl(name)
			require.NoError(t, err)
			assert.True(t, ok, "missing control %q", name)
		}

		for _, name := range []string{"Kidnapping", "Burglary / Home Invasion", "Stalking / Fixated Person", "Ambush / Vehicle Attack", "Theft", "Intrusion", "Burglary"} {
			ok, err := service.HasCanonicalThreat(name)
			require.NoError(t, err)
			assert.True(t, ok, "missing threat %q", name)
		}
	})
}
