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
package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlName(t *testing.T) {
	t.Run("lowercases and collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "cctv surveillance system", ControlName("CCTV   Surveillance\tSystem"))
	})

	t.Run("collapses unicode dash variants to an ascii hyphen", func(t *testing.T) {
		assert.Equal(t, "24-7 monitoring", ControlName("24–7 Monitoring"))
		assert.Equal(t, "24-7 monitoring", ControlName("24—7 Monitoring"))
		assert.Equal(t, "24-7 monitoring", ControlName("24−7 Monitoring"))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "panic buttons", ControlName("  Panic Buttons  "))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{"CCTV — Surveillance  System", " Access–Control ", "badge  ACCESS logging"}
		for _, in := range inputs {
			once := ControlName(in)
			assert.Equal(t, once, ControlName(once))
		}
	})
}

func TestControlNamesMatch(t *testing.T) {
	t.Run("exact match after normalization", func(t *testing.T) {
		assert.True(t, ControlNamesMatch("CCTV Surveillance System", "cctv surveillance  system"))
	})

	t.Run("containment with long contained name matches", func(t *testing.T) {
		assert.True(t, ControlNamesMatch("Building-wide CCTV Surveillance System with retention", "CCTV Surveillance System"))
	})

	t.Run("short contained name does not match", func(t *testing.T) {
		// "cctv" is contained but far below the containment floor
		assert.False(t, ControlNamesMatch("CCTV", "CCTV Surveillance System"))
	})

	t.Run("names below the minimum length never match", func(t *testing.T) {
		assert.False(t, ControlNamesMatch("ab", "ab"))
		assert.False(t, ControlNamesMatch("", "CCTV Surveillance System"))
	})

	t.Run("unrelated names do not match", func(t *testing.T) {
		assert.False(t, ControlNamesMatch("Visitor Management System", "CCTV Surveillance System"))
	})
}

func TestHasControl(t *testing.T) {
	existing := []string{"Badge Access Logging", "Perimeter fencing with razor wire"}

	t.Run("finds an exact entry", func(t *testing.T) {
		assert.True(t, HasControl(existing, "badge access logging"))
	})

	t.Run("finds a canonical name contained in a longer entry", func(t *testing.T) {
		assert.True(t, HasControl(existing, "Perimeter Fencing"))
	})

	t.Run("absent control", func(t *testing.T) {
		assert.False(t, HasControl(existing, "Security Guard Coverage"))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.False(t, HasControl(nil, "Badge Access Logging"))
	})
}
