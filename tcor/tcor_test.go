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
package tcor

import (
	"testing"

	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/utils"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDispatch(t *testing.T) {
	t.Run("dispatches on the profile variant", func(t *testing.T) {
		b, err := Calculate(&dtos.RetailProfile{
			StoreCount:    utils.Ptr(10),
			AnnualRevenue: utils.Ptr(50_000_000.0),
		})
		assert.NoError(t, err)
		assert.Equal(t, b, Retail(dtos.RetailProfile{
			StoreCount:    utils.Ptr(10),
			AnnualRevenue: utils.Ptr(50_000_000.0),
		}))
	})
}

func TestTotalIsAlwaysThePlainSum(t *testing.T) {
	breakdowns := []dtos.TCORBreakdown{
		Office(dtos.OfficeProfile{EmployeeCount: utils.Ptr("1000+"), AnnualRevenue: utils.Ptr(500_000_000.0)}),
		Datacenter(dtos.DatacenterProfile{RackCount: utils.Ptr(2_000), DowntimeCostPerHour: utils.Ptr(1_000_000.0)}),
		Manufacturing(dtos.ManufacturingProfile{EmployeeCount: utils.Ptr("501-1000"), AnnualRevenue: utils.Ptr(900_000_000.0), DowntimeCostPerDay: utils.Ptr(2_000_000.0)}),
		Retail(dtos.RetailProfile{StoreCount: utils.Ptr(400), AnnualRevenue: utils.Ptr(2_000_000_000.0), ShrinkageRate: utils.Ptr(2.5)}),
		Warehouse(dtos.WarehouseProfile{InventoryValue: utils.Ptr(80_000_000.0), DockDoorCount: utils.Ptr(40), SquareFootage: utils.Ptr(500_000), EmployeeCount: utils.Ptr("201-500")}),
		Executive(dtos.ExecutiveProfile{NetWorthRange: utils.Ptr("100M+"), ResidenceCount: utils.Ptr(4), FamilyMembers: utils.Ptr(5)}),
	}

	for _, b := range breakdowns {
		// even implausibly large component sums are reported as-is
		assert.InDelta(t, b.Sum(), b.TotalAnnualExposure, 0.0001)
		assert.InDelta(t, b.DirectLoss+b.TurnoverCost+b.LiabilityCost+b.IncidentCost+b.BrandDamageCost, b.TotalAnnualExposure, 0.0001)
	}
}

func TestEmptyProfilesCostNothing(t *testing.T) {
	assert.Zero(t, Datacenter(dtos.DatacenterProfile{}).TotalAnnualExposure)
	assert.Zero(t, Warehouse(dtos.WarehouseProfile{}).TotalAnnualExposure)
	assert.Zero(t, Executive(dtos.ExecutiveProfile{}).TotalAnnualExposure)
	assert.Zero(t, Office(dtos.OfficeProfile{}).TotalAnnualExposure)
}

func TestRetailShrinkageDefault(t *testing.T) {
	// the 1.4% industry average applies when no rate is declared
	b := Retail(dtos.RetailProfile{AnnualRevenue: utils.Ptr(100_000_000.0)})
	assert.InDelta(t, 1_400_000, b.DirectLoss, 0.0001)
}

func TestExecutiveNetWorthMidpoints(t *testing.T) {
	low := Executive(dtos.ExecutiveProfile{NetWorthRange: utils.Ptr("<10M")})
	high := Executive(dtos.ExecutiveProfile{NetWorthRange: utils.Ptr("100M+")})
	assert.InDelta(t, 5_000_000*0.0002, low.DirectLoss, 0.0001)
	assert.InDelta(t, 150_000_000*0.0002, high.DirectLoss, 0.0001)
	assert.Greater(t, high.TotalAnnualExposure, low.TotalAnnualExposure)
}
