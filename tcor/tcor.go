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

// Package tcor estimates the annualized total cost of risk of a facility
// from its profile alone. It deliberately ignores controls and survey data:
// TCOR answers "what does inadequate security cost annually", not "how
// adequate is current security". Every term is computed independently and
// the total is always the plain sum - never clamped.
package tcor

import (
	"fmt"

	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/utils"
)

// workforce range midpoints used for per-head cost terms.
var workforceMidpoints = map[string]float64{
	"1-50":     25,
	"51-200":   125,
	"201-500":  350,
	"501-1000": 750,
	"1000+":    1500,
}

// net worth range midpoints in dollars.
var netWorthMidpoints = map[string]float64{
	"<10M":    5_000_000,
	"10-50M":  30_000_000,
	"50-100M": 75_000_000,
	"100M+":   150_000_000,
}

func workforceMidpoint(employeeCount *string) float64 {
	if employeeCount == nil {
		return 0
	}
	return workforceMidpoints[*employeeCount]
}

// Calculate dispatches to the vertical-specific calculator for the decoded
// profile variant.
func Calculate(profile dtos.Profile) (dtos.TCORBreakdown, error) {
	switch p := profile.(type) {
	case *dtos.OfficeProfile:
		return Office(*p), nil
	case *dtos.DatacenterProfile:
		return Datacenter(*p), nil
	case *dtos.ManufacturingProfile:
		return Manufacturing(*p), nil
	case *dtos.RetailProfile:
		return Retail(*p), nil
	case *dtos.WarehouseProfile:
		return Warehouse(*p), nil
	case *dtos.ExecutiveProfile:
		return Executive(*p), nil
	default:
		return dtos.TCORBreakdown{}, fmt.Errorf("no tcor calculator for profile template: %s", profile.TemplateID())
	}
}

// Office constants: 15% annual turnover of which 7% is attributable to
// security concerns, replacement cost at half the annual salary, one
// reportable incident per 200 heads at 25k each.
func Office(p dtos.OfficeProfile) dtos.TCORBreakdown {
	employees := workforceMidpoint(p.EmployeeCount)
	salary := utils.OrDefault(p.AverageSalary, 65_000)
	revenue := utils.OrDefault(p.AnnualRevenue, 0)

	b := dtos.TCORBreakdown{
		DirectLoss:      revenue * 0.001,
		TurnoverCost:    employees * 0.15 * 0.07 * salary * 0.5,
		LiabilityCost:   employees * 120,
		IncidentCost:    employees / 200 * 25_000,
		BrandDamageCost: revenue * 0.0005,
	}
	b.TotalAnnualExposure = b.Sum()
	return b
}

// Datacenter constants: six assumed outage hours per year, SLA penalties at
// twice and brand fallout at four times the hourly downtime cost.
func Datacenter(p dtos.DatacenterProfile) dtos.TCORBreakdown {
	racks := float64(utils.OrDefault(p.RackCount, 0))
	downtimePerHour := utils.OrDefault(p.DowntimeCostPerHour, 0)

	b := dtos.TCORBreakdown{
		DirectLoss:      racks * 1_800,
		TurnoverCost:    racks * 150,
		LiabilityCost:   downtimePerHour * 2,
		IncidentCost:    downtimePerHour * 6,
		BrandDamageCost: downtimePerHour * 4,
	}
	b.TotalAnnualExposure = b.Sum()
	return b
}

// Manufacturing constants: 0.2% of revenue lost to material theft, three
// assumed production downtime days per year.
func Manufacturing(p dtos.ManufacturingProfile) dtos.TCORBreakdown {
	employees := workforceMidpoint(p.EmployeeCount)
	revenue := utils.OrDefault(p.AnnualRevenue, 0)
	downtimePerDay := utils.OrDefault(p.DowntimeCostPerDay, 0)

	b := dtos.TCORBreakdown{
		DirectLoss:      revenue * 0.002,
		TurnoverCost:    employees * 0.18 * 0.06 * 45_000 * 0.5,
		LiabilityCost:   employees * 300,
		IncidentCost:    downtimePerDay * 3,
		BrandDamageCost: revenue * 0.0004,
	}
	b.TotalAnnualExposure = b.Sum()
	return b
}

// Retail constants: shrinkage defaults to the 1.4% industry average, two
// reportable incidents per store at 8k each.
func Retail(p dtos.RetailProfile) dtos.TCORBreakdown {
	stores := float64(utils.OrDefault(p.StoreCount, 0))
	revenue := utils.OrDefault(p.AnnualRevenue, 0)
	shrinkage := utils.OrDefault(p.ShrinkageRate, 1.4)

	b := dtos.TCORBreakdown{
		DirectLoss:      revenue * shrinkage / 100,
		TurnoverCost:    stores * 15_000,
		LiabilityCost:   stores * 6_000,
		IncidentCost:    stores * 2 * 8_000,
		BrandDamageCost: revenue * 0.0008,
	}
	b.TotalAnnualExposure = b.Sum()
	return b
}

// Warehouse constants: 1.5% of inventory value lost to cargo theft and
// shrinkage, per-dock incident exposure.
func Warehouse(p dtos.WarehouseProfile) dtos.TCORBreakdown {
	inventory := utils.OrDefault(p.InventoryValue, 0)
	docks := float64(utils.OrDefault(p.DockDoorCount, 0))
	sqft := float64(utils.OrDefault(p.SquareFootage, 0))
	employees := workforceMidpoint(p.EmployeeCount)

	b := dtos.TCORBreakdown{
		DirectLoss:      inventory * 0.015,
		TurnoverCost:    employees * 400,
		LiabilityCost:   sqft * 0.15,
		IncidentCost:    docks * 1_200,
		BrandDamageCost: inventory * 0.002,
	}
	b.TotalAnnualExposure = b.Sum()
	return b
}

// Executive constants: property crime exposure at 2 basis points of net
// worth, per-residence incident and household staff churn terms.
func Executive(p dtos.ExecutiveProfile) dtos.TCORBreakdown {
	netWorth := 0.0
	if p.NetWorthRange != nil {
		netWorth = netWorthMidpoints[*p.NetWorthRange]
	}
	residences := float64(utils.OrDefault(p.ResidenceCount, 0))
	family := float64(utils.OrDefault(p.FamilyMembers, 0))

	b := dtos.TCORBreakdown{
		DirectLoss:      netWorth * 0.0002,
		TurnoverCost:    residences * 8_000,
		LiabilityCost:   family * 2_500,
		IncidentCost:    residences * 15_000,
		BrandDamageCost: netWorth * 0.0001,
	}
	b.TotalAnnualExposure = b.Sum()
	return b
}
