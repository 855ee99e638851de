package dtos

import (
	"encoding/json"
	"fmt"
)

// Template IDs select the vertical of an assessment. The profile blob stored
// on the assessment row is only meaningful for the declared template.
const (
	TemplateOffice        = "office"
	TemplateDatacenter    = "datacenter"
	TemplateManufacturing = "manufacturing"
	TemplateRetail        = "retail"
	TemplateWarehouse     = "warehouse"
	TemplateExecutive     = "executive-protection"
)

// Profile is the decoded, statically shaped variant of the assessment
// profile blob. All fields are pointers: an absent field means "unknown",
// never "false" or zero.
type Profile interface {
	TemplateID() string
}

type OfficeProfile struct {
	EmployeeCount *string  `json:"employeeCount,omitempty"` // "1-50", "51-200", "201-500", "501-1000", "1000+"
	FloorCount    *int     `json:"floorCount,omitempty"`
	PublicLobby   *bool    `json:"publicLobby,omitempty"`
	AverageSalary *float64 `json:"averageSalary,omitempty"`
	AnnualRevenue *float64 `json:"annualRevenue,omitempty"`
}

func (OfficeProfile) TemplateID() string { return TemplateOffice }

type DatacenterProfile struct {
	TierClassification  *string  `json:"tierClassification,omitempty"` // "Tier I" .. "Tier IV"
	RequiredUptimeSLA   *string  `json:"requiredUptimeSla,omitempty"`  // "99.9%", "99.99%", "99.999%"
	ComplianceStandards []string `json:"complianceStandards,omitempty"`
	RackCount           *int     `json:"rackCount,omitempty"`
	DowntimeCostPerHour *float64 `json:"downtimeCostPerHour,omitempty"`
}

func (DatacenterProfile) TemplateID() string { return TemplateDatacenter }

type ManufacturingProfile struct {
	EmployeeCount       *string  `json:"employeeCount,omitempty"`
	HazardousMaterials  *bool    `json:"hazardousMaterials,omitempty"`
	ContinuousOperation *bool    `json:"continuousOperation,omitempty"` // 24/7 shift pattern
	AnnualRevenue       *float64 `json:"annualRevenue,omitempty"`
	DowntimeCostPerDay  *float64 `json:"downtimeCostPerDay,omitempty"`
}

func (ManufacturingProfile) TemplateID() string { return TemplateManufacturing }

type RetailProfile struct {
	StoreCount              *int     `json:"storeCount,omitempty"`
	ShrinkageRate           *float64 `json:"shrinkageRate,omitempty"` // percent of revenue
	AnnualRevenue           *float64 `json:"annualRevenue,omitempty"`
	CashHandling            *bool    `json:"cashHandling,omitempty"`
	AverageTransactionValue *float64 `json:"averageTransactionValue,omitempty"`
}

func (RetailProfile) TemplateID() string { return TemplateRetail }

type WarehouseProfile struct {
	SquareFootage     *int     `json:"squareFootage,omitempty"`
	InventoryValue    *float64 `json:"inventoryValue,omitempty"`
	HighValueGoods    *bool    `json:"highValueGoods,omitempty"`
	DockDoorCount     *int     `json:"dockDoorCount,omitempty"`
	ThirdPartyDrivers *bool    `json:"thirdPartyDrivers,omitempty"`
	EmployeeCount     *string  `json:"employeeCount,omitempty"`
}

func (WarehouseProfile) TemplateID() string { return TemplateWarehouse }

type ExecutiveProfile struct {
	NetWorthRange         *string `json:"netWorthRange,omitempty"` // "<10M", "10-50M", "50-100M", "100M+"
	PublicProfile         *string `json:"publicProfile,omitempty"` // "low", "medium", "high"
	InternationalTravel   *bool   `json:"internationalTravel,omitempty"`
	HasPersonalProtection *bool   `json:"hasPersonalProtection,omitempty"`
	HasArmoredVehicle     *bool   `json:"hasArmoredVehicle,omitempty"`
	HasSecureResidence    *bool   `json:"hasSecureResidence,omitempty"`
	FamilyMembers         *int    `json:"familyMembers,omitempty"`
	ResidenceCount        *int    `json:"residenceCount,omitempty"`
}

func (ExecutiveProfile) TemplateID() string { return TemplateExecutive }

// DecodeProfile decodes the raw profile blob into the variant declared by
// the template id. It is the single place the untyped blob becomes a typed
// value; everything downstream works on the decoded variant.
func DecodeProfile(templateID string, raw []byte) (Profile, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	decode := func(target Profile) (Profile, error) {
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("could not decode %s profile: %v", templateID, err)
		}
		return target, nil
	}

	switch templateID {
	case TemplateOffice:
		p := &OfficeProfile{}
		return decode(p)
	case TemplateDatacenter:
		p := &DatacenterProfile{}
		return decode(p)
	case TemplateManufacturing:
		p := &ManufacturingProfile{}
		return decode(p)
	case TemplateRetail:
		p := &RetailProfile{}
		return decode(p)
	case TemplateWarehouse:
		p := &WarehouseProfile{}
		return decode(p)
	case TemplateExecutive:
		p := &ExecutiveProfile{}
		return decode(p)
	default:
		return nil, fmt.Errorf("unknown template id: %s", templateID)
	}
}
