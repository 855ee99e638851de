package risk

import (
	"math"

	"github.com/siteguard-sec/siteguard/dtos"
)

// workforce range lower bounds, as entered in the office profile.
var workforceFloors = map[string]int{
	"1-50":     1,
	"51-200":   51,
	"201-500":  201,
	"501-1000": 501,
	"1000+":    1000,
}

// workforceAtLeast reports whether the declared employee count range implies
// at least the given headcount. An unknown or absent range never gates a
// penalty in.
func workforceAtLeast(employeeCount *string, floor int) bool {
	if employeeCount == nil {
		return false
	}
	lower, ok := workforceFloors[*employeeCount]
	if !ok {
		return false
	}
	return lower >= floor
}

type officeAdapter struct {
	catalog Catalog
}

func NewOfficeAdapter(catalog Catalog) *officeAdapter {
	return &officeAdapter{catalog: catalog}
}

func (a *officeAdapter) TemplateID() string { return dtos.TemplateOffice }

// Score combines a workplace-violence sub-score and a data-security
// sub-score with a fixed 0.6/0.4 weighting. The weighting is a design
// decision carried over unchanged for behavioral compatibility.
func (a *officeAdapter) Score(in Input) (dtos.RiskReport, error) {
	if len(in.Controls) == 0 {
		return insufficientData(), nil
	}

	largeWorkforce := func(in Input) bool {
		p, ok := in.Profile.(*dtos.OfficeProfile)
		return ok && workforceAtLeast(p.EmployeeCount, 201)
	}

	violenceChecklist := []checklistItem{
		{control: "Access Control System", points: 20, reason: "No access control system - building entry is uncontrolled"},
		{control: "CCTV Surveillance System", points: 15, reason: "No CCTV surveillance of entrances and common areas"},
		{control: "Visitor Management System", points: 15, reason: "No visitor management - visitors are not logged or badged"},
		{control: "Security Guard Coverage", points: 15, reason: "No security guard coverage during business hours"},
		{control: "Panic Buttons", points: 15, reason: "No panic buttons at reception for a large workforce", applies: largeWorkforce},
		{control: "Active Shooter Response Training", points: 20, reason: "No active shooter response training for a large workforce", applies: largeWorkforce},
	}

	dataChecklist := []checklistItem{
		{control: "Server Room Access Control", points: 25, reason: "Server room is not access controlled"},
		{control: "Secure Document Destruction", points: 20, reason: "No secure document destruction process"},
		{control: "Badge Access Logging", points: 20, reason: "Badge access events are not logged or reviewed"},
		{control: "Workstation Screen Locking", points: 20, reason: "No enforced workstation screen locking"},
		{control: "Clean Desk Policy", points: 15, reason: "No clean desk policy for sensitive documents"},
	}

	violenceScore, violenceFactors, err := runChecklist(violenceChecklist, in, a.catalog)
	if err != nil {
		return dtos.RiskReport{}, err
	}
	dataScore, dataFactors, err := runChecklist(dataChecklist, in, a.catalog)
	if err != nil {
		return dtos.RiskReport{}, err
	}

	violenceScore = capScore(violenceScore)
	dataScore = capScore(dataScore)

	combined := capScore(int(math.Round(0.6*float64(violenceScore) + 0.4*float64(dataScore))))

	return dtos.RiskReport{
		RiskScore: combined,
		RiskLevel: LevelFromScore(combined),
		Factors:   append(violenceFactors, dataFactors...),
		SubScores: []dtos.SubScore{
			{Name: "violence", Score: violenceScore, Level: LevelFromScore(violenceScore), Weight: 0.6},
			{Name: "data", Score: dataScore, Level: LevelFromScore(dataScore), Weight: 0.4},
		},
	}, nil
}
