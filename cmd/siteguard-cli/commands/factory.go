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

package commands

import (
	"os"

	"github.com/siteguard-sec/siteguard/database"
	"github.com/siteguard-sec/siteguard/database/repositories"
	"github.com/siteguard-sec/siteguard/evidence"
	"github.com/siteguard-sec/siteguard/services"
	"github.com/siteguard-sec/siteguard/shared"
	"github.com/siteguard-sec/siteguard/utils"
)

// serviceSet bundles the wired services the commands operate on.
type serviceSet struct {
	library     shared.LibraryService
	scoring     shared.ScoringService
	scenarios   shared.ScenarioService
	assessments shared.AssessmentService
}

func newServiceSet() (serviceSet, error) {
	db, err := shared.DatabaseFactory()
	if err != nil {
		return serviceSet{}, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return serviceSet{}, err
	}

	assessmentRepository := repositories.NewAssessmentRepository(db)
	controlRepository := repositories.NewControlRepository(db)
	riskScenarioRepository := repositories.NewRiskScenarioRepository(db)
	controlLibraryRepository := repositories.NewControlLibraryRepository(db)
	threatLibraryRepository := repositories.NewThreatLibraryRepository(db)
	surveyRepository := repositories.NewFacilitySurveyQuestionRepository(db)
	questionRepository := repositories.NewAssessmentQuestionRepository(db)
	treatmentPlanRepository := repositories.NewTreatmentPlanRepository(db)

	evidenceStore := evidence.NewDiskStore(utils.OrDefault(utils.EmptyThenNil(os.Getenv("EVIDENCE_ROOT")), "./evidence-files"))

	libraryService := services.NewLibraryService(controlLibraryRepository, threatLibraryRepository)
	return serviceSet{
		library:   libraryService,
		scoring:   services.NewScoringService(assessmentRepository, controlRepository, surveyRepository, libraryService),
		scenarios: services.NewScenarioService(assessmentRepository, riskScenarioRepository, surveyRepository, libraryService),
		assessments: services.NewAssessmentService(
			assessmentRepository,
			controlRepository,
			treatmentPlanRepository,
			repositories.NewRiskInsightRepository(db),
			repositories.NewIdentifiedThreatRepository(db),
			repositories.NewVulnerabilityRepository(db),
			riskScenarioRepository,
			repositories.NewReportRepository(db),
			surveyRepository,
			questionRepository,
			repositories.NewInterviewResponseRepository(db),
			evidenceStore,
		),
	}, nil
}
