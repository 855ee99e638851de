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

package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/siteguard-sec/siteguard/controllers"
	"github.com/siteguard-sec/siteguard/database/repositories"
	"github.com/siteguard-sec/siteguard/evidence"
	"github.com/siteguard-sec/siteguard/router"
	"github.com/siteguard-sec/siteguard/services"
	"github.com/siteguard-sec/siteguard/shared"
	"github.com/siteguard-sec/siteguard/utils"
)

func health(c echo.Context) error {
	return c.String(200, "ok")
}

// Start wires the repositories, services and controllers and blocks
// serving the HTTP API.
func Start(db shared.DB) {
	// repositories
	assessmentRepository := repositories.NewAssessmentRepository(db)
	controlRepository := repositories.NewControlRepository(db)
	riskScenarioRepository := repositories.NewRiskScenarioRepository(db)
	controlLibraryRepository := repositories.NewControlLibraryRepository(db)
	threatLibraryRepository := repositories.NewThreatLibraryRepository(db)
	surveyRepository := repositories.NewFacilitySurveyQuestionRepository(db)
	questionRepository := repositories.NewAssessmentQuestionRepository(db)
	treatmentPlanRepository := repositories.NewTreatmentPlanRepository(db)
	riskInsightRepository := repositories.NewRiskInsightRepository(db)
	identifiedThreatRepository := repositories.NewIdentifiedThreatRepository(db)
	vulnerabilityRepository := repositories.NewVulnerabilityRepository(db)
	reportRepository := repositories.NewReportRepository(db)
	interviewResponseRepository := repositories.NewInterviewResponseRepository(db)

	evidenceStore := evidence.NewDiskStore(utils.OrDefault(utils.EmptyThenNil(os.Getenv("EVIDENCE_ROOT")), "./evidence-files"))

	// services
	libraryService := services.NewLibraryService(controlLibraryRepository, threatLibraryRepository)
	scoringService := services.NewScoringService(assessmentRepository, controlRepository, surveyRepository, libraryService)
	scenarioService := services.NewScenarioService(assessmentRepository, riskScenarioRepository, surveyRepository, libraryService)
	consistencyService := services.NewConsistencyService(controlRepository, treatmentPlanRepository, surveyRepository, questionRepository)
	assessmentService := services.NewAssessmentService(
		assessmentRepository,
		controlRepository,
		treatmentPlanRepository,
		riskInsightRepository,
		identifiedThreatRepository,
		vulnerabilityRepository,
		riskScenarioRepository,
		reportRepository,
		surveyRepository,
		questionRepository,
		interviewResponseRepository,
		evidenceStore,
	)

	// controllers
	assessmentController := controllers.NewAssessmentController(assessmentService, consistencyService)
	riskController := controllers.NewRiskController(scoringService, scenarioService)

	server := echo.New()
	server.HideBanner = true
	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())

	apiV1Router := router.NewAPIV1Router(server)
	apiV1Router.GET("/health/", health)

	assessmentRouter := router.NewAssessmentRouter(apiV1Router, assessmentController)
	router.NewRiskRouter(assessmentRouter, riskController)

	port := utils.OrDefault(utils.EmptyThenNil(os.Getenv("PORT")), "8080")
	slog.Info("starting api", "port", port)
	if err := server.Start(":" + port); err != nil && err != http.ErrServerClosed {
		slog.Error("could not start server", "err", err)
		os.Exit(1)
	}
}
