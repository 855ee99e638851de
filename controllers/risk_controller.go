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

package controllers

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/siteguard-sec/siteguard/risk"
	"github.com/siteguard-sec/siteguard/services"
	"github.com/siteguard-sec/siteguard/shared"
	"gorm.io/gorm"
)

type RiskController struct {
	scoringService  shared.ScoringService
	scenarioService shared.ScenarioService
}

func NewRiskController(scoringService shared.ScoringService, scenarioService shared.ScenarioService) *RiskController {
	return &RiskController{
		scoringService:  scoringService,
		scenarioService: scenarioService,
	}
}

func (r *RiskController) Score(c shared.Context) error {
	assessmentID, err := assessmentIDFromPath(c)
	if err != nil {
		return err
	}

	report, err := r.scoringService.ScoreAssessment(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "assessment not found")
		}
		if errors.Is(err, risk.ErrLibraryLookup) {
			// seed data is broken, not the request
			return echo.NewHTTPError(500, "control library is missing canonical entries").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not score assessment").WithInternal(err)
	}

	return c.JSON(200, report)
}

func (r *RiskController) TCOR(c shared.Context) error {
	assessmentID, err := assessmentIDFromPath(c)
	if err != nil {
		return err
	}

	breakdown, err := r.scoringService.CalculateTCOR(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "assessment not found")
		}
		return echo.NewHTTPError(500, "could not calculate total cost of risk").WithInternal(err)
	}

	return c.JSON(200, breakdown)
}

func (r *RiskController) RegenerateScenarios(c shared.Context) error {
	assessmentID, err := assessmentIDFromPath(c)
	if err != nil {
		return err
	}

	scenarios, err := r.scenarioService.Regenerate(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "assessment not found")
		}
		if errors.Is(err, services.ErrUnknownThreat) {
			return echo.NewHTTPError(500, "threat library is missing canonical entries").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not regenerate scenarios").WithInternal(err)
	}

	return c.JSON(200, scenarios)
}

func (r *RiskController) ListScenarios(c shared.Context) error {
	assessmentID, err := assessmentIDFromPath(c)
	if err != nil {
		return err
	}

	scenarios, err := r.scenarioService.GetByAssessmentID(assessmentID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list scenarios").WithInternal(err)
	}

	return c.JSON(200, scenarios)
}
