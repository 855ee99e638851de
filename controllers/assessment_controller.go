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
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/shared"
	"github.com/siteguard-sec/siteguard/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssessmentController struct {
	assessmentService  shared.AssessmentService
	consistencyService shared.ConsistencyService
}

func NewAssessmentController(assessmentService shared.AssessmentService, consistencyService shared.ConsistencyService) *AssessmentController {
	return &AssessmentController{
		assessmentService:  assessmentService,
		consistencyService: consistencyService,
	}
}

func assessmentIDFromPath(c shared.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("assessmentID"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, "invalid assessment id").WithInternal(err)
	}
	return id, nil
}

func organizationIDFromPath(c shared.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("organizationID"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, "invalid organization id").WithInternal(err)
	}
	return id, nil
}

func (a *AssessmentController) Create(c shared.Context) error {
	organizationID, err := organizationIDFromPath(c)
	if err != nil {
		return err
	}

	var req dtos.AssessmentCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	assessment, err := a.assessmentService.Create(organizationID, req.Name, req.TemplateID, req.Profile)
	if err != nil {
		return echo.NewHTTPError(400, "could not create assessment").WithInternal(err)
	}

	return c.JSON(200, assessment)
}

func (a *AssessmentController) List(c shared.Context) error {
	organizationID, err := organizationIDFromPath(c)
	if err != nil {
		return err
	}

	assessments, err := a.assessmentService.GetByOrganizationID(organizationID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list assessments").WithInternal(err)
	}

	return c.JSON(200, assessments)
}

func (a *AssessmentController) Read(c shared.Context) error {
	assessmentID, err := assessmentIDFromPath(c)
	if err != nil {
		return err
	}

	assessment, err := a.assessmentService.Read(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "assessment not found")
		}
		return echo.NewHTTPError(500, "could not read assessment").WithInternal(err)
	}

	return c.JSON(200, assessment)
}

func (a *AssessmentController) Delete(c shared.Context) error {
	assessmentID, err := assessmentIDFromPath(c)
	if err != nil {
		return err
	}

	if err := a.assessmentService.Delete(assessmentID); err != nil {
		return echo.NewHTTPError(500, "could not delete assessment").WithInternal(err)
	}

	return c.NoContent(200)
}

func (a *AssessmentController) ReplaceControls(c shared.Context) error {
	assessmentID, err := assessmentIDFromPath(c)
	if err != nil {
		return err
	}

	var req []dtos.ControlUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	for _, item := range req {
		if err := shared.V.Struct(item); err != nil {
			return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
		}
	}

	controls := utils.Map(req, func(item dtos.ControlUpsertRequest) models.Control {
		controlType := models.ControlType(item.ControlType)
		if controlType == "" {
			controlType = models.ControlTypeExisting
		}
		return models.Control{
			Name:          item.Name,
			Description:   item.Description,
			ControlType:   controlType,
			Effectiveness: item.Effectiveness,
		}
	})

	if err := a.consistencyService.ReplaceControls(assessmentID, controls); err != nil {
		return echo.NewHTTPError(500, "could not replace controls").WithInternal(err)
	}

	return c.NoContent(200)
}

func (a *AssessmentController) ReplaceTreatmentPlans(c shared.Context) error {
	assessmentID, err := assessmentIDFromPath(c)
	if err != nil {
		return err
	}

	var req []dtos.TreatmentPlanUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	for _, item := range req {
		if err := shared.V.Struct(item); err != nil {
			return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
		}
	}

	plans := utils.Map(req, func(item dtos.TreatmentPlanUpsertRequest) models.TreatmentPlan {
		plan := models.TreatmentPlan{
			Title:         item.Title,
			Description:   item.Description,
			Priority:      item.Priority,
			EstimatedCost: item.EstimatedCost,
			Status:        item.Status,
		}
		if item.RiskScenarioID != nil {
			// already validated as uuid
			id := uuid.MustParse(*item.RiskScenarioID)
			plan.RiskScenarioID = &id
		}
		return plan
	})

	if err := a.consistencyService.ReplaceTreatmentPlans(assessmentID, plans); err != nil {
		return echo.NewHTTPError(500, "could not replace treatment plans").WithInternal(err)
	}

	return c.NoContent(200)
}

func (a *AssessmentController) UpsertSurveyAnswers(c shared.Context) error {
	assessmentID, err := assessmentIDFromPath(c)
	if err != nil {
		return err
	}

	var req []dtos.SurveyAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	for _, item := range req {
		if err := shared.V.Struct(item); err != nil {
			return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
		}
	}

	questions := utils.Map(req, func(item dtos.SurveyAnswerRequest) models.FacilitySurveyQuestion {
		return models.FacilitySurveyQuestion{
			Section:       item.Section,
			QuestionKey:   item.QuestionKey,
			Question:      item.Question,
			Answer:        item.Answer,
			SortOrder:     item.SortOrder,
			EvidenceFiles: datatypes.JSONSlice[string](item.EvidenceFiles),
		}
	})

	if err := a.consistencyService.UpsertSurveyAnswers(assessmentID, questions); err != nil {
		return echo.NewHTTPError(500, "could not upsert survey answers").WithInternal(err)
	}

	return c.NoContent(200)
}

func (a *AssessmentController) UpsertQuestionnaireAnswers(c shared.Context) error {
	assessmentID, err := assessmentIDFromPath(c)
	if err != nil {
		return err
	}

	var req []dtos.QuestionnaireAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	for _, item := range req {
		if err := shared.V.Struct(item); err != nil {
			return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
		}
	}

	questions := utils.Map(req, func(item dtos.QuestionnaireAnswerRequest) models.AssessmentQuestion {
		return models.AssessmentQuestion{
			Category:      item.Category,
			QuestionKey:   item.QuestionKey,
			Question:      item.Question,
			Answer:        item.Answer,
			EvidenceFiles: datatypes.JSONSlice[string](item.EvidenceFiles),
		}
	})

	if err := a.consistencyService.UpsertQuestionnaireAnswers(assessmentID, questions); err != nil {
		return echo.NewHTTPError(500, "could not upsert questionnaire answers").WithInternal(err)
	}

	return c.NoContent(200)
}
