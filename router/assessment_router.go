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

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/siteguard-sec/siteguard/controllers"
)

// AssessmentRouter exposes the single-assessment routes; the risk routes
// mount below it.
type AssessmentRouter struct {
	*echo.Group
}

func NewAssessmentRouter(apiV1 APIV1Router, assessmentController *controllers.AssessmentController) AssessmentRouter {
	orgAssessments := apiV1.Group.Group("/organizations/:organizationID/assessments")
	orgAssessments.POST("/", assessmentController.Create)
	orgAssessments.GET("/", assessmentController.List)

	assessmentRouter := apiV1.Group.Group("/assessments/:assessmentID")
	assessmentRouter.GET("/", assessmentController.Read)
	assessmentRouter.DELETE("/", assessmentController.Delete)
	assessmentRouter.PUT("/controls/", assessmentController.ReplaceControls)
	assessmentRouter.PUT("/treatment-plans/", assessmentController.ReplaceTreatmentPlans)
	assessmentRouter.PUT("/survey-answers/", assessmentController.UpsertSurveyAnswers)
	assessmentRouter.PUT("/questionnaire-answers/", assessmentController.UpsertQuestionnaireAnswers)

	return AssessmentRouter{Group: assessmentRouter}
}
