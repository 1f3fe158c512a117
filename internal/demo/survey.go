// Package demo holds the survey form used by the demo server and the CLI when
// no schema is supplied.
package demo

import (
	"github.com/goliatone/go-reform/pkg/field"
	"github.com/goliatone/go-reform/pkg/form"
)

// SurveyID is the form id the survey answers to in CLI flags.
const SurveyID = "survey"

// SurveyTitle heads rendered survey pages.
const SurveyTitle = "Survey"

// Survey returns a fresh survey definition.
func Survey() *form.Definition {
	return form.MustNew(
		form.F("firstName", field.NewText()),
		form.F("lastName", field.NewText()),
		form.F("age", field.NewInteger()),
		form.F("email", field.NewEmail(
			field.Optional(),
			field.WithHelpText("I know some people are scared to get spam, so this field is optional."),
		)),
		form.F("season", field.NewDropdown(
			field.WithHelpText("What season is it right now?"),
			field.WithChoices(field.Pairs(
				[]string{"su", "Summer"},
				[]string{"w", "Winter"},
				[]string{"sp", "Spring"},
				[]string{"f", "Fall"},
			)...),
		)),
		form.F("random", field.NewTextArea(
			field.WithLabel("About me."),
			field.WithHelpText("Tell the world about anything about yourself!"),
		)),
		form.F("submit", field.NewButton()),
	)
}
