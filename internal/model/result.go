package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// Each activity type has its own result shape. The shapes mirror what the
// front-end exercises report after an interaction.

type QuizResult struct {
	Correct int `json:"correct" validate:"gte=0,ltefield=Total"`
	Total   int `json:"total" validate:"gte=1"`
}

type PhishingResult struct {
	EmailIndex int    `json:"emailIndex" validate:"gte=0"`
	Verdict    string `json:"verdict" validate:"required,oneof=phishing legitimate"`
	Correct    bool   `json:"correct"`
}

type CaseStudyResult struct {
	CaseID string `json:"caseId" validate:"required,max=100"`
	Read   bool   `json:"read"`
}

type ThreatDecisionResult struct {
	ScenarioIndex int    `json:"scenarioIndex" validate:"gte=0"`
	Outcome       string `json:"outcome" validate:"required,oneof=best partial wrong"`
}

type RiskAssessmentResult struct {
	Checked int `json:"checked" validate:"gte=0,ltefield=Total"`
	Total   int `json:"total" validate:"gte=1"`
}

type SecureComparisonResult struct {
	Mode string `json:"mode" validate:"required,oneof=insecure secure"`
}

var resultValidator = newResultValidator()

func newResultValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(JSONTagName)
	return v
}

// JSONTagName names struct fields after their json tag in validation errors.
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func newResult(t ActivityType) (interface{}, bool) {
	switch t {
	case ActivityQuiz:
		return &QuizResult{}, true
	case ActivityPhishingIdentification:
		return &PhishingResult{}, true
	case ActivityCaseStudy:
		return &CaseStudyResult{}, true
	case ActivityThreatDecision:
		return &ThreatDecisionResult{}, true
	case ActivityRiskAssessment:
		return &RiskAssessmentResult{}, true
	case ActivitySecureComparison:
		return &SecureComparisonResult{}, true
	}
	return nil, false
}

// NormalizeResult decodes raw into the variant for t, validates it and
// re-encodes it. An absent or null payload yields nil.
func NormalizeResult(t ActivityType, raw json.RawMessage) (datatypes.JSON, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	v, ok := newResult(t)
	if !ok {
		return nil, fmt.Errorf("unknown activity type %q", t)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("result is not a valid %s payload: %v", t, err)
	}
	if err := resultValidator.Struct(v); err != nil {
		return nil, err
	}

	out, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}
