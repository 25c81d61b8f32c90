package model

import "encoding/json"

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeSingle QuestionType = "single" // One option
	QuestionTypeMulti  QuestionType = "multi"  // Option set, order-irrelevant
)

// QuestionOption is one selectable option
type QuestionOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Question is one questionnaire question
type Question struct {
	ID        string           `json:"id"` // e.g. "q6"
	Type      QuestionType     `json:"type"`
	Text      string           `json:"text"`
	Hint      string           `json:"hint,omitempty"`
	MaxSelect int              `json:"maxSelect,omitempty"` // multi only, 0 = unlimited
	Options   []QuestionOption `json:"options"`
}

// Section groups questions; every question in a section must be answered
// before the respondent advances.
type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// ExclusiveValues are multi-select values that clear all other selections in
// their question; selecting any other value clears them in turn.
var ExclusiveValues = []string{"none", "dont-know"}

// AnswerValue holds either a single-select value or a multi-select value set.
// On the wire it is a bare string or a string array.
type AnswerValue struct {
	Single string
	Multi  []string
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Single = s
		v.Multi = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	v.Single = ""
	v.Multi = list
	return nil
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.Multi != nil {
		return json.Marshal(v.Multi)
	}
	return json.Marshal(v.Single)
}

// Answers maps question ID to the respondent's answer. Keys may be absent;
// every read fails open to the zero value.
type Answers map[string]AnswerValue

// Str returns the single-select value for a question, or "" when unanswered.
func (a Answers) Str(questionID string) string {
	return a[questionID].Single
}

// List returns the multi-select values for a question, or nil when unanswered.
func (a Answers) List(questionID string) []string {
	return a[questionID].Multi
}

// SetSingle records a single-select answer.
func (a Answers) SetSingle(questionID, value string) {
	a[questionID] = AnswerValue{Single: value}
}

// Toggle applies one multi-select click: exclusive values replace the whole
// set, other values evict exclusives, re-selecting removes, and a full
// maxSelect set drops its oldest entry.
func (a Answers) Toggle(questionID, value string, maxSelect int) {
	if isExclusive(value) {
		a[questionID] = AnswerValue{Multi: []string{value}}
		return
	}

	selected := a[questionID].Multi
	filtered := make([]string, 0, len(selected)+1)
	for _, v := range selected {
		if !isExclusive(v) {
			filtered = append(filtered, v)
		}
	}

	if idx := indexOf(filtered, value); idx >= 0 {
		filtered = append(filtered[:idx], filtered[idx+1:]...)
	} else {
		if maxSelect > 0 && len(filtered) >= maxSelect {
			filtered = filtered[1:]
		}
		filtered = append(filtered, value)
	}
	a[questionID] = AnswerValue{Multi: filtered}
}

// SectionComplete reports whether every question in the section has a
// non-empty answer.
func (a Answers) SectionComplete(sec *Section) bool {
	for _, q := range sec.Questions {
		v, ok := a[q.ID]
		if !ok {
			return false
		}
		if q.Type == QuestionTypeMulti {
			if len(v.Multi) == 0 {
				return false
			}
		} else if v.Single == "" {
			return false
		}
	}
	return true
}

func isExclusive(value string) bool {
	return indexOf(ExclusiveValues, value) >= 0
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}

// Scores is the readiness assessment result: four dimension scores in
// [0,100], the weighted overall score and the green claims risk flag.
type Scores struct {
	SupplyChain     int  `json:"supplyChain"`
	ProductData     int  `json:"productData"`
	Regulatory      int  `json:"regulatory"`
	Infrastructure  int  `json:"infrastructure"`
	Overall         int  `json:"overall"`
	GreenClaimsFlag bool `json:"greenClaimsFlag"`
}

// Band is the named bucket derived from the overall score
type Band struct {
	Label    string `json:"label"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
}

// DimensionScore pairs a display label with its score for the email report
type DimensionScore struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// AssessmentReport is the full computed result returned by the score endpoint
type AssessmentReport struct {
	Scores       Scores   `json:"scores"`
	Band         Band     `json:"band"`
	TimelineRisk string   `json:"timelineRisk"`
	Actions      []string `json:"actions"`
}

// AssessmentLead is the assessment lead-capture request body: respondent
// identity plus the full scores/narrative payload computed client-side.
type AssessmentLead struct {
	FirstName        string           `json:"firstName"`
	BrandName        string           `json:"brandName"`
	Email            string           `json:"email"`
	MarketingConsent bool             `json:"marketingConsent"`
	Overall          int              `json:"overall"`
	Band             string           `json:"band"`
	Headline         string           `json:"headline"`
	Summary          string           `json:"summary"`
	Dimensions       []DimensionScore `json:"dimensions"`
	Actions          []string         `json:"actions"`
	TimelineRisk     string           `json:"timelineRisk"`
	GreenClaimsFlag  bool             `json:"greenClaimsFlag"`
}
