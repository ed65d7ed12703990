package dto

// ExplainRequest is the body of POST /subjects/{id}/explain
type ExplainRequest struct {
	Question string `json:"question" example:"Why do cells need ATP?"`
}

type ExplainResponse struct {
	SubjectID string `json:"subject_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
}

// CheatSheetRequest is the body of POST /subjects/{id}/cheatsheet.
// Style defaults to cheat_sheet.
type CheatSheetRequest struct {
	Topic string `json:"topic" example:"cell respiration"`
	Style string `json:"style,omitempty" example:"cheat_sheet"`
}

type CheatSheetResponse struct {
	SubjectID string `json:"subject_id"`
	Topic     string `json:"topic"`
	Style     string `json:"style"`
	Content   string `json:"content"`
}
