package dto

// TopicSummaryDTO lists a topic together with its unit for the setup page.
type TopicSummaryDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	UnitID   uint   `json:"unit_id"`
	UnitName string `json:"unit_name"`
}

type TopicListDTO struct {
	OK     bool              `json:"ok"`
	Topics []TopicSummaryDTO `json:"topics"`
}

type TopicQuestionOptionDTO struct {
	ID        uint   `json:"id"`
	Label     string `json:"label"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// TopicQuestionDTO feeds the practice runner, which grades locally and
// therefore receives the answer key.
type TopicQuestionDTO struct {
	ID          uint                     `json:"id"`
	Stem        string                   `json:"stem"`
	Difficulty  string                   `json:"difficulty,omitempty"`
	Explanation string                   `json:"explanation,omitempty"`
	Options     []TopicQuestionOptionDTO `json:"options"`
}
