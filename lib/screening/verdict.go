package screeninghandler

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Verdict итоговое заключение модели по кандидату
type Verdict struct {
	Score          float64  `json:"score"`
	Summary        string   `json:"summary"`
	Recommendation string   `json:"recommendation"`
	Strengths      []string `json:"strengths"`
	RedFlags       []string `json:"red_flags"`
}

// parseVerdict модель может обернуть json в markdown-блок или добавить текст вокруг
func parseVerdict(raw string) (*Verdict, error) {
	text := strings.TrimSpace(raw)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, errors.New("в ответе модели отсутствует json с заключением")
	}
	verdict := Verdict{}
	if err := json.Unmarshal([]byte(text[start:end+1]), &verdict); err != nil {
		return nil, errors.Wrap(err, "ошибка разбора заключения модели")
	}
	if verdict.Score < 0 {
		verdict.Score = 0
	}
	if verdict.Score > 100 {
		verdict.Score = 100
	}
	return &verdict, nil
}
