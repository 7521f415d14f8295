package dadataproxy

import (
	"context"

	dadata "github.com/ekomobile/dadata/v2"
	"github.com/ekomobile/dadata/v2/api/suggest"
)

type CompanySuggestion struct {
	Name string `json:"name"`
	Inn  string `json:"inn"`
}

// ProxySuggestCompany подсказки названий компаний при регистрации рекрутера
func ProxySuggestCompany(query string) ([]CompanySuggestion, error) {
	api := dadata.NewSuggestApi()
	params := suggest.RequestParams{Query: query}
	parties, err := api.Party(context.Background(), &params)
	if err != nil {
		return nil, err
	}
	result := make([]CompanySuggestion, 0, len(parties))
	for _, party := range parties {
		result = append(result, CompanySuggestion{
			Name: party.Value,
			Inn:  party.Data.Inn,
		})
	}
	return result, nil
}
