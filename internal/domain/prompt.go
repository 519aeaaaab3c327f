package domain

import (
	"fmt"
	"strings"
)

// portugueseNames - названия категорий в словаре продукта.
// Каждое название входит в Indicators своей категории, поэтому ответ
// удалённого классификатора детерминированно матчится обратно
// через MatchIndicators.
var portugueseNames = map[Category]string{
	CategoryFood:          "comida",
	CategoryDrink:         "bebida",
	CategoryEntertainment: "entretenimento",
	CategoryLeisure:       "lazer",
	CategoryShopping:      "compras",
	CategoryLodging:       "hospedagem",
	CategoryTransport:     "transporte",
	CategoryHealth:        "saúde",
	CategoryEducation:     "educação",
	CategoryWorship:       "religião",
}

// ClassificationPrompt строит инструкцию для удалённого классификатора.
// Ответ сервиса - только совещательный: он матчится обратно в закрытый
// набор и при несовпадении отбрасывается.
func ClassificationPrompt(query string) string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, portugueseNames[c])
	}

	return fmt.Sprintf(
		"Classifique a intenção desta busca: %q. Responda apenas com uma palavra: %s.",
		query,
		strings.Join(names, ", "),
	)
}
