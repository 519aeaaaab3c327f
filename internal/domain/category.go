package domain

import "strings"

// Category - категория намерения пользователя. Закрытый набор значений,
// классификация всегда возвращает один из этих констант.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryDrink         Category = "drink"
	CategoryEntertainment Category = "entertainment"
	CategoryLeisure       Category = "leisure"
	CategoryShopping      Category = "shopping"
	CategoryLodging       Category = "lodging"
	CategoryTransport     Category = "transport"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategoryWorship       Category = "worship"
)

// DefaultCategory возвращается, когда ни один признак не совпал
const DefaultCategory = CategoryFood

// Categories - фиксированный порядок перебора категорий.
// Порядок важен: при совпадении нескольких категорий выигрывает первая.
var Categories = []Category{
	CategoryFood,
	CategoryDrink,
	CategoryEntertainment,
	CategoryLeisure,
	CategoryShopping,
	CategoryLodging,
	CategoryTransport,
	CategoryHealth,
	CategoryEducation,
	CategoryWorship,
}

// CategoryRule - правила категории: лексические признаки для классификации
// и amenity-фильтры для построения Overpass запросов
type CategoryRule struct {
	// Indicators - ключевые слова запроса (словарь продукта, португальский).
	// Название категории на португальском входит в набор, чтобы ответ
	// удалённого классификатора матчился обратно в закрытый набор.
	Indicators []string

	// Actions - глаголы и фразы действий, проверяются после Indicators
	Actions []string

	// Filter - amenity-фильтр строгого запроса (только именованные объекты)
	Filter string

	// LooseFilter - расширенный amenity-фильтр для fallback запроса
	LooseFilter string
}

// Фильтры по умолчанию для категорий без маппинга
const (
	DefaultFilter      = "restaurant"
	DefaultLooseFilter = "restaurant|cafe|bar"
)

var categoryRules = map[Category]CategoryRule{
	CategoryFood: {
		Indicators:  []string{"comida", "restaurante", "pizzaria", "hamburgueria", "lanchonete", "fast food", "comida japonesa", "comida italiana", "comida chinesa"},
		Actions:     []string{"comer", "jantar", "almoçar", "lanche", "refeição"},
		Filter:      "restaurant",
		LooseFilter: "restaurant|cafe|fast_food|food_court|ice_cream|pub|biergarten",
	},
	CategoryDrink: {
		Indicators:  []string{"bebida", "bar", "pub", "café", "cerveja"},
		Actions:     []string{"beber", "tomar", "happy hour"},
		Filter:      "bar|pub",
		LooseFilter: "bar|pub|cafe|biergarten",
	},
	CategoryEntertainment: {
		Indicators:  []string{"entretenimento", "cinema", "teatro", "museu", "galeria", "shopping", "centro comercial"},
		Actions:     []string{"diversão", "entreter", "filme", "show", "assistir"},
		Filter:      "cinema|theatre|museum|gallery|zoo|theme_park",
		LooseFilter: "cinema|theatre|museum|gallery|zoo|theme_park",
	},
	CategoryLeisure: {
		Indicators:  []string{"lazer", "parque", "praça", "jardim", "praia", "piscina", "academia", "esporte"},
		Actions:     []string{"passear", "caminhar", "exercitar"},
		Filter:      "park|garden|sports_centre|fitness_centre|swimming_pool|golf_course",
		LooseFilter: "park|garden|sports_centre|fitness_centre|swimming_pool|golf_course",
	},
	CategoryShopping: {
		Indicators:  []string{"compras", "loja", "supermercado", "farmácia", "livraria", "eletrônicos"},
		Actions:     []string{"comprar", "mercado"},
		Filter:      "supermarket|convenience|clothes|shoes|electronics|books|pharmacy|bakery|butcher",
		LooseFilter: "supermarket|convenience|clothes|shoes|electronics|books|pharmacy|bakery|butcher",
	},
	CategoryLodging: {
		Indicators:  []string{"hospedagem", "hotel", "pousada", "hostel", "albergue"},
		Actions:     []string{"dormir", "hospedar", "pernoitar"},
		Filter:      "hotel|hostel|guest_house|apartment|resort",
		LooseFilter: "hotel|hostel|guest_house|apartment|resort",
	},
	CategoryTransport: {
		Indicators:  []string{"transporte", "estação", "terminal", "aeroporto", "rodoviária"},
		Actions:     []string{"viajar", "ir para", "chegar"},
		Filter:      "bus_station|train_station|airport|ferry_terminal",
		LooseFilter: "bus_station|train_station|airport|ferry_terminal",
	},
	CategoryHealth: {
		Indicators:  []string{"saúde", "hospital", "clínica", "posto de saúde"},
		Actions:     []string{"doente", "médico", "remédio"},
		Filter:      "hospital|clinic|pharmacy|dentist|doctors",
		LooseFilter: "hospital|clinic|pharmacy|dentist|doctors",
	},
	CategoryEducation: {
		Indicators:  []string{"educação", "escola", "universidade", "biblioteca", "curso de idiomas"},
		Actions:     []string{"estudar", "curso", "aprender"},
		Filter:      "school|university|college|library",
		LooseFilter: "school|university|college|library",
	},
	CategoryWorship: {
		Indicators:  []string{"religião", "igreja", "templo", "mesquita", "sinagoga"},
		Actions:     []string{"rezar", "missa", "culto"},
		Filter:      "place_of_worship",
		LooseFilter: "place_of_worship",
	},
}

// RuleFor возвращает правила категории. Для категории без маппинга
// возвращаются фильтры по умолчанию.
func RuleFor(c Category) CategoryRule {
	if rule, ok := categoryRules[c]; ok {
		return rule
	}
	return CategoryRule{
		Filter:      DefaultFilter,
		LooseFilter: DefaultLooseFilter,
	}
}

// ParseCategory парсит строку в категорию из закрытого набора
func ParseCategory(s string) (Category, bool) {
	normalized := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range Categories {
		if c == normalized {
			return c, true
		}
	}
	return "", false
}

// IsValidCategory проверяет принадлежность к закрытому набору
func IsValidCategory(s string) bool {
	_, ok := ParseCategory(s)
	return ok
}

// MatchIndicators ищет первую категорию, чей лексический признак
// содержится в тексте. Перебор строго в порядке Categories.
func MatchIndicators(text string) (Category, bool) {
	lowered := strings.ToLower(text)
	for _, c := range Categories {
		for _, keyword := range categoryRules[c].Indicators {
			if strings.Contains(lowered, keyword) {
				return c, true
			}
		}
	}
	return "", false
}

// MatchActions ищет первую категорию по фразам действий.
// Вызывается только после того, как MatchIndicators ничего не нашёл.
func MatchActions(text string) (Category, bool) {
	lowered := strings.ToLower(text)
	for _, c := range Categories {
		for _, phrase := range categoryRules[c].Actions {
			if strings.Contains(lowered, phrase) {
				return c, true
			}
		}
	}
	return "", false
}
