package domain

// Статический fallback: курируемые примеры мест по категориям.
// Используется только когда оба живых запроса к провайдеру исчерпаны,
// чтобы клиент всегда получал непустой результат.

func ratingPtr(v float64) *float64 { return &v }

var examplePlaces = map[Category][]Place{
	CategoryFood: {
		{Name: "Restaurante Sabor & Arte", Address: "Rua das Flores, 123 - Centro", Rating: ratingPtr(4.5)},
		{Name: "Pizzaria Bella Vista", Address: "Av. Principal, 456 - Vila Nova", Rating: ratingPtr(4.2)},
		{Name: "Café Central", Address: "Praça da Liberdade, 789 - Centro", Rating: ratingPtr(4.0)},
		{Name: "Lanchonete do João", Address: "Rua Comercial, 321 - Bairro Novo", Rating: ratingPtr(3.8)},
	},
	CategoryDrink: {
		{Name: "Bar do Zé", Address: "Rua da Noite, 100 - Centro", Rating: ratingPtr(4.3)},
		{Name: "Pub Irlandês", Address: "Av. Internacional, 200 - Vila", Rating: ratingPtr(4.1)},
		{Name: "Café Especial", Address: "Rua das Artes, 150 - Centro", Rating: ratingPtr(4.4)},
		{Name: "Lounge Moderno", Address: "Praça da Cultura, 300 - Centro", Rating: ratingPtr(4.0)},
	},
	CategoryLeisure: {
		{Name: "Parque Central", Address: "Av. das Árvores, s/n - Centro", Rating: ratingPtr(4.6)},
		{Name: "Praça da Liberdade", Address: "Centro da Cidade", Rating: ratingPtr(4.2)},
		{Name: "Academia FitLife", Address: "Rua do Esporte, 500 - Vila", Rating: ratingPtr(4.1)},
		{Name: "Piscina Municipal", Address: "Complexo Esportivo - Centro", Rating: ratingPtr(4.0)},
	},
	CategoryEntertainment: {
		{Name: "Cinema Multiplex", Address: "Shopping Center, 2º andar", Rating: ratingPtr(4.3)},
		{Name: "Teatro Municipal", Address: "Praça das Artes, 1 - Centro", Rating: ratingPtr(4.5)},
		{Name: "Museu da Cidade", Address: "Rua da História, 50 - Centro", Rating: ratingPtr(4.2)},
		{Name: "Galeria de Arte", Address: "Rua das Artes, 75 - Centro", Rating: ratingPtr(4.0)},
	},
	CategoryShopping: {
		{Name: "Shopping Center", Address: "Av. Comercial, 1000 - Centro", Rating: ratingPtr(4.4)},
		{Name: "Supermercado Bom Preço", Address: "Rua do Comércio, 200 - Vila", Rating: ratingPtr(4.1)},
		{Name: "Farmácia Central", Address: "Rua da Saúde, 150 - Centro", Rating: ratingPtr(4.0)},
		{Name: "Livraria Cultura", Address: "Praça do Conhecimento, 25 - Centro", Rating: ratingPtr(4.3)},
	},
}

// ExamplePlaces возвращает статические примеры для категории.
// Категории без курируемого списка переиспользуют список food.
// Возвращается копия, чтобы вызывающий код не мутировал данные.
func ExamplePlaces(c Category) []Place {
	places, ok := examplePlaces[c]
	if !ok {
		places = examplePlaces[CategoryFood]
	}

	result := make([]Place, len(places))
	copy(result, places)
	return result
}
