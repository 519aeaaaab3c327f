// Package docs Places Microservice API.
//
// Сервис превращает свободный текст ("quero jantar fora") в список
// реальных мест. Двухэтапный пайплайн: классификация намерения в
// категорию из закрытого набора, затем поиск мест через OpenStreetMap
// (Overpass API) с многоуровневой деградацией до статических примеров.
//
// Основные возможности:
// - Классификация текста в категорию (удалённый LLM + локальный fallback)
// - Поиск мест по категории и опциональным координатам
// - Составной endpoint: классификация + поиск за один запрос
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
