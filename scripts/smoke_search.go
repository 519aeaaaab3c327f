// +build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

type searchRequest struct {
	Query string   `json:"query"`
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	query := flag.String("query", "quero jantar", "search query text")
	flag.Parse()

	// Тестовый запрос (координаты São Paulo)
	reqBody := searchRequest{
		Query: *query,
		Lat:   ptr(-23.5505),
		Lon:   ptr(-46.6333),
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		log.Fatalf("Failed to marshal request: %v", err)
	}

	client := &http.Client{Timeout: 60 * time.Second}

	fmt.Printf("⏳ POST %s/api/v1/search with query %q...\n", *baseURL, *query)
	start := time.Now()

	resp, err := client.Post(*baseURL+"/api/v1/search", "application/json", bytes.NewReader(data))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var response map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Fatalf("Failed to decode response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		prettyJSON, _ := json.MarshalIndent(response, "", "  ")
		log.Fatalf("❌ Unexpected status %d:\n%s", resp.StatusCode, prettyJSON)
	}

	fmt.Printf("✅ Response received in %s!\n", time.Since(start).Round(time.Millisecond))
	prettyJSON, _ := json.MarshalIndent(response, "", "  ")
	fmt.Printf("%s\n", prettyJSON)
}
