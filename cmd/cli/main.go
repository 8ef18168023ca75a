package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"rea/internal/config"
	"rea/internal/model"
	"rea/internal/repository"
	"rea/internal/service"
)

const maxShown = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	listings, err := repository.LoadCSV(cfg.Dataset.CSVPath)
	if err != nil {
		log.Fatalf("Failed to load dataset from %s: %v", cfg.Dataset.CSVPath, err)
	}

	var ollamaClient service.Generator
	if cfg.Ollama.Enabled {
		ollamaClient = service.NewOllamaClient(&cfg.Ollama)
	}
	extractor := service.NewCriteriaExtractor(ollamaClient)

	fmt.Println("🏠 Real Estate Assistant — CLI")
	messages := []model.Message{
		{Role: model.RoleAssistant, Content: "Hello! Describe what you're looking for."},
	}
	fmt.Println("assistant>", messages[0].Content)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if lower := strings.ToLower(input); lower == "quit" || lower == "exit" {
			break
		}

		messages = append(messages, model.Message{Role: model.RoleUser, Content: input})

		extraction := extractor.Extract(context.Background(), messages)
		results := service.FilterAndRank(listings, extraction.Filters)

		if extraction.FollowUp != "" {
			fmt.Println("assistant>", extraction.FollowUp)
		} else {
			fmt.Println("assistant> Showing matches:")
			printResults(results)
		}

		reply := extraction.FollowUp
		if reply == "" {
			reply = "Here are results."
		}
		messages = append(messages, model.Message{Role: model.RoleAssistant, Content: reply})
	}
}

func printResults(results []model.ScoredListing) {
	if len(results) == 0 {
		fmt.Println("No matches found.")
		return
	}
	if len(results) > maxShown {
		results = results[:maxShown]
	}
	for _, r := range results {
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("%dBR %s in %s, %s\n", r.Bedrooms, r.Type, r.Neighborhood, r.City)
		fmt.Printf("Price: %d %s\n", r.Price, r.Currency)
		fmt.Println(r.Description)
	}
}
