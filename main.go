package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	var (
		category     = flag.String("category", "", "Lesson category to crawl (prompts interactively when empty)")
		startPage    = flag.Int("page", 1, "Listing page number to start from (minimum 1)")
		outputDir    = flag.String("o", "", "Output directory (defaults to "+defaultOutputDir+")")
		settingsPath = flag.String("settings", "settings.yaml", "Path to optional settings file")
		transcripts  = flag.Bool("transcripts", false, "Save lesson page text next to each audio file")
	)
	flag.Parse()

	cfg, err := LoadConfig(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	cfg.SaveTranscripts = *transcripts

	params := StartParams{Category: *category, StartPage: *startPage}
	if params.Category == "" {
		var ok bool
		params, ok = promptStartParams(os.Stdin, os.Stdout, cfg.Categories)
		if !ok {
			fmt.Println("Cancelled.")
			return
		}
	}
	if params.StartPage < 1 {
		params.StartPage = 1
	}

	startURL := cfg.ListingURL(params.Category, params.StartPage)
	logInfo("Starting crawl of %q at page %d", params.Category, params.StartPage)

	crawler := NewCrawler(cfg)
	if err := crawler.Run(startURL); err != nil {
		log.Fatal("Crawl failed: ", err)
	}
}
