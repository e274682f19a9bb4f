package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// StartParams are the inputs gathered before a crawl begins.
type StartParams struct {
	Category  string
	StartPage int
}

// promptStartParams walks the user through picking a category and a
// starting page, then asks for confirmation. Returns ok=false when the
// user declines or input runs out; a cancelled run has no side effects.
func promptStartParams(in io.Reader, out io.Writer, categories []string) (StartParams, bool) {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, "Available categories:")
	for i, c := range categories {
		fmt.Fprintf(out, "  %d) %s\n", i+1, c)
	}
	fmt.Fprintf(out, "  %d) Custom category\n", len(categories)+1)

	var category string
	for category == "" {
		fmt.Fprint(out, "Select a category: ")
		line, err := reader.ReadString('\n')
		choice := strings.TrimSpace(line)
		if err != nil && choice == "" {
			return StartParams{}, false
		}
		if n, convErr := strconv.Atoi(choice); convErr == nil {
			switch {
			case n >= 1 && n <= len(categories):
				category = categories[n-1]
			case n == len(categories)+1:
				fmt.Fprint(out, "Enter category name: ")
				custom, _ := reader.ReadString('\n')
				category = strings.TrimSpace(custom)
			}
		} else if choice != "" {
			category = choice
		}
	}

	page := 1
	fmt.Fprint(out, "Starting page [1]: ")
	pageLine, _ := reader.ReadString('\n')
	if n, convErr := strconv.Atoi(strings.TrimSpace(pageLine)); convErr == nil && n >= 1 {
		page = n
	}

	fmt.Fprintf(out, "Crawl %q starting at page %d. Continue? [y/N]: ", category, page)
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer != "y" && answer != "yes" {
		return StartParams{}, false
	}

	return StartParams{Category: category, StartPage: page}, true
}
