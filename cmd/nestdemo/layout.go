package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// layout describes the demo content.
type layout struct {
	Title        string   `yaml:"title"`
	HeaderHeight int      `yaml:"header_height"`
	Header       []string `yaml:"header"`
	Items        int      `yaml:"items"`
	Wheel        int      `yaml:"wheel"`
}

func defaultLayout() layout {
	header := []string{
		"Nested scrolling",
		"",
		"This header is a layer of its own. Scrolling down first moves the",
		"text inside it, then pushes the whole header out of the container,",
		"and only then starts scrolling the list below.",
		"",
		"Scrolling back up runs the same path in reverse: the list returns",
		"to its start, the header slides back in, and its text scrolls up.",
		"",
		"g/G jump to the very top or bottom, t puts the list at the top of",
		"the screen.",
	}
	return layout{
		Title:        "nestdemo",
		HeaderHeight: 6,
		Header:       header,
		Items:        200,
		Wheel:        3,
	}
}

// loadLayout reads path over the defaults. An empty path returns the
// defaults.
func loadLayout(path string) (layout, error) {
	lay := defaultLayout()
	if path == "" {
		return lay, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return lay, fmt.Errorf("failed to read layout: %w", err)
	}
	if err := yaml.Unmarshal(data, &lay); err != nil {
		return lay, fmt.Errorf("failed to parse layout: %w", err)
	}
	if lay.HeaderHeight <= 0 {
		return lay, fmt.Errorf("layout: header_height must be positive, got %d", lay.HeaderHeight)
	}
	if lay.Items < 0 {
		return lay, fmt.Errorf("layout: items must not be negative, got %d", lay.Items)
	}
	if lay.Wheel <= 0 {
		lay.Wheel = 1
	}
	return lay, nil
}
