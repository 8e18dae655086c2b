package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/glide/internal/config"
	"github.com/jask/glide/internal/prefs"
	"github.com/jask/glide/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	profiles, err := prefs.LoadProfiles()
	if err != nil {
		log.Fatalf("profiles: %v", err)
	}
	if p, ok := profiles[cfg.UI.Profile]; ok {
		cfg = prefs.Apply(cfg, p)
	} else if cfg.UI.Profile != "" {
		log.Printf("warn: unknown feel profile %q, using config values", cfg.UI.Profile)
	}

	p := tea.NewProgram(tui.New(cfg, seedNotes(), seedIdeas()),
		tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func seedNotes() []tui.Note {
	return []tui.Note{
		{Title: "Anniversary dinner", Body: "Book the corner table at Olive & Thyme for the 14th"},
		{Title: "Gift idea", Body: "The blue ceramic teapot from the weekend market"},
		{Title: "Her sister's birthday", Body: "March 3rd — she mentioned wanting to do a joint call"},
		{Title: "Coffee order", Body: "Oat flat white, extra hot, no sugar"},
		{Title: "Movie backlog", Body: "Still hasn't seen Spirited Away, keep a Friday free"},
		{Title: "Allergy", Body: "Walnuts. Check dessert menus before ordering"},
	}
}

func seedIdeas() []tui.Idea {
	return []tui.Idea{
		{Title: "Picnic at the point", Body: "Sunset side, bring the good blanket", Accent: "#a6e3a1"},
		{Title: "Gallery morning", Body: "New photography wing opens this month", Accent: "#89b4fa"},
		{Title: "Night market", Body: "Thursday only, go hungry", Accent: "#f9e2af"},
		{Title: "Pottery class", Body: "Two seats, book a week ahead", Accent: "#f38ba8"},
		{Title: "Record store crawl", Body: "Start at the one with the listening booths", Accent: "#cba6f7"},
	}
}
