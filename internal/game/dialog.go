package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/portfolio-fx/internal/typing"
)

func (g *Game) openPhrasesDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Headline Phrases"),
		zenity.FileFilters{{
			Name:     "Text",
			Patterns: []string{"*.txt", "*.text"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadPhrases(filename)
}

// loadPhrases swaps the typewriter's phrases for those in path.
func (g *Game) loadPhrases(path string) error {
	phrases, err := typing.LoadPhrases(path)
	if err != nil {
		return err
	}
	g.typer.Reset(phrases)
	g.lastTyped = g.typer.Typed()
	log.Printf("Loaded %d phrases from %s", len(phrases), path)
	return nil
}
