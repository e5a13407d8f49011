package note

import (
	"context"
	"sort"
	"strings"

	"github.com/ribgsilva/user-notes/persistence/v1/note"
)

// List returns the notes owned by userId, newest first
func List(ctx context.Context, userId string) ([]Note, error) {
	found, err := note.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(found))
	for _, n := range found {
		notes = append(notes, fromPersistence(n))
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].DateCreated.After(notes[j].DateCreated)
	})
	return notes, nil
}

// Search is List narrowed by Filter
func Search(ctx context.Context, userId, query string) ([]Note, error) {
	notes, err := List(ctx, userId)
	if err != nil {
		return nil, err
	}
	return Filter(notes, query), nil
}

// Filter keeps the notes whose content contains query, ignoring case.
// An empty query keeps everything.
func Filter(notes []Note, query string) []Note {
	if query == "" {
		return notes
	}
	query = strings.ToLower(query)

	filtered := make([]Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Content), query) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
