package gallery

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownStory is returned by Find for names that match no story.
var ErrUnknownStory = errors.New("unknown story")

// Registry is an ordered set of stories.
type Registry struct {
	stories []Story
}

// NewRegistry indexes stories in the given order. With no arguments it
// holds the built-in stories.
func NewRegistry(stories ...Story) *Registry {
	if len(stories) == 0 {
		stories = Stories()
	}
	return &Registry{stories: stories}
}

func (r *Registry) Len() int { return len(r.stories) }

func (r *Registry) At(i int) Story { return r.stories[i] }

// IDs lists story ids in order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.stories))
	for _, s := range r.stories {
		out = append(out, s.ID())
	}
	return out
}

// Pages lists pages in order of first appearance.
func (r *Registry) Pages() []string {
	var out []string
	for _, s := range r.stories {
		if !slices.Contains(out, s.Page) {
			out = append(out, s.Page)
		}
	}
	return out
}

// PageStories returns the indexes of the stories on page.
func (r *Registry) PageStories(page string) []int {
	var out []int
	for i, s := range r.stories {
		if s.Page == page {
			out = append(out, i)
		}
	}
	return out
}

// Find resolves a "page/story" id, or a bare page name to its first
// story. Matching is case-insensitive. Unknown names wrap
// ErrUnknownStory and suggest the closest id.
func (r *Registry) Find(name string) (int, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, s := range r.stories {
		if s.ID() == want {
			return i, nil
		}
	}
	for i, s := range r.stories {
		if strings.ToLower(s.Page) == want {
			return i, nil
		}
	}
	if suggestion := r.Suggest(want); suggestion != "" {
		return -1, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownStory, name, suggestion)
	}
	return -1, fmt.Errorf("%w %q", ErrUnknownStory, name)
}

// Suggest returns the id closest to name by edit distance, or "" when
// nothing is reasonably close.
func (r *Registry) Suggest(name string) string {
	best, bestDist := "", -1
	for _, id := range r.IDs() {
		d := levenshtein.ComputeDistance(strings.ToLower(name), id)
		if bestDist < 0 || d < bestDist {
			best, bestDist = id, d
		}
	}
	if bestDist < 0 || bestDist > max(3, len(best)/2) {
		return ""
	}
	return best
}
