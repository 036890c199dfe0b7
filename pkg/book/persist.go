package book

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// JSON maps need string keys, so the book is flattened into an entry list.
// State and move types must round-trip through encoding/json, which in
// practice means exported fields.
type bookEntry[S minimax.StateLike, M minimax.MoveLike] struct {
	State S `json:"state"`
	Move  M `json:"move"`
}

// Save writes the book as a JSON entry list.
func (b *Book[S, M]) Save(w io.Writer) error {
	entries := lo.MapToSlice(b.entries, func(state S, mv M) bookEntry[S, M] {
		return bookEntry[S, M]{State: state, Move: mv}
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding book: %w", err)
	}
	return nil
}

// Load reads a book previously written by Save.
func Load[S minimax.StateLike, M minimax.MoveLike](r io.Reader) (*Book[S, M], error) {
	var entries []bookEntry[S, M]
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding book: %w", err)
	}

	b := &Book[S, M]{entries: make(map[S]M, len(entries))}
	for _, e := range entries {
		b.entries[e.State] = e.Move
	}
	return b, nil
}
