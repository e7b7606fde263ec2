package strategy

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"go-pokedle/internal/vocabulary"
)

// jsonNode is the on-the-wire shape from spec.md §4.8: non-terminal emits
// {"guess":"<word>","rem":<|S|>,"edges":{"<judge-string>":<child>,...}};
// terminal emits {}. The guess/edges shape is grounded on
// original_source/src/tree.rs's Node::write; "rem" is spec.md's own
// addition and appears in neither Rust revision's output.
type jsonNode struct {
	Guess string               `json:"guess,omitempty"`
	Rem   int                  `json:"rem,omitempty"`
	Edges map[string]*jsonNode `json:"edges,omitempty"`
}

func toJSONNode(n *Node, v *vocabulary.Vocabulary) *jsonNode {
	if n.Terminal {
		return &jsonNode{}
	}
	edges := make(map[string]*jsonNode, len(n.Edges))
	for j, child := range n.Edges {
		edges[j.String()] = toJSONNode(child, v)
	}
	return &jsonNode{
		Guess: v.Word(n.Guess),
		Rem:   len(n.RemAns),
		Edges: edges,
	}
}

// WriteJSON serializes the tree rooted at n in the exact shape spec.md
// §4.8 specifies.
func WriteJSON(w io.Writer, n *Node, v *vocabulary.Vocabulary) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(toJSONNode(n, v)); err != nil {
		return errors.Wrap(err, "strategy: encode tree json")
	}
	return nil
}
