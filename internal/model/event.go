package model

// Event is a raw list item projection for the generic events endpoint:
// the item id plus every field the list returns, untranslated.
type Event map[string]any
