package types

// Instrument is the metadata behind an opaque instrument reference from the
// order export. Ref is whatever identifier the brokerage uses; Symbol is the
// ticker everything downstream is keyed by.
type Instrument struct {
	Ref    string `json:"ref"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
