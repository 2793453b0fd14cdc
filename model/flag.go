package model

type Flags struct {
	Region         string
	Profile        string
	HighlightColor string
}
