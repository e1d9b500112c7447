// Package models defines the vocabulary data model shared across the pipeline.
package models

import (
	"fmt"
	"strings"
)

// VocabularyType is the grammatical category of a dictionary entry.
type VocabularyType string

const (
	TypeVerb      VocabularyType = "verb"
	TypeNoun      VocabularyType = "noun"
	TypeAdjective VocabularyType = "adjective"
	// TypeUnset means the caller did not declare a type and classification
	// from the scraped page is required.
	TypeUnset VocabularyType = ""
)

// Sentinel values used when an extraction strategy comes up empty. They are
// part of the record shape, not errors: downstream card rendering shows them
// verbatim.
const (
	SentinelUnknown             = "unknown"
	SentinelTranslationNotFound = "translation not found"
	SentinelExampleNotFound     = "example not found"
	SentinelArticleNotFound     = "article not found"
	SentinelPluralNotFound      = "plural not found"
)

// ParseType converts a CSV type column value to a VocabularyType. Empty input
// means the type is unset and must be classified later. Anything else that is
// not a known category is a structural input error.
func ParseType(s string) (VocabularyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TypeUnset, nil
	case "verb":
		return TypeVerb, nil
	case "noun":
		return TypeNoun, nil
	case "adjective", "adj":
		return TypeAdjective, nil
	default:
		return TypeUnset, fmt.Errorf("unknown vocabulary type %q", s)
	}
}

// VocabularyEntry is one row of the input CSV. Immutable once parsed.
type VocabularyEntry struct {
	Word string
	Type VocabularyType
	// Row is the 1-based CSV data row number, for diagnostics. Zero when the
	// entry did not come from a file.
	Row int
}

// ConjugationPersons lists the six person/number slots of a present-tense
// table in source order. The slot keys are the pronoun labels exactly as the
// source site prints them in the first table column.
var ConjugationPersons = []string{"ich", "du", "er", "wir", "ihr", "sie"}

// Comparison holds the three comparison forms of an adjective.
type Comparison struct {
	Positive    string `yaml:"positive" json:"positive"`
	Comparative string `yaml:"comparative" json:"comparative"`
	Superlative string `yaml:"superlative" json:"superlative"`
}

// Declension holds the three adjective declension tables. Each table maps a
// "<gender>_<case>" key (e.g. "masculine_nominative") to the declined form.
// Combinations missing from the page are absent from the map.
type Declension struct {
	Strong map[string]string `yaml:"strong" json:"strong"`
	Weak   map[string]string `yaml:"weak" json:"weak"`
	Mixed  map[string]string `yaml:"mixed" json:"mixed"`
}

// DeclensionKey builds the compound lookup key for a gender/case pair.
func DeclensionKey(gender, grammaticalCase string) string {
	return gender + "_" + grammaticalCase
}

// Record is the structured linguistic data extracted for one word. It is a
// closed variant set: the concrete type is the discriminant, hard-coded by
// the extractor that produced it. Consumers switch exhaustively and treat an
// unexpected variant as a programming defect.
type Record interface {
	Type() VocabularyType
	Headword() string
	Translation() string
	Examples() []string
}

// BaseRecord carries the fields every variant shares.
type BaseRecord struct {
	Word        string   `yaml:"word" json:"word"`
	Translated  string   `yaml:"translation" json:"translation"`
	ExampleList []string `yaml:"examples" json:"examples"`
}

func (b BaseRecord) Headword() string    { return b.Word }
func (b BaseRecord) Translation() string { return b.Translated }
func (b BaseRecord) Examples() []string  { return b.ExampleList }

// VerbRecord is the VERB variant.
type VerbRecord struct {
	BaseRecord `yaml:",inline" json:",inline"`
	// Conjugations maps each pronoun slot to its present-tense form; slots
	// not found on the page hold the empty string.
	Conjugations map[string]string `yaml:"conjugations" json:"conjugations"`
	SimplePast   string            `yaml:"simple_past" json:"simple_past"`
	Perfekt      string            `yaml:"perfekt" json:"perfekt"`
}

func (VerbRecord) Type() VocabularyType { return TypeVerb }

// NounRecord is the NOUN variant.
type NounRecord struct {
	BaseRecord `yaml:",inline" json:",inline"`
	Article    string `yaml:"article" json:"article"`
	Plural     string `yaml:"plural" json:"plural"`
}

func (NounRecord) Type() VocabularyType { return TypeNoun }

// AdjectiveRecord is the ADJECTIVE variant.
type AdjectiveRecord struct {
	BaseRecord `yaml:",inline" json:",inline"`
	Comparison Comparison `yaml:"comparison" json:"comparison"`
	Declension Declension `yaml:"declension" json:"declension"`
}

func (AdjectiveRecord) Type() VocabularyType { return TypeAdjective }

// UnknownRecord is the fallback variant for pages that could not be
// classified. Translation and examples only, no grammatical detail.
type UnknownRecord struct {
	BaseRecord `yaml:",inline" json:",inline"`
}

func (UnknownRecord) Type() VocabularyType { return TypeUnset }
