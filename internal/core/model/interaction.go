package model

import "strings"

// Database selects which interaction database a record source reads from.
type Database string

const (
	DatabaseBioGRID Database = "BioGRID"
	DatabaseSTRING  Database = "STRING"
)

// Databases lists the selectable databases in display order.
var Databases = []Database{DatabaseBioGRID, DatabaseSTRING}

// ParseDatabase matches a selector case-insensitively against the known databases.
func ParseDatabase(s string) (Database, bool) {
	s = strings.TrimSpace(s)
	for _, db := range Databases {
		if strings.EqualFold(string(db), s) {
			return db, true
		}
	}
	return "", false
}

// InteractionRecord is one row returned by a record source.
type InteractionRecord struct {
	ProteinA        string `json:"protein_a" yaml:"protein_a"`
	ProteinB        string `json:"protein_b" yaml:"protein_b"`
	InteractionType string `json:"interaction_type" yaml:"interaction_type"`
}
