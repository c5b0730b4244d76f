package driver

// Proteins are (:Protein {id}) nodes. Each stored interaction is one directed
// INTERACTS_WITH relationship tagged with its database; direction only
// records how the row was written.

var IndexQueries = []string{
	"CREATE INDEX ON :Protein(id);",
}

const (
	// SaveInteractionQuery stores one row. Proteins are shared; every row,
	// repeated ones included, gets its own relationship, as in the SQLite table.
	SaveInteractionQuery = `
		MERGE (a:Protein {id: $protein_a})
		MERGE (b:Protein {id: $protein_b})
		CREATE (a)-[r:INTERACTS_WITH {database: $database, type: $interaction_type, seq: $seq}]->(b)
		RETURN r.seq AS seq
	`

	// NextSeqQuery returns the next free insertion sequence number.
	NextSeqQuery = `
		MATCH ()-[r:INTERACTS_WITH]->()
		RETURN coalesce(max(r.seq), -1) + 1 AS next
	`

	// FetchEgoNetworkQuery returns every interaction among the protein and
	// its direct partners, in insertion order.
	FetchEgoNetworkQuery = `
		MATCH (p:Protein {id: $protein_id})-[:INTERACTS_WITH {database: $database}]-(n:Protein)
		WITH p, [x IN collect(DISTINCT n) WHERE x <> p] + [p] AS members
		UNWIND members AS a
		MATCH (a)-[r:INTERACTS_WITH {database: $database}]->(b:Protein)
		WHERE b IN members
		RETURN a.id AS protein_a, b.id AS protein_b, r.type AS interaction_type
		ORDER BY r.seq
	`
)
