// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Chunk is the predicate function for chunk builders.
type Chunk func(*sql.Selector)

// IngestJob is the predicate function for ingestjob builders.
type IngestJob func(*sql.Selector)
