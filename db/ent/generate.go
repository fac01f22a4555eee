package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/knowledgepipe/knowledgepipe/gen/ent",
			Schema:  "github.com/knowledgepipe/knowledgepipe/db/ent/schema",
			// upsert support backs the idempotent job registration
			Features: []gen.Feature{gen.FeatureUpsert},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
