package mt

import (
	"context"

	schema "github.com/kujaku11/mtschema"
)

var experimentSchema = buildExperiment()

// Experiment returns the schema for a top-level document grouping surveys,
// the shape archives exchange whole datasets in.
func Experiment() *schema.RecordSchema { return experimentSchema }

func buildExperiment() *schema.RecordSchema {
	return schema.NewSchema("experiment").
		Field("id", schema.KindString).Style(schema.StyleAlphaNumeric).
		Field("description", schema.KindString).
		List("surveys", surveySchema).
		MustBuild()
}

// ParseExperiment decodes and validates a whole experiment document: surveys,
// their stations, runs, channels, and filters, with every level's issues
// collected into one report.
func ParseExperiment(ctx context.Context, src schema.Source) (*schema.Record, error) {
	return schema.ParseFrom(ctx, experimentSchema, src)
}

// ParseSurvey decodes and validates a single survey document.
func ParseSurvey(ctx context.Context, src schema.Source) (*schema.Record, error) {
	return schema.ParseFrom(ctx, surveySchema, src)
}
