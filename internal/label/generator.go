package label

import (
	"context"
	"fmt"

	"github.com/Afrawles/labelflat/internal/nutrient"
)

type Generator struct {
	Sources []RecordSource
}

func NewGenerator(sources ...RecordSource) *Generator {
	return &Generator{Sources: sources}
}

// Generate fetches records from all sources. Record order within and
// across sources is preserved so output groups line up with the input.
func (g *Generator) Generate(ctx context.Context) ([]Record, error) {
	var all []Record
	errors := make(map[string]error)

	for _, src := range g.Sources {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := src.HealthCheck(); err != nil {
			errors[src.Name()] = fmt.Errorf("health check failed: %w", err)
			continue
		}

		records, err := src.FetchRecords()
		if err != nil {
			errors[src.Name()] = err
			continue
		}

		all = append(all, records...)
	}

	if len(errors) > 0 && len(all) == 0 {
		return nil, fmt.Errorf("failed to fetch from all sources: %v", errors)
	}

	return all, nil
}

// Statistics generates summary stats for an expansion
func (g *Generator) Statistics(records []Record, rows []Row) map[string]any {
	stats := make(map[string]any)

	byNutrient := make(map[string]int)
	for _, row := range rows {
		if name := row[NutrientColumn]; name != "" {
			byNutrient[name]++
		}
	}

	withoutNutrients := 0
	for _, rec := range records {
		if len(nutrient.Parse(rec.Get(NutrientColumn))) == 0 {
			withoutNutrients++
		}
	}

	stats["records"] = len(records)
	stats["rows"] = len(rows)
	stats["continuation_rows"] = len(rows) - len(records)
	stats["records_without_nutrients"] = withoutNutrients
	stats["distinct_nutrients"] = len(byNutrient)
	stats["by_nutrient"] = byNutrient
	return stats
}
