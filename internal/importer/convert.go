package importer

import (
	"time"

	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/timeline"
	"github.com/google/uuid"
)

// GeneratedTimeline holds the domain objects produced from an import schema,
// ready for persistence.
type GeneratedTimeline struct {
	Items       []*domain.ScheduleItem
	Edges       []domain.DependencyEdge
	BufferHours *float64
	Granularity *string
}

// Convert transforms a validated ImportSchema into domain objects. Call
// ValidateImportSchema first; Convert assumes the schema is structurally
// valid. Unparsable timestamps leave the item unscheduled.
func Convert(schema *ImportSchema) *GeneratedTimeline {
	now := time.Now().UTC()

	refMap := make(map[string]string) // ref -> generated ID

	items := make([]*domain.ScheduleItem, 0, len(schema.Items))
	for _, in := range schema.Items {
		id := uuid.New().String()
		refMap[in.Ref] = id

		ty := domain.ItemType(in.Type)
		item := &domain.ScheduleItem{
			ID:        id,
			Title:     in.Title,
			Type:      ty,
			Lane:      domain.CoalesceStr(strFromPtr(in.Lane), domain.LaneForType(ty)),
			Territory: strFromPtr(in.Territory),
			Priority:  domain.IntFromPtrWithDefault(0, in.Priority),
			Note:      strFromPtr(in.Note),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if in.StartsAt != nil {
			item.StartsAt = timeline.ParseTimestamp(*in.StartsAt)
		}
		if in.EndsAt != nil {
			item.EndsAt = timeline.ParseTimestamp(*in.EndsAt)
		}
		items = append(items, item)
	}

	edges := make([]domain.DependencyEdge, 0, len(schema.Dependencies))
	for _, dep := range schema.Dependencies {
		edges = append(edges, domain.DependencyEdge{
			FromItemID: refMap[dep.FromRef],
			ToItemID:   refMap[dep.ToRef],
			Kind:       domain.ParseDependencyKind(strFromPtr(dep.Kind)),
			Note:       strFromPtr(dep.Note),
		})
	}

	generated := &GeneratedTimeline{Items: items, Edges: edges}
	if schema.Settings != nil {
		generated.BufferHours = schema.Settings.BufferHours
		generated.Granularity = schema.Settings.Granularity
	}
	return generated
}

func strFromPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
