package widget

import (
	"sort"
	"time"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
)

// SectionMeta is the audit trail the external store maintains per section.
type SectionMeta struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
}

// Section is one persisted placement of a widget instance on a page. The
// external persistence collaborator owns the lifecycle; this framework only
// reads sections, it never creates, persists, or deletes them.
type Section struct {
	ID         string              `json:"id"`
	WidgetType string              `json:"widgetType"`
	Title      string              `json:"title,omitempty"`
	Order      int                 `json:"order"`
	Active     bool                `json:"isActive"`
	Data       schema.InstanceData `json:"data"`
	Meta       SectionMeta         `json:"metadata"`
}

// SortSections returns the active sections in ascending order. The input
// slice is left untouched; ties preserve the incoming relative order.
func SortSections(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, section := range sections {
		if section.Active {
			out = append(out, section)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
