package registry

import (
	"sort"

	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// IntegrityReport is the outcome of a catalog self-check.
type IntegrityReport struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// ValidateIntegrity audits the catalog for duplicate ids in the category
// index and for descriptors filed under a category that disagrees with
// their own metadata. Overwrite semantics should make both impossible; the
// check exists so index corruption surfaces as a loud warning instead of a
// silently wrong picker UI.
func (r *Registry) ValidateIntegrity() IntegrityReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := IntegrityReport{Valid: true}
	seen := make(map[string]int)

	for category, ids := range r.byCategory {
		for _, id := range ids {
			seen[id]++
			d, ok := r.entries[id]
			if !ok {
				report.Errors = append(report.Errors, (&widget.IntegrityError{
					WidgetType: id,
					Reason:     "indexed under category " + category + " but absent from the catalog",
				}).Error())
				continue
			}
			if meta := d.Metadata(); meta.Category != category {
				report.Errors = append(report.Errors, (&widget.IntegrityError{
					WidgetType: id,
					Reason:     "indexed under category " + category + " but declares " + meta.Category,
				}).Error())
			}
		}
	}
	for id, count := range seen {
		if count > 1 {
			report.Errors = append(report.Errors, (&widget.IntegrityError{
				WidgetType: id,
				Reason:     "appears in the category index more than once",
			}).Error())
		}
	}

	sort.Strings(report.Errors)
	report.Valid = len(report.Errors) == 0
	return report
}

// CheckCompleteness lists the registered widget types that rely on the
// interactive-with-preview fallback instead of shipping a dedicated
// production-safe pipeline. The fallback is legal but can mask an
// incomplete implementation in production, so hosts are expected to run
// this once after registration and review the result.
func (r *Registry) CheckCompleteness() []string {
	incomplete := make([]string, 0)
	for _, d := range r.All() {
		readiness, ok := d.(widget.ProductionReadiness)
		if !ok || !readiness.HasProductionPipeline() {
			incomplete = append(incomplete, d.Metadata().ID)
		}
	}
	sort.Strings(incomplete)
	if len(incomplete) > 0 {
		r.logger.Warn("registry: descriptors without a dedicated production-safe pipeline",
			"count", len(incomplete),
			"ids", incomplete)
	}
	return incomplete
}
