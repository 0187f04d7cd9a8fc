package listing

import "github.com/rpggio/stageboard/internal/domain/project"

// DefaultPageSize is the number of records shown per page.
const DefaultPageSize = 25

// View is a stateful pager over a filtered project list. The zero value is
// not usable; call NewView.
type View struct {
	all      []project.Project
	filtered []project.Project
	criteria Criteria
	pageSize int
	page     int
}

// NewView creates a view over projects with no filters applied.
// A non-positive pageSize selects DefaultPageSize.
func NewView(projects []project.Project, pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	v := &View{all: projects, pageSize: pageSize}
	v.SetCriteria(Criteria{})
	return v
}

// SetCriteria re-filters the list and resets to the first page.
func (v *View) SetCriteria(c Criteria) {
	v.criteria = c
	v.filtered = Apply(v.all, c)
	v.page = 1
}

// Criteria returns the active filters.
func (v *View) Criteria() Criteria { return v.criteria }

// Goto moves to page n. Pages outside [1, PageCount] are ignored.
func (v *View) Goto(n int) {
	if n < 1 || n > v.PageCount() {
		return
	}
	v.page = n
}

// Page returns the current 1-based page.
func (v *View) Page() int { return v.page }

// PageSize returns the number of records per page.
func (v *View) PageSize() int { return v.pageSize }

// Total returns the number of filtered records.
func (v *View) Total() int { return len(v.filtered) }

// Filtered returns every record matching the criteria.
func (v *View) Filtered() []project.Project { return v.filtered }

// PageCount returns ceil(Total / PageSize). It is zero when nothing matches.
func (v *View) PageCount() int {
	return (len(v.filtered) + v.pageSize - 1) / v.pageSize
}

// Window returns the records visible on the current page.
func (v *View) Window() []project.Project {
	start := (v.page - 1) * v.pageSize
	if start >= len(v.filtered) {
		return []project.Project{}
	}
	end := min(start+v.pageSize, len(v.filtered))
	return v.filtered[start:end]
}

// Page is a stateless snapshot of one page of a query.
type Page struct {
	Items     []project.Project `json:"items"`
	Page      int               `json:"page"`
	PageCount int               `json:"pageCount"`
	PageSize  int               `json:"pageSize"`
	Total     int               `json:"total"`
}

// Query filters projects by c and returns the requested page. An out of
// range page falls back to the first page.
func Query(projects []project.Project, c Criteria, page, pageSize int) Page {
	v := NewView(projects, pageSize)
	v.SetCriteria(c)
	v.Goto(page)
	return Page{
		Items:     v.Window(),
		Page:      v.Page(),
		PageCount: v.PageCount(),
		PageSize:  v.PageSize(),
		Total:     v.Total(),
	}
}
