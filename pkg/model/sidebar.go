package model

// SidebarType identifies how a navigation entry behaves.
type SidebarType string

const (
	SidebarPage     SidebarType = "page"
	SidebarDatabase SidebarType = "database"
	SidebarCalendar SidebarType = "calendar"
	SidebarNotes    SidebarType = "notes"
)

// SidebarItem is a static navigation entry. Children form a recursive tree;
// expand/collapse state is tracked by the UI keyed on ID.
type SidebarItem struct {
	ID       string
	Title    string
	Icon     string
	Type     SidebarType
	Children []SidebarItem
}

// DefaultSidebar returns the built-in navigation entries in display order.
func DefaultSidebar() []SidebarItem {
	return []SidebarItem{
		{ID: "dashboard", Title: "Dashboard", Icon: "◈", Type: SidebarPage},
		{ID: "calendar", Title: "Calendar", Icon: "▦", Type: SidebarCalendar},
		{ID: "notes", Title: "Notes", Icon: "✎", Type: SidebarNotes},
		{ID: "tasks", Title: "Tasks", Icon: "☑", Type: SidebarDatabase},
	}
}

// Flatten walks the tree depth-first, emitting every item whose ancestors are
// all expanded, along with its nesting depth.
func Flatten(items []SidebarItem, expanded map[string]bool) []FlatSidebarItem {
	out := make([]FlatSidebarItem, 0, len(items))
	var walk func(items []SidebarItem, depth int)
	walk = func(items []SidebarItem, depth int) {
		for _, item := range items {
			out = append(out, FlatSidebarItem{Item: item, Depth: depth})
			if len(item.Children) > 0 && expanded[item.ID] {
				walk(item.Children, depth+1)
			}
		}
	}
	walk(items, 0)
	return out
}

// FlatSidebarItem is a sidebar entry paired with its tree depth.
type FlatSidebarItem struct {
	Item  SidebarItem
	Depth int
}
