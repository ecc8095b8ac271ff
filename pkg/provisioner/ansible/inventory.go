package ansible

// UngroupedGroupName is the implicit group holding scenario-wide vars and any
// instance that declares no groups.
const UngroupedGroupName = "ungrouped"

// Inventory maps an inventory group name to its hosts, vars and children.
type Inventory map[string]*Group

// Group is one inventory group. Hosts maps instance name to connection
// options; Children nests groups one level deep.
type Group struct {
	Hosts    map[string]any    `yaml:"hosts"`
	Vars     map[string]any    `yaml:"vars,omitempty"`
	Children map[string]*Group `yaml:"children,omitempty"`
}

func newGroup() *Group {
	return &Group{Hosts: map[string]any{}}
}

// group returns the named group, inserting an empty one on first access.
func (inv Inventory) group(name string) *Group {
	g, ok := inv[name]
	if !ok {
		g = newGroup()
		inv[name] = g
	}
	return g
}

// child returns the named child group, inserting an empty one on first access.
func (g *Group) child(name string) *Group {
	if g.Children == nil {
		g.Children = map[string]*Group{}
	}
	c, ok := g.Children[name]
	if !ok {
		c = newGroup()
		g.Children[name] = c
	}
	return c
}
