package searcher

import (
	"fmt"
	"math"

	"advisor/game"
)

// node is one tree position. Children live in an insertion-ordered slice so
// selection and extraction tie-breaks are deterministic: scans keep the first
// maximum, i.e. the earliest-expanded child wins.
type node struct {
	state      game.State
	parent     *node
	action     game.Action
	children   []*node
	visits     int
	totalValue float64
	untried    []game.Action
}

func newNode(parent *node, action game.Action, state game.State) *node {
	return &node{
		state:   state,
		parent:  parent,
		action:  action,
		untried: state.LegalActions(),
	}
}

func (n *node) terminal() bool {
	return n.state.IsTerminal()
}

func (n *node) fullyExpanded() bool {
	return len(n.untried) == 0
}

// bestChild returns the child maximizing the UCT score. An unvisited child
// scores infinite and is returned immediately.
func (n *node) bestChild(exploration float64) *node {
	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		if child.visits == 0 {
			return child
		}
		exploit := child.totalValue / float64(child.visits)
		explore := exploration * math.Sqrt(math.Log(float64(n.visits))/float64(child.visits))
		if score := exploit + explore; score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// addChild expands action into a child node, moving the action from the
// untried set into the children list. Expanding an action that is not
// untried is a programmer error.
func (n *node) addChild(action game.Action, state game.State) *node {
	index := -1
	for i, a := range n.untried {
		if a == action {
			index = i
			break
		}
	}
	if index < 0 {
		panic(fmt.Sprintf("expanding action %q not in untried set", action))
	}
	n.untried = append(n.untried[:index], n.untried[index+1:]...)

	child := newNode(n, action, state)
	n.children = append(n.children, child)
	return child
}

// mostVisited returns the robust child, nil when there are no children.
func (n *node) mostVisited() *node {
	var best *node
	maxVisits := -1
	for _, child := range n.children {
		if child.visits > maxVisits {
			best = child
			maxVisits = child.visits
		}
	}
	return best
}
