// Package navigation decides which view is active for a location fragment
// and evaluates it against the attribute records.
package navigation

import "strings"

// State is the active view.
type State string

const (
	ListState   State = "list"
	DetailState State = "detail"
)

// detailPrefix introduces a record id in a fragment.
const detailPrefix = "#/attr/"

// Route is the parsed form of a location fragment.
type Route struct {
	State State
	ID    string // Set in DetailState
}

// ParseFragment maps a fragment to a Route. "#/attr/<id>" selects the detail
// view for the literal remainder; everything else, including the empty
// fragment and "#/", selects the list. A fragment without its leading '#'
// is accepted.
func ParseFragment(fragment string) Route {
	if fragment != "" && !strings.HasPrefix(fragment, "#") {
		fragment = "#" + fragment
	}
	if id, ok := strings.CutPrefix(fragment, detailPrefix); ok {
		return Route{State: DetailState, ID: id}
	}
	return Route{State: ListState}
}

// Fragment returns the fragment that selects r.
func (r Route) Fragment() string {
	if r.State == DetailState {
		return detailPrefix + r.ID
	}
	return "#/"
}
