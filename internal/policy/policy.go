// Package policy decides which user records an actor may see or change.
package policy

import (
	"github.com/dtroode/fostr-server/internal/model"
)

// Action is an operation on user records.
type Action string

const (
	ActionList   Action = "list"
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Actor is the authenticated user performing an action.
type Actor struct {
	Username string
	Role     model.Role
}

// ActorOf returns the actor for a stored user.
func ActorOf(u model.User) Actor {
	return Actor{Username: u.Username, Role: u.Role}
}

// Target identifies the record an action applies to.
type Target struct {
	Role     model.Role
	Username string
}

type requirement int

const (
	deny requirement = iota
	allow
	targetIsChild
	targetIsSelf
)

type rule struct {
	require requirement
	reason  string
}

var table = map[model.Role]map[Action]rule{
	model.RoleAdmin: {
		ActionList:   {require: allow},
		ActionView:   {require: allow},
		ActionCreate: {require: allow},
		ActionUpdate: {require: allow},
		ActionDelete: {require: allow},
	},
	model.RoleParent: {
		ActionList:   {require: targetIsChild, reason: "Parent can only see children!"},
		ActionView:   {require: targetIsChild, reason: "Parent can only see children!"},
		ActionCreate: {require: deny, reason: "Not an admin, cannot create!"},
		ActionUpdate: {require: deny, reason: "Not an admin, cannot update!"},
		ActionDelete: {require: deny, reason: "Not an admin, cannot delete!"},
	},
	model.RoleChild: {
		ActionList:   {require: targetIsSelf, reason: "Child can only see themselves!"},
		ActionView:   {require: targetIsSelf, reason: "Child can only see themselves!"},
		ActionCreate: {require: deny, reason: "Not an admin, cannot create!"},
		ActionUpdate: {require: deny, reason: "Not an admin, cannot update!"},
		ActionDelete: {require: deny, reason: "Not an admin, cannot delete!"},
	},
}

// Authorize returns a *model.ForbiddenError when actor may not perform action
// on target. Target is ignored by the create, update and delete actions.
func Authorize(actor Actor, action Action, target Target) error {
	r, ok := table[actor.Role][action]
	if !ok {
		return &model.ForbiddenError{Action: string(action), ActorRole: actor.Role, Reason: "Unknown role or action!"}
	}

	permitted := false
	switch r.require {
	case allow:
		permitted = true
	case targetIsChild:
		permitted = target.Role == model.RoleChild
	case targetIsSelf:
		permitted = target.Username == actor.Username
	}
	if permitted {
		return nil
	}
	return &model.ForbiddenError{Action: string(action), ActorRole: actor.Role, Reason: r.reason}
}

// ScopeKind tells a lister which records are visible.
type ScopeKind int

const (
	ScopeNone ScopeKind = iota
	ScopeAll
	ScopeRole
	ScopeSelf
)

// Scope is the visibility of the list action for an actor.
type Scope struct {
	Kind     ScopeKind
	Role     model.Role
	Username string
}

// ListScope translates the list row of the table into a store query.
func ListScope(actor Actor) Scope {
	switch table[actor.Role][ActionList].require {
	case allow:
		return Scope{Kind: ScopeAll}
	case targetIsChild:
		return Scope{Kind: ScopeRole, Role: model.RoleChild}
	case targetIsSelf:
		return Scope{Kind: ScopeSelf, Username: actor.Username}
	default:
		return Scope{Kind: ScopeNone}
	}
}

// Visible reports whether scope includes u.
func (s Scope) Visible(u model.User) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeRole:
		return u.Role == s.Role
	case ScopeSelf:
		return u.Username == s.Username
	default:
		return false
	}
}
