// Package minc declares the task descriptors for the wrapped MINC
// command-line tools. Each descriptor is a data-driven parameter table
// consumed by the generic validator and command builder in pkg/task;
// the tools' own semantics stay entirely in the external binaries.
package minc

import "minctasks/pkg/task"

// All returns fresh descriptors for every wrapped tool.
func All() []*task.Spec {
	return []*task.Spec{ToRaw(), Convert(), Copy(), ToEcat(), Dump(), Average()}
}

// Lookup returns a fresh descriptor by task name, or nil.
func Lookup(name string) *task.Spec {
	for _, s := range All() {
		if s.Task == name {
			return s
		}
	}
	return nil
}
