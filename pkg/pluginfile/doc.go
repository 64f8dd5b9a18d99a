// SPDX-License-Identifier: MPL-2.0

// Package pluginfile defines the on-disk format for user-supplied
// implementations and parses single files into their declared
// implementation sets.
//
// A plugin file is a CUE document whose top-level fields each declare one
// implementation. The field label is the implementation name; the mandatory
// `extends` field names the contracts the implementation directly derives
// from; the `spec` field carries the capability-specific body, which is not
// interpreted here. One file may declare several implementations, but names
// are unique within a file (CUE rejects conflicting duplicate fields).
package pluginfile
