// SPDX-License-Identifier: MPL-2.0

// Package resolver locates, disambiguates, and instantiates user-supplied
// implementations of a capability.
//
// Given a capability descriptor (contract name plus factory), a requested
// implementation name, and an ordered search path of directories, Resolve
// scans every directory for plugin files, collects all implementations whose
// name matches exactly and whose direct ancestor list names the capability's
// contract, and then applies the uniqueness rule: zero matches is a normal
// "not found" outcome, exactly one match is instantiated through the
// capability factory, and two or more matches fail with an AmbiguityError
// naming every colliding file. Ambiguity is never auto-resolved; picking one
// would make behavior depend on directory iteration order.
//
// Files that fail to load are logged and skipped without aborting the scan,
// so one broken plugin cannot shadow a valid one elsewhere.
package resolver
