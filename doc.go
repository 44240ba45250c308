/*
Package immutree provides persistent (immutable) binary search trees and the small
set of helpers they build on.

The trees live in package persistent/bst, the list they export their values to in
package persistent/list. This top-level package holds what is shared between them:
comparators, which every ordered structure has to be constructed with, and the
faults raised when a structure is used in a way its invariants do not allow.

Persistent means multi-version immutability, not durability: every “modification”
returns a new version, leaving all prior versions valid and queryable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package immutree
