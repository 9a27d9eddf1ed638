/*
Package persistent is the home of immutable persistent data structures, i.e.
data structures which are never modified in place. "Changing" one creates a
new incarnation, leaving the original unchanged.

Persistent data structures offer structural sharing: a new incarnation re-uses
most of the memory of the one it was derived from. For the singly-linked list
in sub-package list, prepending a value allocates exactly one cell, and the
original list lives on as the tail of the new one.

Immutable data structures in many cases offer benefits over mutable data structures in terms
of concurrent access and functional reasoning.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
