/*
Package persistent is the home of immutable persistent data structures.

Persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Every modification returns a new
version; all previous versions remain valid and may be queried concurrently.
Versions share all substructure not touched by a modification, which makes
copies cheap in terms of space and time.

Sub-packages:

   list    persistent singly linked lists, including a merge sort
   bst     persistent binary search trees (AVL, red-black, unbalanced)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
