/*
Command immutree builds a persistent binary search tree from integer values and
prints it.

Usage:

    immutree [flags] VALUES...

Values are inserted in the order given; values named with --remove are deleted
afterwards. The resulting tree is validated before it is printed, either as an
outline (--format tree), as its in-order list of values (--format list) or as a
YAML report (--format yaml).

Defaults may be set in a YAML configuration file passed with --config:

    balancing: redblack
    format: yaml
    tracing:
      adapter: go
      level: Info
      destination: Stderr

Flags given on the command line take precedence over the configuration file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main
