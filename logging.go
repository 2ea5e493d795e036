package hamt

import "github.com/sirgallo/logger"

// log is the package-wide structured logger, named the same way the
// teacher library tags each of its components. It is only ever reached
// on the fatal invariant-violation path (see errors.go) — Get stays
// allocation-free and log-free.
var log = logger.NewCustomLog("hamt")
