// Package repokit holds what repos are written against, so domain repos never
// import a driver
package repokit

import "gsa/internal/platform/store"

type (
	// Queryer runs statements on the pool or inside a transaction
	Queryer = store.RowQuerier
	// TxRunner is a Queryer that can open transactions
	TxRunner = store.TxRunner
	// Rows is a result set
	Rows = store.Rows
	// Row is a single result row
	Row = store.Row
	// CommandTag reports what a write did
	CommandTag = store.CommandTag
)
